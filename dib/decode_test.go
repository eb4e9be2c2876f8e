package dib

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestToBGRA32bpp(t *testing.T) {
	// 2x2, stride 8. Rows stored bottom-up: visual bottom row first.
	rec := &Record{
		Width:        2,
		Height:       2,
		BitsPerPixel: 32,
		Data: []byte{
			9, 10, 11, 12, 13, 14, 15, 16, // visual bottom row
			1, 2, 3, 4, 5, 6, 7, 8, // visual top row
		},
	}

	got, err := rec.ToBGRA()
	if err != nil {
		t.Fatalf("ToBGRA returned error: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBGRA = %v, want %v", got, want)
	}
}

func TestToBGR32bppDropsAlpha(t *testing.T) {
	rec := &Record{
		Width:        2,
		Height:       1,
		BitsPerPixel: 32,
		Data:         []byte{1, 2, 3, 99, 4, 5, 6, 99},
	}

	got, err := rec.ToBGR()
	if err != nil {
		t.Fatalf("ToBGR returned error: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBGR = %v, want %v", got, want)
	}
}

func TestToBGR24bpp(t *testing.T) {
	// 2x2 at 24 bpp: 6 pixel bytes per row plus 2 bytes of padding.
	rec := &Record{
		Width:        2,
		Height:       2,
		BitsPerPixel: 24,
		Data: []byte{
			7, 8, 9, 10, 11, 12, 0, 0, // visual bottom row
			1, 2, 3, 4, 5, 6, 0, 0, // visual top row
		},
	}

	got, err := rec.ToBGR()
	if err != nil {
		t.Fatalf("ToBGR returned error: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBGR = %v, want %v", got, want)
	}
}

func TestToBGRA24bppAddsOpaqueAlpha(t *testing.T) {
	rec := &Record{
		Width:        2,
		Height:       1,
		BitsPerPixel: 24,
		Data:         []byte{1, 2, 3, 4, 5, 6, 0, 0},
	}

	got, err := rec.ToBGRA()
	if err != nil {
		t.Fatalf("ToBGRA returned error: %v", err)
	}
	want := []byte{1, 2, 3, 0xff, 4, 5, 6, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBGRA = %v, want %v", got, want)
	}
}

func TestToBGR1bpp(t *testing.T) {
	// Width 9: 9 bits per row packed MSB-first into 2 bytes, padded to a
	// 4-byte stride. Top row pattern 1,0,0,1,1,1,1,0,1; bottom row all 0.
	rec := &Record{
		Width:        9,
		Height:       2,
		BitsPerPixel: 1,
		Data: []byte{
			0x00, 0x00, 0x00, 0x00, // visual bottom row
			0x9e, 0x80, 0x00, 0x00, // visual top row
		},
	}

	got, err := rec.ToBGR()
	if err != nil {
		t.Fatalf("ToBGR returned error: %v", err)
	}

	white := []byte{0xff, 0xff, 0xff}
	black := []byte{0x00, 0x00, 0x00}
	var want []byte
	for _, bit := range []byte{1, 0, 0, 1, 1, 1, 1, 0, 1} {
		if bit == 1 {
			want = append(want, white...)
		} else {
			want = append(want, black...)
		}
	}
	for i := 0; i < 9; i++ {
		want = append(want, black...)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("ToBGR = %v, want %v", got, want)
	}
}

func TestToBGRA1bpp(t *testing.T) {
	rec := &Record{
		Width:        2,
		Height:       1,
		BitsPerPixel: 1,
		Data:         []byte{0x80, 0x00, 0x00, 0x00}, // white, black
	}

	got, err := rec.ToBGRA()
	if err != nil {
		t.Fatalf("ToBGRA returned error: %v", err)
	}
	want := []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBGRA = %v, want %v", got, want)
	}
}

func TestDecodeRowRoundTrip(t *testing.T) {
	// Re-flipping the decoded output must restore the source row order.
	const width, height = 3, 4
	stride := RowStride(width, 32)

	data := make([]byte, stride*height)
	for i := range data {
		data[i] = byte(i * 7)
	}
	rec := &Record{Width: width, Height: height, BitsPerPixel: 32, Data: data}

	got, err := rec.ToBGRA()
	if err != nil {
		t.Fatalf("ToBGRA returned error: %v", err)
	}

	rowBytes := width * 4
	for row := 0; row < height; row++ {
		src := data[row*stride : row*stride+rowBytes]
		dst := got[(height-1-row)*rowBytes : (height-row)*rowBytes]
		if !bytes.Equal(src, dst) {
			t.Errorf("source row %d not found at output row %d", row, height-1-row)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want error
	}{
		{
			"unsupported depth",
			&Record{Width: 2, Height: 2, BitsPerPixel: 16, Data: make([]byte, 32)},
			ErrUnsupportedDepth,
		},
		{
			"top-down",
			&Record{Width: 2, Height: -2, BitsPerPixel: 32, Data: make([]byte, 32)},
			ErrUnsupportedOrientation,
		},
		{
			"empty data",
			&Record{Width: 2, Height: 2, BitsPerPixel: 32, Data: nil},
			ErrNoData,
		},
		{
			"short data",
			&Record{Width: 2, Height: 2, BitsPerPixel: 32, Data: make([]byte, 8)},
			ErrNoData,
		},
		{
			// Dimensions whose required byte count overflows 64-bit
			// multiplication must fail the size check, not wrap it into
			// an out-of-range read.
			"huge dimensions",
			&Record{Width: 0x7fffffff, Height: 0x7fffffff, BitsPerPixel: 32, Data: make([]byte, 8)},
			ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.rec.ToBGRA(); !errors.Is(err, tt.want) {
				t.Errorf("ToBGRA error = %v, want %v", err, tt.want)
			}
			if _, err := tt.rec.ToBGR(); !errors.Is(err, tt.want) {
				t.Errorf("ToBGR error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestImage(t *testing.T) {
	rec := &Record{
		Width:        1,
		Height:       1,
		BitsPerPixel: 32,
		Data:         []byte{10, 20, 30, 0}, // B, G, R with zero alpha
	}

	img, err := rec.Image()
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("Image returned %T, want *image.NRGBA", img)
	}
	if got, want := nrgba.Bounds(), image.Rect(0, 0, 1, 1); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}

	// Channels swapped to RGBA order, alpha forced opaque.
	want := []byte{30, 20, 10, 0xff}
	if !bytes.Equal(nrgba.Pix, want) {
		t.Errorf("Pix = %v, want %v", nrgba.Pix, want)
	}
}
