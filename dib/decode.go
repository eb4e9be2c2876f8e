package dib

import (
	"fmt"
	"image"
)

// ToBGR converts the record into a flat, top-down pixel buffer with 3 bytes
// per pixel in blue, green, red order. The result is width*height*3 bytes.
func (r *Record) ToBGR() ([]byte, error) {
	return r.convert(3)
}

// ToBGRA converts the record into a flat, top-down pixel buffer with 4 bytes
// per pixel in blue, green, red, alpha order. For 32-bit sources the fourth
// source byte is passed through unmodified; for 24-bit and 1-bit sources the
// alpha channel is set to 255. The result is width*height*4 bytes.
func (r *Record) ToBGRA() ([]byte, error) {
	return r.convert(4)
}

// convert walks the padded source rows in reverse so that output row 0 is
// the visual top of the image.
func (r *Record) convert(channels int) ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	width := int(r.Width)
	height := int(r.Height)
	stride := RowStride(r.Width, r.BitsPerPixel)

	out := make([]byte, 0, width*height*channels)
	for row := height - 1; row >= 0; row-- {
		line := r.Data[row*stride : (row+1)*stride]

		switch r.BitsPerPixel {
		case 32:
			if channels == 4 {
				out = append(out, line[:width*4]...)
				continue
			}
			for x := 0; x < width; x++ {
				out = append(out, line[x*4:x*4+3]...)
			}

		case 24:
			if channels == 3 {
				out = append(out, line[:width*3]...)
				continue
			}
			for x := 0; x < width; x++ {
				out = append(out, line[x*3:x*3+3]...)
				out = append(out, 0xff)
			}

		case 1:
			bits := NewBitReader(line)
			for x := 0; x < width; x++ {
				bit, ok := bits.Next()
				if !ok {
					return nil, fmt.Errorf("%w: row %d ends after %d of %d pixels", ErrNoData, row, x, width)
				}
				if bit != 0 {
					out = append(out, 0xff, 0xff, 0xff)
				} else {
					out = append(out, 0x00, 0x00, 0x00)
				}
				if channels == 4 {
					out = append(out, 0xff)
				}
			}
		}
	}
	return out, nil
}

// Image adapts the record into an image.Image by converting to BGRA and
// swapping the blue and red channels into NRGBA order. The alpha channel is
// forced opaque: clipboard producers routinely write zero alpha into 32-bit
// DIBs, which would otherwise render the image fully transparent.
func (r *Record) Image() (image.Image, error) {
	bgra, err := r.ToBGRA()
	if err != nil {
		return nil, err
	}

	width := int(r.Width)
	height := int(r.Height)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = bgra[i*4+2]
		img.Pix[i*4+1] = bgra[i*4+1]
		img.Pix[i*4+2] = bgra[i*4+0]
		img.Pix[i*4+3] = 0xff
	}
	return img, nil
}
