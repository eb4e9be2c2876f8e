// Package dib parses and decodes device-independent bitmap (DIB) records
// of the kind found on the Windows clipboard (CF_DIB).
//
// A DIB record is a BITMAPINFOHEADER followed immediately by pixel data.
// Rows are stored bottom-up and padded to a 4-byte (DWORD) boundary. This
// package supports the three uncompressed depths that clipboard producers
// emit in practice: 1, 24, and 32 bits per pixel.
//
// Basic usage:
//
//	rec, err := dib.Parse(raw)
//	if err != nil {
//	    // handle error
//	}
//	pixels, err := rec.ToBGRA()
//
// The decoded buffer is flat, row-major, and top-down (row 0 is the visual
// top of the image), ready for consumers that expect scanline order.
package dib

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. Parse and the conversion methods wrap these sentinels with
// context; match them with errors.Is.
var (
	// ErrBadHeader indicates a header too short or internally inconsistent
	// to describe a bitmap.
	ErrBadHeader = errors.New("dib: malformed bitmap header")

	// ErrUnsupportedDepth indicates a bit depth outside {1, 24, 32}.
	ErrUnsupportedDepth = errors.New("dib: unsupported bits per pixel")

	// ErrUnsupportedOrientation indicates a non-positive height. Top-down
	// bitmaps (negative height) are not supported.
	ErrUnsupportedOrientation = errors.New("dib: top-down bitmaps are not supported")

	// ErrNoData indicates an empty or undersized pixel region.
	ErrNoData = errors.New("dib: missing pixel data")
)

// infoHeaderSize is the size of a BITMAPINFOHEADER in bytes. Larger header
// variants (V4, V5) extend this structure but keep the same leading fields.
const infoHeaderSize = 40

// Record is an immutable DIB value: dimensions, depth, and the raw pixel
// region. Rows in Data are stored bottom-up and padded to 4-byte boundaries.
type Record struct {
	Width        int32
	Height       int32
	BitsPerPixel uint16
	Data         []byte
}

// RowStride returns the padded byte length of one scan line: the pixel bits
// rounded up to the next DWORD boundary. The result is always a multiple
// of 4.
func RowStride(width int32, bitsPerPixel uint16) int {
	return (int(width)*int(bitsPerPixel) + 31) / 32 * 4
}

// Parse reads a DIB record from raw bytes: a little-endian BITMAPINFOHEADER
// followed by the pixel region at the offset given by the header's own size
// field. If the header's image-size field is zero, the remainder of the
// slice is taken as pixel data.
//
// The pixel region is copied, so the Record remains valid after the caller
// releases the memory backing raw (e.g. a clipboard handle).
func Parse(raw []byte) (*Record, error) {
	if len(raw) < infoHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrBadHeader, len(raw), infoHeaderSize)
	}

	headerSize := binary.LittleEndian.Uint32(raw[0:4])
	if headerSize < infoHeaderSize || uint64(headerSize) > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: header size %d", ErrBadHeader, headerSize)
	}

	width := int32(binary.LittleEndian.Uint32(raw[4:8]))
	height := int32(binary.LittleEndian.Uint32(raw[8:12]))
	depth := binary.LittleEndian.Uint16(raw[14:16])
	imageSize := binary.LittleEndian.Uint32(raw[20:24])

	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrBadHeader, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrUnsupportedOrientation, height)
	}
	if depth != 1 && depth != 24 && depth != 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}

	pixels := raw[headerSize:]
	if imageSize != 0 {
		if uint64(imageSize) > uint64(len(pixels)) {
			return nil, fmt.Errorf("%w: header declares %d pixel bytes, %d available", ErrNoData, imageSize, len(pixels))
		}
		pixels = pixels[:imageSize]
	}

	rec := &Record{
		Width:        width,
		Height:       height,
		BitsPerPixel: depth,
		Data:         append([]byte(nil), pixels...),
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// validate checks the Record invariants shared by Parse and the conversion
// methods, so directly constructed Records get the same guarantees.
func (r *Record) validate() error {
	if r.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrBadHeader, r.Width)
	}
	if r.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrUnsupportedOrientation, r.Height)
	}
	if r.BitsPerPixel != 1 && r.BitsPerPixel != 24 && r.BitsPerPixel != 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, r.BitsPerPixel)
	}
	if len(r.Data) == 0 {
		return fmt.Errorf("%w: empty pixel region", ErrNoData)
	}
	// Stride and row count compared in 64 bits via division: a header
	// declaring huge dimensions must fail the size check, not overflow it.
	stride := (int64(r.Width)*int64(r.BitsPerPixel) + 31) / 32 * 4
	if int64(len(r.Data))/stride < int64(r.Height) {
		return fmt.Errorf("%w: have %d pixel bytes, need %d rows of %d", ErrNoData, len(r.Data), r.Height, stride)
	}
	return nil
}
