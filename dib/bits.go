package dib

// BitReader is a forward-only cursor over the bits of a byte slice, yielding
// one bit per call in most-significant-bit-first order. It has no notion of
// pixel width; callers decide how many bits to take. A reader cannot be
// rewound; construct a new one to start over.
type BitReader struct {
	data  []byte
	index int
}

// NewBitReader returns a BitReader positioned at the first bit of data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// Next returns the next bit (0 or 1) and true, or 0 and false once the
// backing slice is exhausted.
func (b *BitReader) Next() (byte, bool) {
	byteIndex := b.index / 8
	if byteIndex >= len(b.data) {
		return 0, false
	}
	bit := (b.data[byteIndex] << (b.index % 8)) >> 7
	b.index++
	return bit, true
}
