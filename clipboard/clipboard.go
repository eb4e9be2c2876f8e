// Package clipboard defines the seam between the OCR pipeline and whatever
// supplies bitmap data and receives text — typically an OS clipboard, but
// the package deliberately knows nothing about operating systems.
//
// A Source hands out raw DIB bytes through a scoped Handle that must be
// closed on every exit path; a Sink accepts the packed UTF-16 result. The
// Memory implementation backs both with plain byte slices for tests and for
// applications that manage the OS boundary themselves.
package clipboard

import "errors"

// ErrNoBitmap is returned by a Source that currently holds no bitmap data.
var ErrNoBitmap = errors.New("clipboard: no bitmap data available")

// Source supplies raw DIB records on demand.
type Source interface {
	// AcquireDIB returns a handle over the current bitmap contents. The
	// caller must close the handle when done, typically via defer; the
	// bytes it exposes are only valid until then.
	AcquireDIB() (*Handle, error)
}

// Sink accepts a packed, null-terminated UTF-16LE text buffer for
// publishing.
type Sink interface {
	SetText(utf16le []byte) error
}

// Handle is a scoped view over acquired bitmap bytes. Close releases the
// underlying resource exactly once; further calls are no-ops, so it is safe
// to defer a Close that may also run on an early-return path.
type Handle struct {
	data    []byte
	release func() error
	closed  bool
}

// NewHandle wraps data in a Handle. release, if non-nil, runs on the first
// Close; Source implementations use it to unlock or free OS resources.
func NewHandle(data []byte, release func() error) *Handle {
	return &Handle{data: data, release: release}
}

// Bytes returns the bitmap bytes, or nil after Close.
func (h *Handle) Bytes() []byte {
	if h.closed {
		return nil
	}
	return h.data
}

// Close releases the handle. Only the first call runs the release hook.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.data = nil
	if h.release != nil {
		return h.release()
	}
	return nil
}

// Memory is an in-memory Source and Sink.
type Memory struct {
	dib  []byte
	text []byte
}

// NewMemory returns a Memory clipboard holding the given DIB bytes.
func NewMemory(dib []byte) *Memory {
	return &Memory{dib: dib}
}

// AcquireDIB implements Source.
func (m *Memory) AcquireDIB() (*Handle, error) {
	if len(m.dib) == 0 {
		return nil, ErrNoBitmap
	}
	return NewHandle(m.dib, nil), nil
}

// SetText implements Sink, keeping its own copy of the buffer.
func (m *Memory) SetText(utf16le []byte) error {
	m.text = append([]byte(nil), utf16le...)
	return nil
}

// Text returns the most recently published UTF-16LE buffer, or nil if
// nothing has been published.
func (m *Memory) Text() []byte {
	return m.text
}
