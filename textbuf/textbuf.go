// Package textbuf reassembles recognized text lines into a bounded,
// null-terminated UTF-16LE byte stream.
//
// OCR engines split lines on visual whitespace. For Latin scripts that
// whitespace separates words and must be kept; for scripts like CJK it is
// usually spurious. Reconstruct therefore surrounds ASCII-only tokens with
// single spaces and joins non-ASCII tokens directly, collapsing the doubled
// separators this produces at line boundaries.
//
// Output always fits the caller's buffer: when capacity runs out the stream
// is truncated and ErrCapacityExceeded reported, but the buffer still ends
// with a valid UTF-16 null terminator.
package textbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCapacity is the output buffer size used by callers that do not
// choose their own: 8 KiB, enough for roughly four thousand characters.
const DefaultCapacity = 8192

// ErrCapacityExceeded reports that reconstruction hit the buffer limit. The
// buffer still holds valid, terminated output up to the returned length, so
// callers may treat this as a warning rather than a failure.
var ErrCapacityExceeded = errors.New("textbuf: output truncated to buffer capacity")

// UTF-16 code units written by the reconstructor.
const (
	unitSpace = 0x0020
	unitCR    = 0x000d
	unitLF    = 0x000a
)

// Reconstruct writes the recognized lines into buf as a UTF-16LE stream and
// returns the number of bytes written, terminator included. The count is
// always even and never exceeds len(buf).
//
// Per line: tokens are split on U+0020; ASCII-only tokens get a surrounding
// space on each side (the leading one suppressed at the start of output,
// after a line break, or after an existing space); non-ASCII tokens are
// emitted bare; a single trailing space is retracted before the CRLF that
// terminates every line. A null terminator follows the last line.
//
// Tokens are not validated: malformed code sequences pass through unchanged.
// If buf cannot hold even the terminator, Reconstruct writes nothing and
// returns (0, ErrCapacityExceeded).
func Reconstruct(lines []string, buf []byte) (int, error) {
	usable := len(buf) &^ 1
	if usable < 2 {
		return 0, ErrCapacityExceeded
	}

	// The final code unit slot is reserved for the terminator.
	w := writer{buf: buf, limit: usable - 2}
	for _, line := range lines {
		if w.full {
			break
		}
		w.writeLine(line)
	}

	binary.LittleEndian.PutUint16(buf[w.pos:], 0)
	n := w.pos + 2
	if w.full {
		return n, ErrCapacityExceeded
	}
	return n, nil
}

// Decode converts a null-terminated UTF-16LE stream, as produced by
// Reconstruct, back into a Go string. Decoding stops at the first null code
// unit; a missing terminator simply consumes the whole buffer.
func Decode(buf []byte) (string, error) {
	end := len(buf) &^ 1
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			end = i
			break
		}
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, buf[:end])
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

// writer tracks a 2-byte-aligned cursor into the output buffer. Once full is
// set no further content is written; the terminator slot past limit remains
// untouched until Reconstruct claims it.
type writer struct {
	buf   []byte
	pos   int
	limit int
	full  bool
}

func (w *writer) writeLine(line string) {
	for _, token := range strings.Split(line, " ") {
		if token == "" {
			continue
		}
		if isASCII(token) {
			if u, ok := w.last(); ok && u != unitSpace && u != unitLF {
				w.writeUnit(unitSpace)
			}
			w.writeString(token)
			w.writeUnit(unitSpace)
		} else {
			w.writeString(token)
		}
		if w.full {
			return
		}
	}

	// A trailing ASCII token leaves one space behind; pull it back so the
	// line ends on the token itself.
	if u, ok := w.last(); ok && u == unitSpace {
		w.pos -= 2
	}
	w.writeUnit(unitCR)
	w.writeUnit(unitLF)
}

func (w *writer) writeString(s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		w.writeUnit(u)
		if w.full {
			return
		}
	}
}

func (w *writer) writeUnit(u uint16) {
	if w.full || w.pos+2 > w.limit {
		w.full = true
		return
	}
	binary.LittleEndian.PutUint16(w.buf[w.pos:], u)
	w.pos += 2
}

func (w *writer) last() (uint16, bool) {
	if w.pos == 0 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(w.buf[w.pos-2:]), true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
