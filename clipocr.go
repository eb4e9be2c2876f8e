// Package clipocr provides a fluent API for running OCR over clipboard-style
// bitmap (DIB) records and packing the recognized text into a bounded,
// null-terminated UTF-16 buffer suitable for publishing back to a clipboard.
//
// Basic usage:
//
//	text, warnings, err := clipocr.FromDIB(raw).Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", clipocr.FormatWarnings(warnings))
//	}
//
// With options:
//
//	buf, _, err := clipocr.FromDIB(raw).
//	    Language("jpn").
//	    Capacity(4096).
//	    UTF16()
//
// Reading from and publishing to a clipboard implementation:
//
//	board := clipboard.NewMemory(raw)
//	warnings, err := clipocr.FromSource(board).PublishTo(board)
//
// Recognition is performed by an Engine; the default wraps the Tesseract
// client in the ocr package and requires building with the "ocr" tag. The
// lower-level dib and textbuf packages are also available on their own.
package clipocr

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/image/bmp"

	"github.com/tsawler/clipocr/clipboard"
	"github.com/tsawler/clipocr/dib"
	"github.com/tsawler/clipocr/ocr"
	"github.com/tsawler/clipocr/textbuf"
)

// Scanner runs the decode → recognize → reconstruct pipeline over one
// bitmap. Configure it with the fluent methods, then call a terminal
// operation (Text, UTF16, Lines, PublishTo).
type Scanner struct {
	raw     []byte
	rec     *dib.Record
	source  clipboard.Source
	options ScanOptions
}

// FromDIB creates a Scanner over a raw DIB record: a BITMAPINFOHEADER
// followed by pixel data, as found in clipboard CF_DIB content.
func FromDIB(raw []byte) *Scanner {
	return &Scanner{raw: raw, options: defaultOptions()}
}

// FromRecord creates a Scanner over an already-parsed bitmap record.
func FromRecord(rec *dib.Record) *Scanner {
	return &Scanner{rec: rec, options: defaultOptions()}
}

// FromSource creates a Scanner that acquires its bitmap from a clipboard
// Source at scan time. The source's handle is released before the terminal
// operation returns, on success and error paths alike.
func FromSource(src clipboard.Source) *Scanner {
	return &Scanner{source: src, options: defaultOptions()}
}

// Language selects the recognition language by engine tag (e.g. "jpn").
// An empty tag keeps the engine's default.
func (s *Scanner) Language(tag string) *Scanner {
	s.options.languageTag = tag
	return s
}

// Languages supplies the display-name → tag lookup used by LanguageName.
func (s *Scanner) Languages(set LanguageSet) *Scanner {
	s.options.languages = set
	return s
}

// LanguageName selects the recognition language by display name, resolved
// against the set supplied via Languages when the scan runs.
func (s *Scanner) LanguageName(name string) *Scanner {
	s.options.languageName = name
	return s
}

// Capacity sets the output buffer size in bytes. Recognized text beyond the
// capacity is truncated with a WarnTruncated warning. The default is
// textbuf.DefaultCapacity.
func (s *Scanner) Capacity(n int) *Scanner {
	s.options.capacity = n
	return s
}

// PageSegMode sets the page segmentation mode used by the default
// Tesseract engine, e.g. ocr.PSM_SINGLE_BLOCK for a screenshot of one text
// region. Unset, the engine's own default applies. Engines substituted via
// WithEngine manage their own segmentation.
func (s *Scanner) PageSegMode(mode ocr.PageSegMode) *Scanner {
	s.options.pageSegMode = mode
	s.options.hasSegMode = true
	return s
}

// WithEngine substitutes the recognition engine. The default is the
// Tesseract-backed engine returned by DefaultEngine.
func (s *Scanner) WithEngine(e Engine) *Scanner {
	s.options.engine = e
	return s
}

// Options returns a copy of the scanner's current configuration.
func (s *Scanner) Options() ScanOptions {
	return s.options.clone()
}

// Text runs the pipeline and returns the recognized text decoded to a Go
// string, with CRLF line separators preserved.
func (s *Scanner) Text() (string, []Warning, error) {
	buf, warnings, err := s.UTF16()
	if err != nil {
		return "", warnings, err
	}
	text, err := textbuf.Decode(buf)
	if err != nil {
		return "", warnings, err
	}
	return text, warnings, nil
}

// UTF16 runs the pipeline and returns the packed UTF-16LE buffer, null
// terminator included. The buffer never exceeds the configured capacity.
func (s *Scanner) UTF16() ([]byte, []Warning, error) {
	lines, warnings, err := s.Lines()
	if err != nil {
		return nil, warnings, err
	}

	out := make([]byte, s.options.capacity)
	n, err := textbuf.Reconstruct(lines, out)
	if err != nil {
		if !errors.Is(err, textbuf.ErrCapacityExceeded) {
			return nil, warnings, err
		}
		warnings = append(warnings, Warning{
			Code:    WarnTruncated,
			Message: fmt.Sprintf("recognized text exceeds %d byte capacity", s.options.capacity),
		})
	}
	return out[:n], warnings, nil
}

// Lines runs decode and recognition only, returning the raw recognized
// lines before reconstruction.
func (s *Scanner) Lines() ([]string, []Warning, error) {
	rec, err := s.record()
	if err != nil {
		return nil, nil, err
	}

	img, err := rec.Image()
	if err != nil {
		return nil, nil, err
	}

	var encoded bytes.Buffer
	if err := bmp.Encode(&encoded, img); err != nil {
		return nil, nil, fmt.Errorf("encode bitmap: %w", err)
	}

	language, err := s.resolveLanguage()
	if err != nil {
		return nil, nil, err
	}

	engine := s.options.engine
	if engine == nil {
		engine = s.defaultEngine()
	}
	lines, err := engine.RecognizeLines(encoded.Bytes(), language)
	if err != nil {
		return nil, nil, fmt.Errorf("recognize: %w", err)
	}
	return lines, nil, nil
}

// PublishTo runs the pipeline and hands the UTF-16 buffer to the sink.
func (s *Scanner) PublishTo(sink clipboard.Sink) ([]Warning, error) {
	buf, warnings, err := s.UTF16()
	if err != nil {
		return warnings, err
	}
	if err := sink.SetText(buf); err != nil {
		return warnings, fmt.Errorf("publish text: %w", err)
	}
	return warnings, nil
}

// defaultEngine builds the Tesseract-backed engine with the scanner's
// segmentation settings applied.
func (s *Scanner) defaultEngine() Engine {
	return tesseractEngine{
		pageSegMode: s.options.pageSegMode,
		hasSegMode:  s.options.hasSegMode,
	}
}

// record resolves the scanner's input to a parsed bitmap record. A source
// handle, if one is acquired, is released before returning.
func (s *Scanner) record() (*dib.Record, error) {
	switch {
	case s.rec != nil:
		return s.rec, nil
	case s.source != nil:
		handle, err := s.source.AcquireDIB()
		if err != nil {
			return nil, fmt.Errorf("acquire bitmap: %w", err)
		}
		defer handle.Close()
		// dib.Parse copies the pixel region, so the record stays valid
		// after the handle is released.
		return dib.Parse(handle.Bytes())
	default:
		return dib.Parse(s.raw)
	}
}

// resolveLanguage picks the engine tag from the configured options. An
// explicit tag wins over a display name.
func (s *Scanner) resolveLanguage() (string, error) {
	if s.options.languageTag != "" {
		return s.options.languageTag, nil
	}
	if s.options.languageName != "" {
		tag, ok := s.options.languages.Tag(s.options.languageName)
		if !ok {
			return "", fmt.Errorf("unknown language %q", s.options.languageName)
		}
		return tag, nil
	}
	return "", nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	text := clipocr.MustText(clipocr.FromDIB(raw).Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
