package clipocr

import (
	"github.com/tsawler/clipocr/ocr"
	"github.com/tsawler/clipocr/textbuf"
)

// ScanOptions holds configuration for a scan.
type ScanOptions struct {
	// Recognition language: an opaque engine tag, or a display name to be
	// resolved against languages at scan time. Empty selects the engine
	// default.
	languageTag  string
	languageName string
	languages    LanguageSet

	// Output buffer capacity in bytes.
	capacity int

	// Page segmentation mode for the default Tesseract engine; only
	// applied when hasSegMode is set.
	pageSegMode ocr.PageSegMode
	hasSegMode  bool

	// Recognition engine; nil selects the Tesseract-backed default.
	engine Engine
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	return ScanOptions{
		capacity: textbuf.DefaultCapacity,
	}
}

// clone creates a deep copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	newOpts := ScanOptions{
		languageTag:  o.languageTag,
		languageName: o.languageName,
		capacity:     o.capacity,
		pageSegMode:  o.pageSegMode,
		hasSegMode:   o.hasSegMode,
		engine:       o.engine,
	}

	// Deep copy the language lookup
	if o.languages != nil {
		newOpts.languages = make(LanguageSet, len(o.languages))
		for name, tag := range o.languages {
			newOpts.languages[name] = tag
		}
	}

	return newOpts
}
