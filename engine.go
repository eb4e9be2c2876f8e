package clipocr

import (
	"fmt"

	"github.com/tsawler/clipocr/ocr"
)

// Engine is the recognition contract the Scanner depends on: encoded image
// bytes in, recognized text lines out in top-to-bottom reading order.
// language is an opaque engine tag; empty selects the engine's default.
//
// The default implementation wraps the ocr package's Tesseract client.
// Substitutes — fakes in tests, remote OCR services — only need this one
// method.
type Engine interface {
	RecognizeLines(imageData []byte, language string) ([]string, error)
}

// DefaultEngine returns the Tesseract-backed engine. Calls fail with
// ocr.ErrOCRNotEnabled unless the module is built with the "ocr" tag.
func DefaultEngine() Engine {
	return tesseractEngine{}
}

type tesseractEngine struct {
	// Page segmentation mode, applied only when hasSegMode is set;
	// otherwise Tesseract's own default is kept.
	pageSegMode ocr.PageSegMode
	hasSegMode  bool
}

func (e tesseractEngine) RecognizeLines(imageData []byte, language string) ([]string, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return nil, fmt.Errorf("set language %q: %w", language, err)
		}
	}
	if e.hasSegMode {
		if err := client.SetPageSegMode(e.pageSegMode); err != nil {
			return nil, fmt.Errorf("set page segmentation mode %d: %w", e.pageSegMode, err)
		}
	}
	return client.RecognizeLines(imageData)
}
