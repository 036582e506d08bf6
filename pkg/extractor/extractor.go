// Package extractor turns documents into normalized extraction results.
//
// One extractor per format tag, all behind the same single-call contract;
// the Factory picks the right one from the file extension or a MIME hint,
// consulting the plugin registry for tags it does not compile in.
package extractor

import (
	"fmt"

	"textra/pkg/model"
)

// Extractor is the contract every format implementation fulfills: raw path
// in, normalized result or typed failure out. A missing path fails with the
// fs.ErrNotExist class for every format.
type Extractor interface {
	Extract(path string) (model.Result, error)
}

// Func adapts a plain function to the Extractor interface.
type Func func(path string) (model.Result, error)

// Extract calls f.
func (f Func) Extract(path string) (model.Result, error) { return f(path) }

// NoExtractorError reports a resolved format tag with no extractor behind
// it, built-in or plugin.
type NoExtractorError struct {
	Tag string
}

func (e *NoExtractorError) Error() string {
	return fmt.Sprintf("no extractor available for file type: %s", e.Tag)
}

// ParseError reports structurally malformed document content.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OpenError reports an image that could not be opened or decoded.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open image %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// OCRError reports a failed OCR pass. Page is 1-based; for single-image
// input it is always 1.
type OCRError struct {
	Page int
	Path string
	Err  error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr page %d of %s: %v", e.Page, e.Path, e.Err)
}

func (e *OCRError) Unwrap() error { return e.Err }
