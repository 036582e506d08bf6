package extractor

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/webp"

	"textra/pkg/filetype"
	"textra/pkg/model"
	"textra/pkg/ocr"
)

// Image extracts raster images (png, jpg, webp) by running them through the
// OCR engine. The result is always a single OCR page.
type Image struct {
	// Engine overrides the OCR engine; nil uses tesseract on PATH.
	Engine ocr.Engine
}

func (i *Image) Extract(path string) (model.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Result{}, err
	}
	_, _, err = image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return model.Result{}, &OpenError{Path: path, Err: err}
	}

	tag, err := filetype.Resolve(path, "", nil)
	if err != nil {
		return model.Result{}, err
	}

	engine := i.Engine
	if engine == nil {
		engine = &ocr.Tesseract{}
	}
	text, err := engine.Recognize(path)
	if err != nil {
		return model.Result{}, &OCRError{Page: 1, Path: path, Err: err}
	}

	return model.New(tag, []model.Page{{Text: strings.TrimSpace(text), OCR: true}}), nil
}
