package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"textra/pkg/model"
	"textra/pkg/ocr"
)

// PDF extracts PDF documents with a two-phase protocol: read the native
// text layer page by page, and if the whole document comes back blank,
// rasterize every page and OCR the images instead.
//
// Whether the document "has text" is decided on the aggregate trimmed text,
// not per page, so a document of all-whitespace pages falls back to OCR as
// a whole. Rasterization failure degrades to a single empty page rather
// than erroring; a per-page OCR failure after successful rasterization is
// fatal, since partial OCR output is useless.
type PDF struct {
	// Raster overrides the page rasterizer; nil uses pdfcpu page images.
	Raster ocr.Rasterizer
	// Engine overrides the OCR engine; nil uses tesseract on PATH.
	Engine ocr.Engine
}

func (p *PDF) Extract(path string) (model.Result, error) {
	if _, err := os.Stat(path); err != nil {
		return model.Result{}, err
	}

	pages, err := nativePages(path)
	if err != nil {
		return model.Result{}, &ParseError{Path: path, Err: err}
	}

	res := model.New("pdf", pages)
	if res.Text != "" {
		return res, nil
	}
	return p.ocrFallback(path)
}

// nativePages collects the text layer of every page, one Page per document
// page even when its text is empty. The pdf library is known to panic on
// malformed documents, so the whole pass is panic-guarded.
func nativePages(path string) (pages []model.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	total := reader.NumPage()
	pages = make([]model.Page, 0, total)
	for n := 1; n <= total; n++ {
		text := ""
		page := reader.Page(n)
		if !page.V.IsNull() {
			if plain, err := page.GetPlainText(nil); err == nil {
				text = strings.TrimSpace(plain)
			}
		}
		pages = append(pages, model.Page{Text: text})
	}
	return pages, nil
}

func (p *PDF) ocrFallback(path string) (model.Result, error) {
	degraded := model.New("pdf", []model.Page{{Text: ""}})

	tmpDir, err := os.MkdirTemp("", "textra_raster_*")
	if err != nil {
		return degraded, nil
	}
	defer os.RemoveAll(tmpDir)

	raster := p.Raster
	if raster == nil {
		raster = ocr.PageImages{}
	}
	images, err := raster.Rasterize(path, tmpDir)
	if err != nil || len(images) == 0 {
		// Nothing to OCR counts as nothing to extract.
		return degraded, nil
	}

	engine := p.Engine
	if engine == nil {
		engine = &ocr.Tesseract{}
	}
	pages := make([]model.Page, 0, len(images))
	for n, img := range images {
		text, err := engine.Recognize(img)
		if err != nil {
			return model.Result{}, &OCRError{Page: n + 1, Path: path, Err: err}
		}
		pages = append(pages, model.Page{Text: strings.TrimSpace(text), OCR: true})
	}
	return model.New("pdf", pages), nil
}
