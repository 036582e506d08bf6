package ocr

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Rasterizer turns the pages of a PDF into image files under destDir,
// returned in page order. An empty slice means the document yielded no
// page images.
type Rasterizer interface {
	Rasterize(pdfPath, destDir string) ([]string, error)
}

// PageImages extracts the page images of a PDF with pdfcpu. For scanned
// documents each page is a single full-page image, so extracting the images
// recovers exactly the bitmaps OCR needs without re-rendering.
type PageImages struct{}

// Rasterize writes one image per page that carries one into destDir and
// returns their paths ordered by page number. Pages without images are
// skipped; the OCR page numbering follows the returned order.
func (PageImages) Rasterize(pdfPath, destDir string) ([]string, error) {
	pageCount, err := api.PageCountFile(pdfPath)
	if err != nil {
		return nil, err
	}

	var images []string
	for page := 1; page <= pageCount; page++ {
		pageDir := filepath.Join(destDir, strconv.Itoa(page))
		if err := os.MkdirAll(pageDir, 0o755); err != nil {
			return nil, err
		}
		// Extraction into a per-page directory keeps ordering independent
		// of pdfcpu's output naming scheme.
		if err := api.ExtractImagesFile(pdfPath, pageDir, []string{strconv.Itoa(page)}, nil); err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(pageDir)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		images = append(images, filepath.Join(pageDir, names[0]))
	}
	return images, nil
}
