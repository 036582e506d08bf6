// Package ocr wraps the external engines the extractors lean on for scanned
// content: an OCR text recognizer and a PDF page rasterizer. Both sit behind
// small interfaces so tests can substitute fakes.
package ocr

import (
	"fmt"
	"os/exec"
	"strings"
)

// Engine recognizes text in a single image file.
type Engine interface {
	Recognize(imagePath string) (string, error)
}

// Tesseract shells out to the tesseract binary, the same way the original
// tool drove its OCR engine as an external process.
type Tesseract struct {
	// Binary overrides the executable name; empty means "tesseract" on PATH.
	Binary string
	// Language is passed through as -l when non-empty (e.g. "eng+deu").
	Language string
}

// Recognize runs tesseract on imagePath and returns the recognized text.
func (t *Tesseract) Recognize(imagePath string) (string, error) {
	bin := t.Binary
	if bin == "" {
		bin = "tesseract"
	}
	args := []string{imagePath, "stdout"}
	if t.Language != "" {
		args = append(args, "-l", t.Language)
	}

	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("tesseract: %s: %w", strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
