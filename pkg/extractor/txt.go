package extractor

import (
	"textra/pkg/model"
	"textra/pkg/textenc"
)

// Text extracts plain text files as a single page, decoding through the
// two-tier encoding fallback.
type Text struct {
	// Reader overrides the decode chain; nil uses the chardet-backed default.
	Reader *textenc.Reader
}

func (t *Text) Extract(path string) (model.Result, error) {
	reader := t.Reader
	if reader == nil {
		reader = textenc.Default()
	}
	text, err := reader.ReadFile(path)
	if err != nil {
		return model.Result{}, err
	}
	return model.New("txt", []model.Page{{Text: text}}), nil
}
