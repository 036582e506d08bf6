package extractor

import (
	"encoding/csv"
	"strings"

	"textra/pkg/model"
	"textra/pkg/textenc"
)

// CSV extracts tabular files as a single page holding the whole table
// re-serialized in normalized CSV form. An empty file is one empty page,
// not a failure; a malformed table is a ParseError.
type CSV struct {
	Reader *textenc.Reader
}

func (c *CSV) Extract(path string) (model.Result, error) {
	reader := c.Reader
	if reader == nil {
		reader = textenc.Default()
	}
	text, err := reader.ReadFile(path)
	if err != nil {
		return model.Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		return model.New("csv", []model.Page{{Text: ""}}), nil
	}

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		return model.Result{}, &ParseError{Path: path, Err: err}
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return model.Result{}, &ParseError{Path: path, Err: err}
	}
	return model.New("csv", []model.Page{{Text: buf.String()}}), nil
}
