// Package model holds the result shape shared by every extractor.
package model

import "strings"

// Page is the text recovered from a single page of a document.
// Number is 1-based and contiguous within a Result.
type Page struct {
	Number int    `json:"page_number"`
	Text   string `json:"text"`
	OCR    bool   `json:"ocr"`
}

// Result is the normalized output of one extraction call. It is built once
// and never mutated afterwards.
type Result struct {
	Text     string `json:"text"`
	FileType string `json:"file_type"`
	OCRUsed  bool   `json:"ocr_used"`
	Pages    []Page `json:"pages"`
}

// New builds a Result from per-page texts, normalizing as it goes:
// a result always carries at least one page, page numbers are rewritten
// to 1..n in the order given, Text is the newline join of page texts with
// surrounding whitespace trimmed, and OCRUsed reflects whether any page
// came from OCR.
func New(fileType string, pages []Page) Result {
	if len(pages) == 0 {
		pages = []Page{{Text: ""}}
	}

	texts := make([]string, len(pages))
	ocrUsed := false
	for i := range pages {
		pages[i].Number = i + 1
		texts[i] = pages[i].Text
		if pages[i].OCR {
			ocrUsed = true
		}
	}

	return Result{
		Text:     strings.TrimSpace(strings.Join(texts, "\n")),
		FileType: fileType,
		OCRUsed:  ocrUsed,
		Pages:    pages,
	}
}
