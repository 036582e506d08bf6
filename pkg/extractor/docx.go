package extractor

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"textra/pkg/model"
)

// Docx extracts Word documents as a single page: paragraph texts first,
// then every table row as its cell texts joined with " | ", in document
// order. A file that is not a readable docx package fails with the
// not-found class, distinct from XML-level corruption inside the package.
type Docx struct{}

func (Docx) Extract(path string) (model.Result, error) {
	if _, err := os.Stat(path); err != nil {
		return model.Result{}, err
	}

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("read docx package (%v): %w", err, fs.ErrNotExist)
	}
	defer doc.Close()

	paragraphs, rows, err := wordContent(doc.Editable().GetContent())
	if err != nil {
		return model.Result{}, &ParseError{Path: path, Err: err}
	}

	lines := make([]string, 0, len(paragraphs)+len(rows))
	lines = append(lines, paragraphs...)
	lines = append(lines, rows...)
	return model.New("docx", []model.Page{{Text: strings.Join(lines, "\n")}}), nil
}

// wordContent walks the document XML and pulls out top-level paragraph
// texts and table rows. Paragraphs inside table cells belong to the cell,
// not the paragraph list.
func wordContent(content string) (paragraphs, rows []string, err error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		tableDepth int
		inPara     bool
		inCell     bool
		inText     bool
		para       strings.Builder
		cell       strings.Builder
		rowCells   []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				if tableDepth == 1 {
					rowCells = nil
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					para.Reset()
				}
			case "t":
				inText = true
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cell.Write(t)
			} else if inPara {
				para.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "tr":
				if tableDepth == 1 && len(rowCells) > 0 {
					rows = append(rows, strings.Join(rowCells, " | "))
				}
			case "tc":
				if tableDepth == 1 && inCell {
					if text := strings.TrimSpace(cell.String()); text != "" {
						rowCells = append(rowCells, text)
					}
					inCell = false
				}
			case "p":
				if inPara {
					if text := para.String(); strings.TrimSpace(text) != "" {
						paragraphs = append(paragraphs, text)
					}
					inPara = false
				}
			case "t":
				inText = false
			}
		}
	}
	return paragraphs, rows, nil
}
