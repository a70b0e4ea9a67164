package providers

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	wordDocumentPart = "word/document.xml"
	wordMLNamespace  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// ErrMissingDocumentPart is returned when a .docx container has no main document part
var ErrMissingDocumentPart = errors.New("docx: missing " + wordDocumentPart)

// WordMLExtractor reads the raw text of a .docx container. Each paragraph is
// followed by a blank line, tabs and breaks are kept as whitespace and all
// formatting is dropped.
type WordMLExtractor struct{}

// NewWordMLExtractor creates a WordML raw text reader
func NewWordMLExtractor() *WordMLExtractor {
	return &WordMLExtractor{}
}

// ExtractRawText implements interfaces.RawTextExtractor
func (w *WordMLExtractor) ExtractRawText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx: open container: %w", err)
	}

	for _, f := range archive.File {
		if f.Name != wordDocumentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("docx: open %s: %w", wordDocumentPart, err)
		}
		defer rc.Close()
		return readParagraphs(rc)
	}

	return "", ErrMissingDocumentPart
}

// readParagraphs walks the WordprocessingML token stream. Tabs and breaks
// count only inside a run; tab stops in paragraph properties are layout.
func readParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var text strings.Builder
	inText := false
	runDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx: parse %s: %w", wordDocumentPart, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = true
			case "tab":
				if runDepth > 0 {
					text.WriteString("\t")
				}
			case "br", "cr":
				if runDepth > 0 {
					text.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth--
			case "t":
				inText = false
			case "p":
				text.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		}
	}

	return text.String(), nil
}
