package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/utils"
)

// PDFExtractor assembles page text from a PDF collaborator
type PDFExtractor struct {
	name   string
	loader interfaces.PDFLoader
}

// NewPDFExtractor creates a PDF extractor. A nil loader selects the
// ledongthuc/pdf backed loader.
func NewPDFExtractor(loader interfaces.PDFLoader) interfaces.Extractor {
	if loader == nil {
		loader = NewLedongthucLoader()
	}
	return &PDFExtractor{
		name:   "pdf",
		loader: loader,
	}
}

// Extract walks pages 1..N in ascending order. Items of a page are joined
// with a single space and every page is terminated by a newline. Item order
// within a page is whatever reading order the loader reports.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	doc, err := e.loader.Load(data)
	if err != nil {
		return "", utils.NewExtractionError("failed to open PDF document", err)
	}

	var text strings.Builder
	numPages := doc.NumPages()
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page, err := doc.Page(i)
		if err != nil {
			return "", utils.NewExtractionError(fmt.Sprintf("failed to load page %d/%d", i, numPages), err).
				WithContext("page", i)
		}

		items, err := page.TextItems()
		if err != nil {
			return "", utils.NewExtractionError(fmt.Sprintf("failed to read text of page %d/%d", i, numPages), err).
				WithContext("page", i)
		}

		text.WriteString(strings.Join(items, constants.PDFItemSeparator))
		text.WriteString(constants.PDFPageSeparator)
	}

	return text.String(), nil
}

// Name returns the name of the extractor
func (e *PDFExtractor) Name() string {
	return e.name
}
