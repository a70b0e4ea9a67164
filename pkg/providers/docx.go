package providers

import (
	"context"

	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/utils"
)

// DocxExtractor hands Word documents to a raw text collaborator
type DocxExtractor struct {
	name         string
	collaborator interfaces.RawTextExtractor
}

// NewDocxExtractor creates a Word extractor. A nil collaborator selects the
// built-in WordML reader.
func NewDocxExtractor(collaborator interfaces.RawTextExtractor) interfaces.Extractor {
	if collaborator == nil {
		collaborator = NewWordMLExtractor()
	}
	return &DocxExtractor{
		name:         "docx",
		collaborator: collaborator,
	}
}

// Extract returns the collaborator's raw text verbatim
func (e *DocxExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if len(data) == 0 {
		return "", nil
	}

	text, err := e.collaborator.ExtractRawText(data)
	if err != nil {
		return "", utils.NewExtractionError("failed to extract raw text from Word document", err)
	}
	return text, nil
}

// Name returns the name of the extractor
func (e *DocxExtractor) Name() string {
	return e.name
}
