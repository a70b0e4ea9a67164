package providers

import (
	"context"

	"github.com/nodewee/doc-translate/pkg/interfaces"
)

// TextFileExtractor handles plain text files
type TextFileExtractor struct {
	name string
}

// NewTextFileExtractor creates a new text file extractor
func NewTextFileExtractor() interfaces.Extractor {
	return &TextFileExtractor{
		name: "text-file",
	}
}

// Extract returns the file content unchanged, decoded as UTF-8
func (e *TextFileExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	return string(data), nil
}

// Name returns the name of the extractor
func (e *TextFileExtractor) Name() string {
	return e.name
}
