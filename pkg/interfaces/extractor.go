package interfaces

import (
	"context"

	"github.com/nodewee/doc-translate/pkg/types"
)

// Extractor defines the interface for text extraction
type Extractor interface {
	// Extract turns a document's bytes into plain text
	Extract(ctx context.Context, data []byte) (string, error)

	// Name returns the name of the extractor
	Name() string
}

// RawTextExtractor is the Word document collaborator. It returns the raw
// text of a .docx container.
type RawTextExtractor interface {
	ExtractRawText(data []byte) (string, error)
}

// PDFLoader is the PDF parsing collaborator
type PDFLoader interface {
	Load(data []byte) (PDFDocument, error)
}

// PDFDocument is an opened PDF. Pages are numbered from 1.
type PDFDocument interface {
	NumPages() int
	Page(n int) (PDFPage, error)
}

// PDFPage yields the text items of a single page in reading order
type PDFPage interface {
	TextItems() ([]string, error)
}

// ExtractorFactory selects an extractor for an uploaded file
type ExtractorFactory interface {
	// CreateExtractor returns the extractor registered for the file's suffix
	CreateExtractor(file *types.UploadedFile) (Extractor, bool)

	// RegisterExtractor replaces the extractor for a suffix
	RegisterExtractor(suffix string, extractor Extractor)

	// ListExtractors returns registered extractor names in dispatch order
	ListExtractors() []string
}
