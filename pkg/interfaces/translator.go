package interfaces

import (
	"context"

	"github.com/nodewee/doc-translate/pkg/types"
)

// Translator sends text to a translation backend
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// TranslationResult holds the outcome of one pipeline run
type TranslationResult struct {
	RunID          string `json:"run_id"`
	Source         string `json:"source"`
	ExtractorUsed  string `json:"extractor_used"`
	ExtractedText  string `json:"extracted_text"`
	TranslatedText string `json:"translated_text"`
	ProcessTime    int64  `json:"process_time_ms"`
}

// TranslationProcessor runs dispatch, extraction and translation for one file
type TranslationProcessor interface {
	Process(ctx context.Context, file *types.UploadedFile) (*TranslationResult, error)
}
