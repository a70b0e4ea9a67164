package core

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/logger"
	"github.com/nodewee/doc-translate/pkg/types"
	"github.com/nodewee/doc-translate/pkg/utils"
)

// ErrNoFile is returned when the pipeline is started without a file
var ErrNoFile = utils.NewValidationError(constants.MsgNoFile, nil)

// DefaultTranslationProcessor runs dispatch, extraction and translation in
// sequence. It keeps no state between calls.
type DefaultTranslationProcessor struct {
	factory    interfaces.ExtractorFactory
	translator interfaces.Translator
	logger     *logger.Logger
}

// NewTranslationProcessor creates a processor with the default extractors
func NewTranslationProcessor(translator interfaces.Translator, log *logger.Logger) *DefaultTranslationProcessor {
	return NewTranslationProcessorWithFactory(NewExtractorFactory(log), translator, log)
}

// NewTranslationProcessorWithFactory creates a processor using factory for dispatch
func NewTranslationProcessorWithFactory(factory interfaces.ExtractorFactory, translator interfaces.Translator, log *logger.Logger) *DefaultTranslationProcessor {
	return &DefaultTranslationProcessor{
		factory:    factory,
		translator: translator,
		logger:     log,
	}
}

// Process extracts the text of file and translates it. A nil file aborts
// with ErrNoFile before any extraction or network call.
func (p *DefaultTranslationProcessor) Process(ctx context.Context, file *types.UploadedFile) (*interfaces.TranslationResult, error) {
	if file == nil {
		return nil, ErrNoFile
	}

	startTime := time.Now()
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID, "file", file.Name)

	info := utils.GetFileInfo(file)
	log.Info("=== Starting translation ===")
	log.Info("  Extension: %s", info.Extension)
	log.Info("  Size: %d bytes", info.Size)
	log.Info("  Format: %s", info.Format)

	if info.Size > constants.WarnFileSizeLimit {
		log.Warn("Large file detected (%d bytes), extraction may take longer", info.Size)
	}

	text, extractorUsed, err := p.extract(ctx, log, file)
	if err != nil {
		log.Error("Extraction failed: %v", err)
		return nil, err
	}

	log.Progress("🌐", "Translating %d characters", len(text))
	translated, err := p.translator.Translate(ctx, text)
	if err != nil {
		log.Error("Translation failed: %v", err)
		return nil, wrapTranslationError(err)
	}

	result := &interfaces.TranslationResult{
		RunID:          runID,
		Source:         file.Name,
		ExtractorUsed:  extractorUsed,
		ExtractedText:  text,
		TranslatedText: translated,
		ProcessTime:    time.Since(startTime).Milliseconds(),
	}

	log.Progress("✅", "Translation completed in %dms", result.ProcessTime)
	log.Info("=== Translation completed ===")
	return result, nil
}

// extract dispatches on the file suffix. An unrecognized suffix yields empty
// text rather than an error.
func (p *DefaultTranslationProcessor) extract(ctx context.Context, log *logger.Logger, file *types.UploadedFile) (string, string, error) {
	extractor, ok := p.factory.CreateExtractor(file)
	if !ok {
		log.Warn("Unrecognized file type for %s, translating empty text", file.Name)
		return "", "", nil
	}

	log.Progress("🔍", "Extracting text with %s", extractor.Name())
	text, err := extractor.Extract(ctx, file.Data)
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return "", extractor.Name(), appErr.WithContext("extractor", extractor.Name())
		}
		return "", extractor.Name(), utils.WrapError(err, utils.ErrorTypeExtraction, "text extraction failed").
			WithContext("extractor", extractor.Name())
	}

	log.Info("Extracted %d characters with %s", len(text), extractor.Name())
	return text, extractor.Name(), nil
}

// wrapTranslationError keeps origin-typed errors as they are and classifies
// anything a custom translator returns
func wrapTranslationError(err error) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return utils.WrapError(err, "", "translation failed")
}
