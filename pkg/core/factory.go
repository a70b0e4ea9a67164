package core

import (
	"strings"

	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/logger"
	"github.com/nodewee/doc-translate/pkg/providers"
	"github.com/nodewee/doc-translate/pkg/types"
)

// DefaultExtractorFactory implements ExtractorFactory. Extractors are keyed
// by file name suffix and consulted in the fixed dispatch order.
type DefaultExtractorFactory struct {
	extractors map[string]interfaces.Extractor
	logger     *logger.Logger
}

// NewExtractorFactory creates a new extractor factory
func NewExtractorFactory(log *logger.Logger) interfaces.ExtractorFactory {
	factory := &DefaultExtractorFactory{
		extractors: make(map[string]interfaces.Extractor),
		logger:     log,
	}

	// Register default extractors
	factory.registerDefaultExtractors()

	return factory
}

// registerDefaultExtractors wires the built-in strategies
func (f *DefaultExtractorFactory) registerDefaultExtractors() {
	f.extractors[constants.SuffixText] = providers.NewTextFileExtractor()
	f.extractors[constants.SuffixDocx] = providers.NewDocxExtractor(nil)
	f.extractors[constants.SuffixPDF] = providers.NewPDFExtractor(nil)
}

// CreateExtractor returns the extractor for the file's name suffix. The
// match is case-sensitive; false means no strategy applies.
func (f *DefaultExtractorFactory) CreateExtractor(file *types.UploadedFile) (interfaces.Extractor, bool) {
	for _, suffix := range constants.DispatchSuffixes {
		if !strings.HasSuffix(file.Name, suffix) {
			continue
		}
		extractor, ok := f.extractors[suffix]
		if ok {
			f.logger.Debug("Selected extractor '%s' for %s", extractor.Name(), file.Name)
		}
		return extractor, ok
	}

	f.logger.Debug("No extractor matches %s", file.Name)
	return nil, false
}

// RegisterExtractor replaces the extractor for one of the dispatch suffixes
func (f *DefaultExtractorFactory) RegisterExtractor(suffix string, extractor interfaces.Extractor) {
	f.extractors[suffix] = extractor
	f.logger.Debug("Registered extractor '%s' for %s", extractor.Name(), suffix)
}

// ListExtractors returns extractor names in dispatch order
func (f *DefaultExtractorFactory) ListExtractors() []string {
	names := make([]string, 0, len(constants.DispatchSuffixes))
	for _, suffix := range constants.DispatchSuffixes {
		if extractor, ok := f.extractors[suffix]; ok {
			names = append(names, extractor.Name())
		}
	}
	return names
}
