package engine

import (
	"context"
	"log/slog"

	"github.com/docminder/docminder/internal/core/domain"
)

// Analyzer is the optional external structured-text analyzer. A nil result
// with a nil error means the analyzer produced nothing usable; both cases
// route the call to the local rule-based pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, text, filename string) (*domain.AnalyzerResult, error)
}

// Engine classifies document text and extracts action items. It prefers the
// external analyzer when one is configured and falls back to the local
// categorizer and action extractor on any analyzer failure. Process never
// returns an error: partial and ambiguous inputs degrade to documented
// defaults instead of failing the call.
//
// The engine holds no mutable state; a single instance serves concurrent
// calls without locking.
type Engine struct {
	categorizer *Categorizer
	extractor   *ActionExtractor
	analyzer    Analyzer
	logger      *slog.Logger
	onFallback  func(reason string)
}

// New builds an engine. analyzer may be nil when no external analyzer is
// configured; onFallback, if non-nil, is invoked once per call that had an
// analyzer configured but fell back to the local pipeline.
func New(analyzer Analyzer, logger *slog.Logger, onFallback func(reason string)) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		categorizer: NewCategorizer(),
		extractor:   NewActionExtractor(),
		analyzer:    analyzer,
		logger:      logger,
		onFallback:  onFallback,
	}
}

// Process returns the document category and the ordered action items for the
// given text and filename. The analyzer-versus-local choice is evaluated
// fresh on every call; an analyzer failure on one call carries nothing over
// to the next.
func (e *Engine) Process(ctx context.Context, text, filename string) (domain.Category, []domain.ActionItem) {
	if e.analyzer != nil {
		result, err := e.analyzer.Analyze(ctx, text, filename)
		switch {
		case err != nil:
			e.fallback("analyzer_error", filename, err)
		case result == nil:
			e.fallback("empty_result", filename, nil)
		default:
			return e.fromAnalyzer(result)
		}
	}

	category := e.categorizer.Categorize(text, filename)
	return category, e.extractor.Extract(text, category)
}

// fromAnalyzer clamps analyzer output onto the closed taxonomy so that every
// returned item carries a valid category.
func (e *Engine) fromAnalyzer(result *domain.AnalyzerResult) (domain.Category, []domain.ActionItem) {
	category := domain.NormalizeCategory(string(result.Category))
	items := make([]domain.ActionItem, len(result.Items))
	for i, item := range result.Items {
		item.Category = domain.NormalizeCategory(string(item.Category))
		items[i] = item
	}
	return category, items
}

func (e *Engine) fallback(reason, filename string, err error) {
	attrs := []any{"reason", reason, "filename", filename}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	e.logger.Warn("analyzer_fallback", attrs...)
	if e.onFallback != nil {
		e.onFallback(reason)
	}
}
