package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docminder/docminder/internal/config"
	"github.com/docminder/docminder/internal/core/ports"
	"github.com/docminder/docminder/internal/core/usecase"
	"github.com/docminder/docminder/internal/engine"
	"github.com/docminder/docminder/internal/infrastructure/extractor/composite"
	"github.com/docminder/docminder/internal/infrastructure/extractor/pdffile"
	"github.com/docminder/docminder/internal/infrastructure/extractor/plaintext"
	"github.com/docminder/docminder/internal/infrastructure/extractor/spreadsheet"
	"github.com/docminder/docminder/internal/infrastructure/llm/gemini"
	"github.com/docminder/docminder/internal/infrastructure/queue/nats"
	"github.com/docminder/docminder/internal/infrastructure/repository/postgres"
	"github.com/docminder/docminder/internal/infrastructure/resilience"
	"github.com/docminder/docminder/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	IngestUC    ports.DocumentIngestor
	ProcessUC   ports.DocumentProcessor
	DocumentsUC ports.DocumentReader
	ActionsUC   ports.ActionItemService
	InsightsUC  ports.InsightsService

	closeFn func()
}

// New wires the application graph. onFallback is invoked with a reason each
// time the external analyzer is unavailable and the local pipeline takes
// over; pass nil when no observer is interested.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, onFallback func(reason string)) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	actionRepo := postgres.NewActionRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig(), logger)
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	extractor := composite.NewExtractor(
		plaintext.NewExtractor(storage),
		pdffile.NewExtractor(storage),
		spreadsheet.NewExtractor(storage),
	)

	var analyzer engine.Analyzer
	var closeAnalyzer func() error
	if cfg.AnalyzerEnabled && cfg.GeminiAPIKey != "" {
		g, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.GeminiTimeoutSecs)*time.Second)
		if err != nil {
			return nil, fmt.Errorf("init gemini analyzer: %w", err)
		}
		analyzer = g
		closeAnalyzer = g.Close
		logger.Info("analyzer_enabled", "model", cfg.GeminiModel)
	} else {
		logger.Info("analyzer_disabled", "reason", "no api key or disabled by config")
	}

	eng := engine.New(analyzer, logger, onFallback)

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, actionRepo, extractor, eng)
	documentsUC := usecase.NewDocumentReadUseCase(repo, storage)
	actionsUC := usecase.NewActionItemUseCase(actionRepo)
	insightsUC := usecase.NewInsightsUseCase(repo, actionRepo)

	return &App{
		Config: cfg,
		Logger: logger,
		Queue:  queue,
		Repo:   repo,

		IngestUC:    ingestUC,
		ProcessUC:   processUC,
		DocumentsUC: documentsUC,
		ActionsUC:   actionsUC,
		InsightsUC:  insightsUC,

		closeFn: func() {
			queue.Close()
			if closeAnalyzer != nil {
				_ = closeAnalyzer()
			}
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
