package ports

import (
	"context"
	"io"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, originalFilename string, size int64, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document processing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// DocumentReader is the inbound read model for document metadata and state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// ActionItemService is the inbound contract for action item management.
type ActionItemService interface {
	List(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionItem, error)
	Add(ctx context.Context, kind domain.ActionKind, title, description string, due *time.Time, category domain.Category) (*domain.ActionItem, error)
	Toggle(ctx context.Context, id string) (*domain.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

// InsightsService is the inbound read model for aggregate document statistics.
type InsightsService interface {
	Overview(ctx context.Context) (*domain.Insights, error)
}
