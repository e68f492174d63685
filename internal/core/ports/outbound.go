package ports

import (
	"context"
	"io"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, id string, category domain.Category, extractedText string) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context) (map[domain.Category]int, error)
	CountByFileType(ctx context.Context) (map[string]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

// ActionItemStore persists and retrieves extracted and manual action items.
type ActionItemStore interface {
	CreateBatch(ctx context.Context, items []domain.ActionItem) error
	Create(ctx context.Context, item *domain.ActionItem) error
	List(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionItem, error)
	GetByID(ctx context.Context, id string) (*domain.ActionItem, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
	DeleteByDocument(ctx context.Context, documentID string) error
	CountByCompletion(ctx context.Context, completed bool) (int, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID string) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}
