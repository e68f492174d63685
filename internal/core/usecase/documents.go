package usecase

import (
	"context"
	"fmt"

	"github.com/docminder/docminder/internal/core/domain"
	"github.com/docminder/docminder/internal/core/ports"
)

type DocumentReadUseCase struct {
	repo    ports.DocumentRepository
	storage ports.ObjectStorage
}

func NewDocumentReadUseCase(repo ports.DocumentRepository, storage ports.ObjectStorage) *DocumentReadUseCase {
	return &DocumentReadUseCase{repo: repo, storage: storage}
}

func (uc *DocumentReadUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *DocumentReadUseCase) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	return uc.repo.List(ctx, filter)
}

// Delete removes the document row (action items cascade with it) and then
// the stored file. A missing file is not an error; the metadata is the
// source of truth.
func (uc *DocumentReadUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.storage.Remove(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}
