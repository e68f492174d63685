package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docminder/docminder/internal/core/domain"
	"github.com/docminder/docminder/internal/core/ports"
)

// DocumentAnalyzer turns extracted text into a category and action items.
type DocumentAnalyzer interface {
	Process(ctx context.Context, text, filename string) (domain.Category, []domain.ActionItem)
}

type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	actions   ports.ActionItemStore
	extractor ports.TextExtractor
	analyzer  DocumentAnalyzer
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	actions ports.ActionItemStore,
	extractor ports.TextExtractor,
	analyzer DocumentAnalyzer,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:      repo,
		actions:   actions,
		extractor: extractor,
		analyzer:  analyzer,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	if err := uc.processPipeline(ctx, documentID); err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.markStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}

	return nil
}

func (uc *ProcessDocumentUseCase) processPipeline(ctx context.Context, documentID string) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document by id: %w", err)
	}

	// Empty text is not a failure: images and docx uploads have no extraction
	// and are classified from the filename alone.
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	category, items := uc.analyzer.Process(ctx, text, doc.OriginalFilename)

	if err := uc.repo.SaveAnalysis(ctx, doc.ID, category, text); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}

	if err := uc.replaceActionItems(ctx, doc.ID, category, items); err != nil {
		return err
	}

	return nil
}

// replaceActionItems makes reprocessing idempotent: extracted items for the
// document are rebuilt from scratch on every run.
func (uc *ProcessDocumentUseCase) replaceActionItems(ctx context.Context, documentID string, category domain.Category, items []domain.ActionItem) error {
	if err := uc.actions.DeleteByDocument(ctx, documentID); err != nil {
		return fmt.Errorf("clear previous action items: %w", err)
	}

	now := time.Now().UTC()
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].DocumentID = documentID
		items[i].CreatedAt = now
		if items[i].Category == "" {
			items[i].Category = category
		}
	}

	if err := uc.actions.CreateBatch(ctx, items); err != nil {
		return fmt.Errorf("store action items: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	return uc.repo.UpdateStatus(ctx, documentID, status, errMessage)
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.markStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
