package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

type statusCall struct {
	status domain.DocumentStatus
	errMsg string
}

type processRepoFake struct {
	doc           *domain.Document
	getErr        error
	saveErr       error
	failStatusErr error
	statusCalls   []statusCall
	savedCategory domain.Category
	savedText     string
	savedID       string
}

func (f *processRepoFake) Create(context.Context, *domain.Document) error { return nil }

func (f *processRepoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *processRepoFake) List(context.Context, domain.DocumentFilter) ([]domain.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *processRepoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	if status == domain.StatusFailed && f.failStatusErr != nil {
		return f.failStatusErr
	}
	return nil
}

func (f *processRepoFake) SaveAnalysis(_ context.Context, id string, category domain.Category, text string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedID = id
	f.savedCategory = category
	f.savedText = text
	return nil
}

func (f *processRepoFake) Delete(context.Context, string) error { return nil }

func (f *processRepoFake) CountByCategory(context.Context) (map[domain.Category]int, error) {
	return nil, errors.New("not implemented")
}

func (f *processRepoFake) CountByFileType(context.Context) (map[string]int, error) {
	return nil, errors.New("not implemented")
}

func (f *processRepoFake) CountCreatedSince(context.Context, time.Time) (int, error) {
	return 0, errors.New("not implemented")
}

type actionStoreFake struct {
	created        []domain.ActionItem
	clearedDocID   string
	createErr      error
	deleteByDocErr error
}

func (f *actionStoreFake) Create(_ context.Context, item *domain.ActionItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *item)
	return nil
}

func (f *actionStoreFake) CreateBatch(_ context.Context, items []domain.ActionItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, items...)
	return nil
}

func (f *actionStoreFake) List(context.Context, domain.ActionFilter) ([]domain.ActionItem, error) {
	return nil, errors.New("not implemented")
}

func (f *actionStoreFake) GetByID(context.Context, string) (*domain.ActionItem, error) {
	return nil, errors.New("not implemented")
}

func (f *actionStoreFake) SetCompleted(context.Context, string, bool) error {
	return errors.New("not implemented")
}

func (f *actionStoreFake) Delete(context.Context, string) error { return nil }

func (f *actionStoreFake) DeleteByDocument(_ context.Context, documentID string) error {
	if f.deleteByDocErr != nil {
		return f.deleteByDocErr
	}
	f.clearedDocID = documentID
	return nil
}

func (f *actionStoreFake) CountByCompletion(context.Context, bool) (int, error) {
	return 0, errors.New("not implemented")
}

type extractorFake struct {
	text string
	err  error
}

func (f *extractorFake) Extract(context.Context, *domain.Document) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type pipelineFake struct {
	category domain.Category
	items    []domain.ActionItem
	gotText  string
	gotName  string
}

func (f *pipelineFake) Process(_ context.Context, text, filename string) (domain.Category, []domain.ActionItem) {
	f.gotText = text
	f.gotName = filename
	return f.category, f.items
}

func TestProcessByIDSuccess(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1", OriginalFilename: "bill.pdf"}}
	actions := &actionStoreFake{}
	pipeline := &pipelineFake{
		category: domain.CategoryFinance,
		items: []domain.ActionItem{
			{Kind: domain.ActionTodo, Title: "Finance Task", Category: domain.CategoryFinance},
		},
	}
	uc := NewProcessDocumentUseCase(repo, actions, &extractorFake{text: "pay the bill"}, pipeline)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected 2 status calls, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[0].status != domain.StatusProcessing || repo.statusCalls[1].status != domain.StatusReady {
		t.Fatalf("unexpected status sequence: %+v", repo.statusCalls)
	}
	if repo.savedID != "doc-1" || repo.savedCategory != domain.CategoryFinance {
		t.Fatalf("expected analysis saved for doc-1, got %s/%s", repo.savedID, repo.savedCategory)
	}
	if repo.savedText != "pay the bill" {
		t.Fatalf("expected extracted text persisted, got %q", repo.savedText)
	}
	if pipeline.gotName != "bill.pdf" {
		t.Fatalf("pipeline must see the original filename, got %q", pipeline.gotName)
	}
	if actions.clearedDocID != "doc-1" {
		t.Fatalf("expected previous items cleared for doc-1, got %q", actions.clearedDocID)
	}
	if len(actions.created) != 1 {
		t.Fatalf("expected 1 stored item, got %d", len(actions.created))
	}
	stored := actions.created[0]
	if stored.ID == "" || stored.DocumentID != "doc-1" || stored.CreatedAt.IsZero() {
		t.Fatalf("stored item missing identity stamps: %+v", stored)
	}
}

func TestProcessByIDEmptyTextStillClassifies(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-2", OriginalFilename: "insurance_card.png", FileType: "png"}}
	actions := &actionStoreFake{}
	pipeline := &pipelineFake{category: domain.CategoryInsurance}
	uc := NewProcessDocumentUseCase(repo, actions, &extractorFake{text: ""}, pipeline)

	if err := uc.ProcessByID(context.Background(), "doc-2"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if pipeline.gotText != "" || pipeline.gotName != "insurance_card.png" {
		t.Fatalf("expected filename-only analysis, got %q/%q", pipeline.gotText, pipeline.gotName)
	}
	if repo.savedCategory != domain.CategoryInsurance {
		t.Fatalf("expected Insurance saved, got %s", repo.savedCategory)
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusReady {
		t.Fatalf("empty text must still end ready, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDMarksFailedOnExtractError(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1"}}
	uc := NewProcessDocumentUseCase(repo, &actionStoreFake{}, &extractorFake{err: errors.New("extract fail")}, &pipelineFake{})

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected processing + failed status updates, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[1].status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %+v", repo.statusCalls[1])
	}
}

func TestProcessByIDMarksFailedOnStoreError(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1"}}
	actions := &actionStoreFake{createErr: errors.New("db down")}
	pipeline := &pipelineFake{
		category: domain.CategoryMedical,
		items:    []domain.ActionItem{{Kind: domain.ActionTodo, Title: "Medical Task"}},
	}
	uc := NewProcessDocumentUseCase(repo, actions, &extractorFake{text: "text"}, pipeline)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}
