package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

type actionStoreMemFake struct {
	actionStoreFake
	items map[string]*domain.ActionItem
}

func newActionStoreMemFake() *actionStoreMemFake {
	return &actionStoreMemFake{items: make(map[string]*domain.ActionItem)}
}

func (f *actionStoreMemFake) Create(_ context.Context, item *domain.ActionItem) error {
	copyItem := *item
	f.items[item.ID] = &copyItem
	return nil
}

func (f *actionStoreMemFake) GetByID(_ context.Context, id string) (*domain.ActionItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrActionNotFound, "get action item", domain.ErrActionNotFound)
	}
	copyItem := *item
	return &copyItem, nil
}

func (f *actionStoreMemFake) SetCompleted(_ context.Context, id string, completed bool) error {
	item, ok := f.items[id]
	if !ok {
		return domain.WrapError(domain.ErrActionNotFound, "set action completed", domain.ErrActionNotFound)
	}
	item.Completed = completed
	return nil
}

func TestAddManualActionItem(t *testing.T) {
	store := newActionStoreMemFake()
	uc := NewActionItemUseCase(store)

	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	item, err := uc.Add(context.Background(), domain.ActionTodo, "Renew passport", "Expires soon", &due, domain.CategoryID)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if item.ID == "" || item.CreatedAt.IsZero() {
		t.Fatalf("expected identity stamps, got %+v", item)
	}
	if item.DocumentID != "" {
		t.Fatalf("manual items must not reference a document, got %q", item.DocumentID)
	}
	if _, ok := store.items[item.ID]; !ok {
		t.Fatalf("expected item persisted")
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	uc := NewActionItemUseCase(newActionStoreMemFake())

	_, err := uc.Add(context.Background(), domain.ActionTodo, "   ", "", nil, domain.CategoryOther)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddNormalizesKindAndCategory(t *testing.T) {
	store := newActionStoreMemFake()
	uc := NewActionItemUseCase(store)

	item, err := uc.Add(context.Background(), domain.ActionKind("meeting"), "Call clinic", "", nil, domain.Category("Veterinary"))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if item.Kind != domain.ActionTodo {
		t.Fatalf("unknown kind must default to todo, got %s", item.Kind)
	}
	if item.Category != domain.CategoryOther {
		t.Fatalf("unknown category must collapse to Other, got %s", item.Category)
	}
}

func TestToggleFlipsCompletion(t *testing.T) {
	store := newActionStoreMemFake()
	uc := NewActionItemUseCase(store)

	created, err := uc.Add(context.Background(), domain.ActionTodo, "Pay bill", "", nil, domain.CategoryFinance)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	toggled, err := uc.Toggle(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected completed after first toggle")
	}

	toggled, err = uc.Toggle(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if toggled.Completed {
		t.Fatalf("expected pending after second toggle")
	}
}

func TestToggleMissingItem(t *testing.T) {
	uc := NewActionItemUseCase(newActionStoreMemFake())

	_, err := uc.Toggle(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}
