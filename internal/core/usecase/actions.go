package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docminder/docminder/internal/core/domain"
	"github.com/docminder/docminder/internal/core/ports"
)

type ActionItemUseCase struct {
	store ports.ActionItemStore
}

func NewActionItemUseCase(store ports.ActionItemStore) *ActionItemUseCase {
	return &ActionItemUseCase{store: store}
}

func (uc *ActionItemUseCase) List(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionItem, error) {
	return uc.store.List(ctx, filter)
}

// Add creates a manual action item not tied to any document.
func (uc *ActionItemUseCase) Add(
	ctx context.Context,
	kind domain.ActionKind,
	title, description string,
	due *time.Time,
	category domain.Category,
) (*domain.ActionItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "add action item", errors.New("title is required"))
	}
	if kind != domain.ActionAppointment && kind != domain.ActionTodo {
		kind = domain.ActionTodo
	}

	item := &domain.ActionItem{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		DueAt:       due,
		Category:    domain.NormalizeCategory(string(category)),
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Toggle flips completion and returns the updated item.
func (uc *ActionItemUseCase) Toggle(ctx context.Context, id string) (*domain.ActionItem, error) {
	item, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.store.SetCompleted(ctx, id, !item.Completed); err != nil {
		return nil, err
	}

	item.Completed = !item.Completed
	return item, nil
}

func (uc *ActionItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}
