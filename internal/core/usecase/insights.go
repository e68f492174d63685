package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
	"github.com/docminder/docminder/internal/core/ports"
)

type InsightsUseCase struct {
	repo    ports.DocumentRepository
	actions ports.ActionItemStore
}

func NewInsightsUseCase(repo ports.DocumentRepository, actions ports.ActionItemStore) *InsightsUseCase {
	return &InsightsUseCase{repo: repo, actions: actions}
}

// recentWindow bounds the "recent uploads" figure on the overview.
const recentWindow = 30 * 24 * time.Hour

func (uc *InsightsUseCase) Overview(ctx context.Context) (*domain.Insights, error) {
	byCategory, err := uc.repo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	byFileType, err := uc.repo.CountByFileType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by file type: %w", err)
	}

	recent, err := uc.repo.CountCreatedSince(ctx, time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("count recent uploads: %w", err)
	}

	pending, err := uc.actions.CountByCompletion(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count pending actions: %w", err)
	}

	completed, err := uc.actions.CountByCompletion(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("count completed actions: %w", err)
	}

	total := 0
	for _, count := range byCategory {
		total += count
	}

	return &domain.Insights{
		TotalDocuments:   total,
		ByCategory:       byCategory,
		ByFileType:       byFileType,
		PendingActions:   pending,
		CompletedActions: completed,
		RecentUploads:    recent,
	}, nil
}
