package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

type analyzerPayload struct {
	Category string `json:"category"`
	Todos    []struct {
		Type        string  `json:"type"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		DueDateISO  *string `json:"due_date_iso"`
		Category    string  `json:"category"`
	} `json:"todos"`
	Entities map[string]any `json:"entities"`
}

// parseAnalyzerResponse turns the raw model output into a normalized result.
// The model occasionally wraps its JSON in fences or stray prose, so the
// object is recovered from the first '{' to the last '}' before decoding.
// Unknown categories collapse to Other, unknown item types to todo, and an
// unparsable due date becomes no due date at all.
func parseAnalyzerResponse(raw string) (*domain.AnalyzerResult, error) {
	obj := extractJSONObject(raw)
	if obj == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload analyzerPayload
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return nil, fmt.Errorf("decode response object: %w", err)
	}

	category := domain.NormalizeCategory(payload.Category)
	items := make([]domain.ActionItem, 0, len(payload.Todos))
	for _, todo := range payload.Todos {
		kind := domain.ActionTodo
		if strings.EqualFold(todo.Type, string(domain.ActionAppointment)) {
			kind = domain.ActionAppointment
		}
		title := strings.TrimSpace(todo.Title)
		if title == "" {
			title = "Task"
		}
		items = append(items, domain.ActionItem{
			Kind:        kind,
			Title:       title,
			Description: todo.Description,
			DueAt:       parseISODate(todo.DueDateISO),
			Category:    category,
		})
	}

	return &domain.AnalyzerResult{
		Category: category,
		Items:    items,
		Entities: payload.Entities,
	}, nil
}

// extractJSONObject recovers the outermost object from model output that may
// carry markdown fences or prose around the JSON.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

func parseISODate(iso *string) *time.Time {
	if iso == nil {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*iso))
	if err != nil {
		return nil
	}
	return &parsed
}
