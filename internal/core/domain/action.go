package domain

import "time"

type ActionKind string

const (
	ActionAppointment ActionKind = "appointment"
	ActionTodo        ActionKind = "todo"
)

// ActionItem is an extracted appointment or todo with an optional due date.
// The engine produces these; the persistence layer owns them after return.
type ActionItem struct {
	ID          string     `json:"id,omitempty"`
	DocumentID  string     `json:"document_id,omitempty"`
	Kind        ActionKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	Category    Category   `json:"category"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AnalyzerResult is the normalized output of the external analyzer.
// It exists only transiently during one process call.
type AnalyzerResult struct {
	Category Category       `json:"category"`
	Items    []ActionItem   `json:"items"`
	Entities map[string]any `json:"entities,omitempty"`
}
