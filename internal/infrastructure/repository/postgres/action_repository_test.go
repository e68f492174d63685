package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/docminder/docminder/internal/core/domain"
)

func newActionRepoWithMock(t *testing.T) (*ActionRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &ActionRepository{db: db}, mock, func() { _ = db.Close() }
}

func actionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "document_id", "kind", "title", "description",
		"due_at", "category", "completed", "created_at",
	})
}

func TestListActionItemsAppliesFilters(t *testing.T) {
	repo, mock, done := newActionRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	due := now.Add(24 * time.Hour)
	mock.ExpectQuery("SELECT id, document_id, kind").
		WithArgs("todo", false).
		WillReturnRows(actionRows().AddRow(
			"act-1", "doc-1", "todo", "Pharmacy Task", "Refill by tomorrow",
			due, "Pharmacy", false, now,
		))

	completed := false
	items, err := repo.List(context.Background(), domain.ActionFilter{
		Kind:      domain.ActionTodo,
		Completed: &completed,
	})
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Kind != domain.ActionTodo || item.Category != domain.CategoryPharmacy {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.DueAt == nil || !item.DueAt.Equal(due) {
		t.Fatalf("expected due %s, got %v", due, item.DueAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListActionItemsScansNullDueDate(t *testing.T) {
	repo, mock, done := newActionRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, document_id, kind").
		WillReturnRows(actionRows().AddRow(
			"act-2", nil, "appointment", "Medical Appointment", "Come see us",
			nil, "Medical", false, now,
		))

	items, err := repo.List(context.Background(), domain.ActionFilter{})
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if items[0].DueAt != nil {
		t.Fatalf("expected nil due date, got %v", items[0].DueAt)
	}
	if items[0].DocumentID != "" {
		t.Fatalf("expected empty document id, got %q", items[0].DocumentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetCompletedReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newActionRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE action_items").
		WithArgs("missing", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetCompleted(context.Background(), "missing", true)
	if !domain.IsKind(err, domain.ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateBatchInsertsAllItemsInOneTx(t *testing.T) {
	repo, mock, done := newActionRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	items := []domain.ActionItem{
		{ID: "a1", DocumentID: "doc-1", Kind: domain.ActionAppointment, Title: "Dental Appointment", Category: domain.CategoryDental, CreatedAt: now},
		{ID: "a2", DocumentID: "doc-1", Kind: domain.ActionTodo, Title: "Dental Task", Category: domain.CategoryDental, CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO action_items").
		WithArgs("a1", "doc-1", "appointment", "Dental Appointment", "", nil, "Dental", false, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO action_items").
		WithArgs("a2", "doc-1", "todo", "Dental Task", "", nil, "Dental", false, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.CreateBatch(context.Background(), items); err != nil {
		t.Fatalf("CreateBatch error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateBatchNoItemsIsNoop(t *testing.T) {
	repo, mock, done := newActionRepoWithMock(t)
	defer done()

	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("CreateBatch error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
