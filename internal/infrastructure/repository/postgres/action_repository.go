package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/docminder/docminder/internal/core/domain"
)

type ActionRepository struct {
	db *sql.DB
}

func NewActionRepository(db *sql.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

const actionColumns = `id, document_id, kind, title, description, due_at, category, completed, created_at`

func (r *ActionRepository) Create(ctx context.Context, item *domain.ActionItem) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO action_items (id, document_id, kind, title, description, due_at, category, completed, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, item.ID, nullableID(item.DocumentID), string(item.Kind), item.Title, item.Description,
		item.DueAt, string(item.Category), item.Completed, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("create action item: %w", err)
	}
	return nil
}

func (r *ActionRepository) CreateBatch(ctx context.Context, items []domain.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
INSERT INTO action_items (id, document_id, kind, title, description, due_at, category, completed, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, item.ID, nullableID(item.DocumentID), string(item.Kind), item.Title, item.Description,
			item.DueAt, string(item.Category), item.Completed, item.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert action item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch tx: %w", err)
	}
	return nil
}

func (r *ActionRepository) List(ctx context.Context, filter domain.ActionFilter) ([]domain.ActionItem, error) {
	query := `
SELECT ` + actionColumns + `
FROM action_items
`
	var conditions []string
	var args []any
	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Kind != "" {
		addCondition("kind", string(filter.Kind))
	}
	if filter.Category != "" {
		addCondition("category", string(filter.Category))
	}
	if filter.DocumentID != "" {
		addCondition("document_id", filter.DocumentID)
	}
	if filter.Completed != nil {
		addCondition("completed", *filter.Completed)
	}
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY due_at ASC NULLS LAST, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ActionItem, 0)
	for rows.Next() {
		item, err := scanActionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action items: %w", err)
	}
	return out, nil
}

func (r *ActionRepository) GetByID(ctx context.Context, id string) (*domain.ActionItem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+actionColumns+`
FROM action_items
WHERE id = $1
`, id)

	item, err := scanActionItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrActionNotFound, "get action item", err)
		}
		return nil, fmt.Errorf("get action item: %w", err)
	}
	return &item, nil
}

func (r *ActionRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE action_items
SET completed = $2
WHERE id = $1
`, id, completed)
	if err != nil {
		return fmt.Errorf("set action completed: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set action completed rows affected: %w", err)
	}
	if rows == 0 {
		return domain.WrapError(domain.ErrActionNotFound, "set action completed", sql.ErrNoRows)
	}
	return nil
}

func (r *ActionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM action_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete action item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete action item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.WrapError(domain.ErrActionNotFound, "delete action item", sql.ErrNoRows)
	}
	return nil
}

func (r *ActionRepository) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM action_items WHERE document_id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("delete document action items: %w", err)
	}
	return nil
}

func (r *ActionRepository) CountByCompletion(ctx context.Context, completed bool) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM action_items WHERE completed = $1`, completed).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count actions by completion: %w", err)
	}
	return count, nil
}

// nullableID maps an empty document reference to NULL so manual items do not
// violate the foreign key.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

func scanActionItem(row rowScanner) (domain.ActionItem, error) {
	var item domain.ActionItem
	var documentID sql.NullString
	var dueAt sql.NullTime
	var kind, category string
	err := row.Scan(
		&item.ID,
		&documentID,
		&kind,
		&item.Title,
		&item.Description,
		&dueAt,
		&category,
		&item.Completed,
		&item.CreatedAt,
	)
	if err != nil {
		return domain.ActionItem{}, err
	}
	item.DocumentID = documentID.String
	if dueAt.Valid {
		due := dueAt.Time
		item.DueAt = &due
	}
	item.Kind = domain.ActionKind(kind)
	item.Category = domain.Category(category)
	return item, nil
}
