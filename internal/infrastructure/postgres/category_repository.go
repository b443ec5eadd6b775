package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expensetracker/internal/domain/category"
)

// CategoryRepository implements the category.Repository interface for PostgreSQL
type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, params category.CreateParams) (*category.Category, error) {
	query := `
		INSERT INTO categories (name, type, parent_category_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, parent_category_id, is_active, created_at, updated_at
	`

	var cat category.Category
	var parentID sql.NullInt64

	err := r.db.QueryRowContext(
		ctx, query,
		params.Name, params.Type, nullInt64Ptr(params.ParentCategoryID),
	).Scan(
		&cat.ID, &cat.Name, &cat.Type, &parentID,
		&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if parentID.Valid {
		cat.ParentCategoryID = &parentID.Int64
	}
	return &cat, nil
}

// GetByID retrieves a category by its ID. Returns (nil, nil) when no row matches.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	query := `
		SELECT id, name, type, parent_category_id, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var cat category.Category
	var parentID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cat.ID, &cat.Name, &cat.Type, &parentID,
		&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if parentID.Valid {
		cat.ParentCategoryID = &parentID.Int64
	}
	return &cat, nil
}

// Deactivate soft-deletes a category; the row survives for the
// transactions that still reference it.
func (r *CategoryRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE categories SET is_active = FALSE, updated_at = now() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	return nil
}

func nullInt64Ptr(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
