package category

import (
	"context"
)

// Repository defines the interface for category data access.
// Deactivate performs the soft delete: rows are never removed because
// historical transactions keep referencing them.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Deactivate(ctx context.Context, id int64) error
}
