package account

import (
	"context"
)

// Repository defines the interface for account data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	Delete(ctx context.Context, id int64) error
	// CountTransactions returns the number of transactions referencing the account.
	CountTransactions(ctx context.Context, id int64) (int64, error)
}
