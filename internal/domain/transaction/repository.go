package transaction

import (
	"context"
)

// Repository defines the interface for ledger data access. List and its
// count share one Filter so the pagination envelope can never disagree
// with the page it describes.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Transaction, error)
	CreateAttachment(ctx context.Context, params CreateAttachmentParams) (*Attachment, error)
	// List returns one page of filtered transactions, newest first,
	// together with the total filtered row count.
	List(ctx context.Context, filter Filter, page PageRequest) ([]*Transaction, int64, error)
	// MonthlySummary groups the whole ledger by (YYYY-MM, type).
	MonthlySummary(ctx context.Context) ([]MonthlySummaryRow, error)
	// CategorySummary sums per category. When typeFilter is non-empty the
	// result is the top-limit categories by total; otherwise every
	// (category, type) pair is returned.
	CategorySummary(ctx context.Context, typeFilter string, limit int) ([]CategorySummaryRow, error)
	// CategoryRollup groups by (parent-or-self, category), highest total first.
	CategoryRollup(ctx context.Context, filter Filter) ([]RollupRow, error)
	// Summary returns the per-category breakdown plus the grand total for
	// the filtered set.
	Summary(ctx context.Context, filter Filter) (*Summary, error)
}
