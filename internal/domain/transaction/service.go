package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"expensetracker/internal/domain/account"
	"expensetracker/internal/domain/category"
	"expensetracker/internal/shared/apperr"
)

// AccountGetter is the slice of the account repository the service needs
// to confirm a transaction's account exists.
type AccountGetter interface {
	GetByID(ctx context.Context, id int64) (*account.Account, error)
}

// CategoryGetter is the slice of the category repository the service
// needs to confirm a transaction's category exists.
type CategoryGetter interface {
	GetByID(ctx context.Context, id int64) (*category.Category, error)
}

type Service struct {
	repo       Repository
	accounts   AccountGetter
	categories CategoryGetter
}

func NewService(repo Repository, accounts AccountGetter, categories CategoryGetter) *Service {
	return &Service{repo: repo, accounts: accounts, categories: categories}
}

// Create records a transaction and, when a stored file is supplied, its
// attachment. The two inserts are sequential; a failed attachment insert
// leaves the transaction in place.
func (s *Service) Create(ctx context.Context, params CreateParams, attachment *CreateAttachmentParams) (*Transaction, *Attachment, error) {
	if err := s.validateCreate(ctx, params); err != nil {
		return nil, nil, err
	}

	txn, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("creating transaction: %w", err)
	}

	if attachment == nil {
		return txn, nil, nil
	}

	attachment.TransactionID = txn.ID
	att, err := s.repo.CreateAttachment(ctx, *attachment)
	if err != nil {
		return nil, nil, fmt.Errorf("creating attachment for transaction %d: %w", txn.ID, err)
	}
	return txn, att, nil
}

func (s *Service) validateCreate(ctx context.Context, params CreateParams) error {
	if !IsValidType(params.TransactionType) {
		return apperr.BadRequest(fmt.Sprintf("invalid transaction type: %s", params.TransactionType))
	}
	if params.Amount.LessThan(decimal.Zero) {
		return apperr.BadRequest("amount cannot be negative")
	}
	if params.TransactionDate.IsZero() {
		return apperr.BadRequest("transaction date is required")
	}

	acc, err := s.accounts.GetByID(ctx, params.AccountID)
	if err != nil {
		return fmt.Errorf("looking up account %d: %w", params.AccountID, err)
	}
	if acc == nil {
		return apperr.NotFound("account not found")
	}

	cat, err := s.categories.GetByID(ctx, params.CategoryID)
	if err != nil {
		return fmt.Errorf("looking up category %d: %w", params.CategoryID, err)
	}
	if cat == nil {
		return apperr.NotFound("category not found")
	}
	return nil
}

// List returns a page of transactions matching the filter, wrapped in the
// pagination envelope.
func (s *Service) List(ctx context.Context, filter Filter, page PageRequest) (*ListPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	if rows == nil {
		rows = []*Transaction{}
	}
	return &ListPage{
		Data:       rows,
		Pagination: NewPagination(page, total),
	}, nil
}

func (s *Service) MonthlySummary(ctx context.Context) ([]MonthlySummaryRow, error) {
	rows, err := s.repo.MonthlySummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("building monthly summary: %w", err)
	}
	if rows == nil {
		rows = []MonthlySummaryRow{}
	}
	return rows, nil
}

// DefaultCategorySummaryLimit caps the typed top-N category summary when
// the caller does not ask for a specific size.
const DefaultCategorySummaryLimit = 10

func (s *Service) CategorySummary(ctx context.Context, typeFilter string, limit int) ([]CategorySummaryRow, error) {
	if typeFilter != "" && !IsValidType(typeFilter) {
		return nil, apperr.BadRequest(fmt.Sprintf("invalid transaction type: %s", typeFilter))
	}
	if limit <= 0 {
		limit = DefaultCategorySummaryLimit
	}

	rows, err := s.repo.CategorySummary(ctx, typeFilter, limit)
	if err != nil {
		return nil, fmt.Errorf("building category summary: %w", err)
	}
	if rows == nil {
		rows = []CategorySummaryRow{}
	}
	return rows, nil
}

func (s *Service) CategoryRollup(ctx context.Context, filter Filter) ([]RollupRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.repo.CategoryRollup(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("building category rollup: %w", err)
	}
	if rows == nil {
		rows = []RollupRow{}
	}
	return rows, nil
}

func (s *Service) Summary(ctx context.Context, filter Filter) (*Summary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	summary, err := s.repo.Summary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("building transaction summary: %w", err)
	}
	if summary.ByCategory == nil {
		summary.ByCategory = []CategorySummaryRow{}
	}
	return summary, nil
}
