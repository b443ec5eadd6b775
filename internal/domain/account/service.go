package account

import (
	"context"
	"fmt"

	"expensetracker/internal/shared/apperr"
)

// Service contains the business logic for account operations
type Service struct {
	repo Repository
}

// NewService creates a new account service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new account owned by the calling user.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if params.UserID == "" {
		return nil, apperr.BadRequest("user is required")
	}
	if params.Name == "" {
		return nil, apperr.BadRequest("account name is required")
	}
	if !IsValidType(params.Type) {
		return nil, apperr.BadRequest(fmt.Sprintf("invalid account type %q", params.Type))
	}
	if params.Balance.IsNegative() {
		return nil, apperr.BadRequest("balance must not be negative")
	}

	return s.repo.Create(ctx, params)
}

// Delete removes an account and returns the removed row. Accounts are
// hard-deleted, so deletion is blocked while any transaction still
// references the account; dependent rows must go first.
func (s *Service) Delete(ctx context.Context, id int64) (*Account, error) {
	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, apperr.NotFound("account not found")
	}

	count, err := s.repo.CountTransactions(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict(fmt.Sprintf("account has %d transactions; delete them first", count))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return acct, nil
}
