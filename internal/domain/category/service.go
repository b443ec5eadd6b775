package category

import (
	"context"
	"fmt"

	"expensetracker/internal/shared/apperr"
)

// Service contains the business logic for category operations
type Service struct {
	repo Repository
}

// NewService creates a new category service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new category, optionally nested under a parent.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, apperr.BadRequest("category name is required")
	}
	if !IsValidType(params.Type) {
		return nil, apperr.BadRequest(fmt.Sprintf("invalid category type %q", params.Type))
	}

	if params.ParentCategoryID != nil {
		parent, err := s.repo.GetByID(ctx, *params.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.BadRequest("parent category not found")
		}
	}

	return s.repo.Create(ctx, params)
}

// Delete soft-deletes a category by flagging it inactive and returns the
// deactivated row. The row stays so existing transactions keep a valid
// category reference.
func (s *Service) Delete(ctx context.Context, id int64) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("category not found")
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return nil, err
	}
	cat.IsActive = false
	return cat, nil
}
