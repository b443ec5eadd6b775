package user

import (
	"context"
	"fmt"

	"expensetracker/internal/shared/apperr"
	"expensetracker/internal/shared/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and creates the user. The hash never
// leaves this package boundary in responses because the model hides it
// from JSON.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("missing required fields")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.repo.Create(ctx, CreateUserParams{Email: email, HashedPassword: hashed})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail looks a user up by email address.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, apperr.BadRequest("missing required fields")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// Authenticate checks the credentials and returns the user. Unknown
// emails and wrong passwords produce the same error so the response
// never reveals which half was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("missing required fields")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	if u == nil || !auth.CheckPassword(u.HashedPassword, password) {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	return u, nil
}
