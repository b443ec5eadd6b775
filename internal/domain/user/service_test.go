package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"expensetracker/internal/shared/apperr"
	"expensetracker/internal/shared/auth"
)

type MockRepository struct {
	CreateFunc     func(ctx context.Context, params CreateUserParams) (*User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*User, error)
}

func (m *MockRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	return m.CreateFunc(ctx, params)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func TestRegisterHashesPassword(t *testing.T) {
	var stored CreateUserParams
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, params CreateUserParams) (*User, error) {
			stored = params
			return &User{ID: "u1", Email: params.Email, HashedPassword: params.HashedPassword}, nil
		},
	}

	u, err := NewService(repo).Register(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", u.Email)
	}
	if stored.HashedPassword == "s3cret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(&MockRepository{})

	for _, tt := range []struct{ email, password string }{
		{"", "s3cret"},
		{"alice@example.com", ""},
		{"", ""},
	} {
		_, err := svc.Register(context.Background(), tt.email, tt.password)
		if apperr.KindOf(err) != apperr.KindBadRequest {
			t.Errorf("Register(%q, %q): expected bad request, got %v", tt.email, tt.password, err)
		}
	}
}

func TestRegisterDuplicateEmailPassesThrough(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, params CreateUserParams) (*User, error) {
			return nil, apperr.Conflict("email already registered")
		},
	}

	_, err := NewService(repo).Register(context.Background(), "alice@example.com", "s3cret")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestGetByEmailNotFound(t *testing.T) {
	repo := &MockRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return nil, nil
		},
	}

	_, err := NewService(repo).GetByEmail(context.Background(), "ghost@example.com")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	existing := &User{ID: "u1", Email: "alice@example.com", HashedPassword: hashed}

	tests := []struct {
		name     string
		email    string
		password string
		stored   *User
		wantKind apperr.Kind
	}{
		{"valid credentials", "alice@example.com", "correct-horse", existing, apperr.Kind(-1)},
		{"wrong password", "alice@example.com", "battery-staple", existing, apperr.KindUnauthorized},
		{"unknown email", "ghost@example.com", "correct-horse", nil, apperr.KindUnauthorized},
		{"missing password", "alice@example.com", "", existing, apperr.KindBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
					return tt.stored, nil
				},
			}

			u, err := NewService(repo).Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantKind == apperr.Kind(-1) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if u.ID != "u1" {
					t.Errorf("unexpected user %+v", u)
				}
				return
			}
			if apperr.KindOf(err) != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestAuthenticateSameMessageForBothFailures(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	svc := NewService(&MockRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			if email == "alice@example.com" {
				return &User{ID: "u1", HashedPassword: hashed}, nil
			}
			return nil, nil
		},
	})

	_, errUnknown := svc.Authenticate(context.Background(), "ghost@example.com", "x")
	_, errWrong := svc.Authenticate(context.Background(), "alice@example.com", "x")
	if apperr.Message(errUnknown) != apperr.Message(errWrong) {
		t.Errorf("messages differ: %q vs %q", apperr.Message(errUnknown), apperr.Message(errWrong))
	}
}

func TestGetByEmailRepoError(t *testing.T) {
	repo := &MockRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := NewService(repo).GetByEmail(context.Background(), "alice@example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Errorf("expected internal kind, got %v", err)
	}
}
