package category

import (
	"context"
	"testing"

	"expensetracker/internal/shared/apperr"
)

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	CreateFunc     func(ctx context.Context, params CreateParams) (*Category, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*Category, error)
	DeactivateFunc func(ctx context.Context, id int64) error
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) Deactivate(ctx context.Context, id int64) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params CreateParams
	}{
		{"MissingName", CreateParams{Type: TypeExpense}},
		{"InvalidType", CreateParams{Name: "Food", Type: "transfer"}},
		{"EmptyType", CreateParams{Name: "Food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&MockRepository{})
			_, err := svc.Create(context.Background(), tt.params)
			if err == nil {
				t.Fatal("Create() accepted invalid params")
			}
			if apperr.KindOf(err) != apperr.KindBadRequest {
				t.Errorf("Create() kind = %v, want KindBadRequest", apperr.KindOf(err))
			}
		})
	}
}

func TestCreate_UnknownParent(t *testing.T) {
	parentID := int64(99)
	svc := NewService(&MockRepository{}) // GetByID returns nil

	_, err := svc.Create(context.Background(), CreateParams{
		Name:             "Groceries",
		Type:             TypeExpense,
		ParentCategoryID: &parentID,
	})
	if err == nil {
		t.Fatal("Create() accepted unknown parent category")
	}
	if apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("Create() kind = %v, want KindBadRequest", apperr.KindOf(err))
	}
}

func TestCreate_WithParent(t *testing.T) {
	parentID := int64(5)
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*Category, error) {
			return &Category{ID: id, Name: "Food", Type: TypeExpense, IsActive: true}, nil
		},
		CreateFunc: func(ctx context.Context, params CreateParams) (*Category, error) {
			return &Category{ID: 6, Name: params.Name, Type: params.Type, ParentCategoryID: params.ParentCategoryID, IsActive: true}, nil
		},
	}
	svc := NewService(repo)

	cat, err := svc.Create(context.Background(), CreateParams{
		Name:             "Groceries",
		Type:             TypeExpense,
		ParentCategoryID: &parentID,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if cat.ParentCategoryID == nil || *cat.ParentCategoryID != parentID {
		t.Errorf("Create() lost parent category, got %v", cat.ParentCategoryID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&MockRepository{})

	_, err := svc.Delete(context.Background(), 42)
	if err == nil {
		t.Fatal("Delete() succeeded for missing category")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Delete() kind = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestDelete_SoftDeletes(t *testing.T) {
	deactivated := false
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*Category, error) {
			return &Category{ID: id, Name: "Food", Type: TypeExpense, IsActive: true}, nil
		},
		DeactivateFunc: func(ctx context.Context, id int64) error {
			deactivated = true
			return nil
		},
	}
	svc := NewService(repo)

	cat, err := svc.Delete(context.Background(), 5)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if !deactivated {
		t.Error("Delete() never deactivated the category")
	}
	if cat == nil || cat.IsActive {
		t.Errorf("Delete() returned %+v, want the deactivated category", cat)
	}
}
