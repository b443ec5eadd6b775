package category

import (
	"time"
)

// Valid category types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Category struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	ParentCategoryID *int64    `json:"parentCategoryId,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CreateParams struct {
	Name             string
	Type             string
	ParentCategoryID *int64
}

// IsValidType reports whether t is income or expense.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
