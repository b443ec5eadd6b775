package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valid account types
const (
	TypeCash       = "cash"
	TypeBank       = "bank"
	TypeCreditCard = "credit_card"
	TypeEWallet    = "e_wallet"
)

type Account struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type CreateParams struct {
	UserID  string
	Name    string
	Type    string
	Balance decimal.Decimal
}

// IsValidType reports whether t is one of the supported account types.
func IsValidType(t string) bool {
	switch t {
	case TypeCash, TypeBank, TypeCreditCard, TypeEWallet:
		return true
	}
	return false
}
