package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valid transaction types
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"
)

// Transaction is one ledger entry. Amount is always a non-negative
// magnitude; direction is carried by TransactionType, never by sign.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	CategoryID      int64           `json:"categoryId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionTime *string         `json:"transactionTime,omitempty"` // "HH:MM:SS"
	Note            *string         `json:"note,omitempty"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Attachment holds file metadata for a receipt image; the bytes live on
// disk, not in the database. Rows cascade-delete with their transaction.
type Attachment struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transactionId"`
	FileName      string    `json:"fileName"`
	FilePath      string    `json:"filePath"`
	FileType      string    `json:"fileType"`
	FileSize      int64     `json:"fileSize"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

type CreateParams struct {
	AccountID       int64
	CategoryID      int64
	TransactionType string
	Amount          decimal.Decimal
	TransactionDate time.Time
	TransactionTime *string
	Note            *string
	ReferenceNumber *string
}

type CreateAttachmentParams struct {
	TransactionID int64
	FileName      string
	FilePath      string
	FileType      string
	FileSize      int64
}

// MonthlySummaryRow is one (month, type) aggregation bucket. Month is
// formatted "YYYY-MM".
type MonthlySummaryRow struct {
	Month           string          `json:"month"`
	TransactionType string          `json:"transactionType"`
	Total           decimal.Decimal `json:"total"`
}

// CategorySummaryRow is one per-category total. TransactionType is only
// populated when the summary was not already narrowed to a single type.
type CategorySummaryRow struct {
	TransactionType string          `json:"type,omitempty"`
	CategoryName    string          `json:"categoryName"`
	Total           decimal.Decimal `json:"total"`
}

// RollupRow groups a category's figures under its top-level parent.
// A category without a parent is its own main category.
type RollupRow struct {
	MainCategory     string          `json:"mainCategory"`
	SubCategory      string          `json:"subCategory"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
}

// Summary pairs a per-category breakdown with the grand total over the
// same filtered set. Total is "0.00" when nothing matches.
type Summary struct {
	ByCategory []CategorySummaryRow `json:"summary"`
	Total      decimal.Decimal      `json:"total"`
}

// IsValidType reports whether t is income, expense or transfer.
func IsValidType(t string) bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}
