package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"expensetracker/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface
// for PostgreSQL. All filtered queries render their WHERE clause from the
// same transaction.Filter, so a listing and its row count can never drift
// apart.
type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, category_id, transaction_type, amount, transaction_date, transaction_time, note, reference_number)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, CURRENT_TIME), $7, $8)
		RETURNING id, account_id, category_id, transaction_type, amount, transaction_date, transaction_time, note, reference_number, created_at, updated_at
	`

	var txn transaction.Transaction
	var txnTime, note, refNumber sql.NullString

	err := r.db.QueryRowContext(
		ctx, query,
		params.AccountID, params.CategoryID, params.TransactionType, params.Amount,
		params.TransactionDate, nullStringPtr(params.TransactionTime),
		nullStringPtr(params.Note), nullStringPtr(params.ReferenceNumber),
	).Scan(
		&txn.ID, &txn.AccountID, &txn.CategoryID, &txn.TransactionType, &txn.Amount,
		&txn.TransactionDate, &txnTime, &note, &refNumber,
		&txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	assignNullString(&txn.TransactionTime, txnTime)
	assignNullString(&txn.Note, note)
	assignNullString(&txn.ReferenceNumber, refNumber)
	return &txn, nil
}

// CreateAttachment inserts file metadata for an already stored receipt.
func (r *TransactionRepository) CreateAttachment(ctx context.Context, params transaction.CreateAttachmentParams) (*transaction.Attachment, error) {
	query := `
		INSERT INTO transaction_attachments (transaction_id, file_name, file_path, file_type, file_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, transaction_id, file_name, file_path, file_type, file_size, uploaded_at
	`

	var att transaction.Attachment
	err := r.db.QueryRowContext(
		ctx, query,
		params.TransactionID, params.FileName, params.FilePath, params.FileType, params.FileSize,
	).Scan(
		&att.ID, &att.TransactionID, &att.FileName, &att.FilePath,
		&att.FileType, &att.FileSize, &att.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	return &att, nil
}

// List returns one page of filtered transactions, newest first, plus the
// total filtered row count.
func (r *TransactionRepository) List(ctx context.Context, filter transaction.Filter, page transaction.PageRequest) ([]*transaction.Transaction, int64, error) {
	where, args := filter.Where(1)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM transactions t %s`, where)
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT t.id, t.account_id, t.category_id, t.transaction_type, t.amount,
		       t.transaction_date, t.transaction_time, t.note, t.reference_number,
		       t.created_at, t.updated_at
		FROM transactions t
		%s
		ORDER BY t.transaction_date DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, listQuery, append(args, page.PerPage, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*transaction.Transaction
	for rows.Next() {
		var txn transaction.Transaction
		var txnTime, note, refNumber sql.NullString

		err := rows.Scan(
			&txn.ID, &txn.AccountID, &txn.CategoryID, &txn.TransactionType, &txn.Amount,
			&txn.TransactionDate, &txnTime, &note, &refNumber,
			&txn.CreatedAt, &txn.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}

		assignNullString(&txn.TransactionTime, txnTime)
		assignNullString(&txn.Note, note)
		assignNullString(&txn.ReferenceNumber, refNumber)
		txns = append(txns, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, total, nil
}

// MonthlySummary groups the whole ledger by calendar month and type.
func (r *TransactionRepository) MonthlySummary(ctx context.Context) ([]transaction.MonthlySummaryRow, error) {
	query := `
		SELECT TO_CHAR(t.transaction_date, 'YYYY-MM') AS month, t.transaction_type, SUM(t.amount) AS total
		FROM transactions t
		GROUP BY month, t.transaction_type
		ORDER BY month, t.transaction_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summary: %w", err)
	}
	defer rows.Close()

	var result []transaction.MonthlySummaryRow
	for rows.Next() {
		var row transaction.MonthlySummaryRow
		if err := rows.Scan(&row.Month, &row.TransactionType, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly summary: %w", err)
	}

	return result, nil
}

// CategorySummary sums per category. With a type filter the result is the
// top-limit categories for that type, highest total first; without one,
// every (category, type) pair is returned.
func (r *TransactionRepository) CategorySummary(ctx context.Context, typeFilter string, limit int) ([]transaction.CategorySummaryRow, error) {
	if typeFilter != "" {
		query := `
			SELECT c.name, SUM(t.amount) AS total
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			WHERE t.transaction_type = $1
			GROUP BY c.name
			ORDER BY total DESC
			LIMIT $2
		`

		rows, err := r.db.QueryContext(ctx, query, typeFilter, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query category summary: %w", err)
		}
		defer rows.Close()

		var result []transaction.CategorySummaryRow
		for rows.Next() {
			var row transaction.CategorySummaryRow
			if err := rows.Scan(&row.CategoryName, &row.Total); err != nil {
				return nil, fmt.Errorf("failed to scan category summary row: %w", err)
			}
			result = append(result, row)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate category summary: %w", err)
		}
		return result, nil
	}

	query := `
		SELECT t.transaction_type, c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		GROUP BY t.transaction_type, c.name
		ORDER BY t.transaction_type, total DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	var result []transaction.CategorySummaryRow
	for rows.Next() {
		var row transaction.CategorySummaryRow
		if err := rows.Scan(&row.TransactionType, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category summary row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category summary: %w", err)
	}

	return result, nil
}

// CategoryRollup groups totals under each category's top-level parent; a
// category without a parent rolls up under itself.
func (r *TransactionRepository) CategoryRollup(ctx context.Context, filter transaction.Filter) ([]transaction.RollupRow, error) {
	where, args := filter.Where(1)

	query := fmt.Sprintf(`
		SELECT COALESCE(p.name, c.name) AS main_category, c.name AS sub_category,
		       SUM(t.amount) AS total_amount, COUNT(*) AS transaction_count
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		LEFT JOIN categories p ON p.id = c.parent_category_id
		%s
		GROUP BY COALESCE(p.name, c.name), c.name
		ORDER BY total_amount DESC
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category rollup: %w", err)
	}
	defer rows.Close()

	var result []transaction.RollupRow
	for rows.Next() {
		var row transaction.RollupRow
		if err := rows.Scan(&row.MainCategory, &row.SubCategory, &row.TotalAmount, &row.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan rollup row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rollup: %w", err)
	}

	return result, nil
}

// Summary returns the per-category breakdown and the grand total over the
// same filtered set. The total is 0 when nothing matches.
func (r *TransactionRepository) Summary(ctx context.Context, filter transaction.Filter) (*transaction.Summary, error) {
	where, args := filter.Where(1)

	breakdownQuery := fmt.Sprintf(`
		SELECT c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		%s
		GROUP BY c.name
		ORDER BY total DESC
	`, where)

	rows, err := r.db.QueryContext(ctx, breakdownQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary breakdown: %w", err)
	}
	defer rows.Close()

	var summary transaction.Summary
	for rows.Next() {
		var row transaction.CategorySummaryRow
		if err := rows.Scan(&row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary.ByCategory = append(summary.ByCategory, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary breakdown: %w", err)
	}

	// 0.00 keeps the two-digit scale of the amount column when no rows match.
	totalQuery := fmt.Sprintf(`SELECT COALESCE(SUM(t.amount), 0.00) FROM transactions t %s`, where)
	if err := r.db.QueryRowContext(ctx, totalQuery, args...).Scan(&summary.Total); err != nil {
		return nil, fmt.Errorf("failed to query summary total: %w", err)
	}

	return &summary, nil
}

func nullStringPtr(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func assignNullString(dst **string, src sql.NullString) {
	if src.Valid {
		s := src.String
		*dst = &s
	}
}
