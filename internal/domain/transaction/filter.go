package transaction

import (
	"fmt"
	"strings"
	"time"

	"expensetracker/internal/shared/apperr"
)

// Filter is the conjunctive predicate over the ledger. Each nil field
// means "no constraint on that dimension", never "match empty". The same
// filter feeds both the row query and the count query so pagination
// totals always agree with the page contents.
type Filter struct {
	Year            *int
	Month           *int
	CategoryID      *int64
	AccountID       *int64
	TransactionType *string
}

// Validate checks dimension values before the filter reaches SQL.
func (f Filter) Validate() error {
	if f.Month != nil {
		if f.Year == nil {
			return apperr.BadRequest("month filter requires year")
		}
		if *f.Month < 1 || *f.Month > 12 {
			return apperr.BadRequest(fmt.Sprintf("invalid month %d", *f.Month))
		}
	}
	if f.Year != nil && *f.Year < 1 {
		return apperr.BadRequest(fmt.Sprintf("invalid year %d", *f.Year))
	}
	if f.TransactionType != nil && !IsValidType(*f.TransactionType) {
		return apperr.BadRequest(fmt.Sprintf("invalid transaction type %q", *f.TransactionType))
	}
	return nil
}

// DateRange resolves the Year/Month dimensions to an inclusive calendar
// range. Year alone spans Jan 1 to Dec 31; year+month spans the first to
// the true last day of that month (leap years included). ok is false
// when no date dimension is set.
func (f Filter) DateRange() (start, end time.Time, ok bool) {
	if f.Year == nil {
		return time.Time{}, time.Time{}, false
	}
	year := *f.Year

	if f.Month != nil {
		month := time.Month(*f.Month)
		start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		// Day 0 of the next month is the last day of this one.
		end = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		return start, end, true
	}

	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end, true
}

// Where renders the filter as a SQL condition over the aliased
// transactions table "t", with placeholders numbered from startArg.
// An empty filter renders to "" (the universal predicate).
func (f Filter) Where(startArg int) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", startArg+len(args)-1)
	}

	if start, end, ok := f.DateRange(); ok {
		conds = append(conds, fmt.Sprintf("t.transaction_date >= %s", arg(start)))
		conds = append(conds, fmt.Sprintf("t.transaction_date <= %s", arg(end)))
	}
	if f.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("t.category_id = %s", arg(*f.CategoryID)))
	}
	if f.AccountID != nil {
		conds = append(conds, fmt.Sprintf("t.account_id = %s", arg(*f.AccountID)))
	}
	if f.TransactionType != nil {
		conds = append(conds, fmt.Sprintf("t.transaction_type = %s", arg(*f.TransactionType)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
