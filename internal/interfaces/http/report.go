package http

import (
	"net/http"
	"strconv"

	"expensetracker/internal/domain/transaction"
	"expensetracker/internal/shared/apperr"
)

// ReportHandler serves the aggregate reporting endpoints.
type ReportHandler struct {
	transactionService *transaction.Service
}

func NewReportHandler(transactionService *transaction.Service) *ReportHandler {
	return &ReportHandler{transactionService: transactionService}
}

// HandleMonthlySummary returns per-month, per-type totals over the
// whole ledger.
func (h *ReportHandler) HandleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.transactionService.MonthlySummary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Monthly summary retrieved successfully", rows)
}

// HandleCategoriesSummary returns per-category totals. An optional
// ?type= narrows it to one transaction type and caps the result at
// ?limit= rows (default 10), biggest spenders first.
func (h *ReportHandler) HandleCategoriesSummary(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, apperr.BadRequest("invalid limit"))
			return
		}
		limit = n
	}

	rows, err := h.transactionService.CategorySummary(r.Context(), typeFilter, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Categories summary retrieved successfully", rows)
}

// HandleCategoriesRollup groups totals under each category's top-level
// parent, filtered by the query string.
func (h *ReportHandler) HandleCategoriesRollup(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	rows, err := h.transactionService.CategoryRollup(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Categories rollup retrieved successfully", rows)
}

// HandleTransactionSummary returns the filtered per-category breakdown
// plus the grand total.
func (h *ReportHandler) HandleTransactionSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	summary, err := h.transactionService.Summary(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Transaction summary retrieved successfully", summary)
}
