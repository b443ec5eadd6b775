package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/domain/transaction"
	"expensetracker/internal/infrastructure/uploads"
	"expensetracker/internal/shared/apperr"
)

// Multipart forms buffer to memory up to this many bytes before spilling
// to disk. Uploads themselves are capped separately by the store.
const maxMultipartMemory = 8 << 20

const dateLayout = "2006-01-02"

// TransactionHandler serves transaction creation, listing and the
// aggregate reports.
type TransactionHandler struct {
	transactionService *transaction.Service
	uploadStore        *uploads.Store
}

func NewTransactionHandler(transactionService *transaction.Service, uploadStore *uploads.Store) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, uploadStore: uploadStore}
}

// HandleCreateTransaction records a transaction from a multipart form.
// An optional "attachment" file part is stored on disk before anything
// touches the database, so invalid files never leave a half-written row.
func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, apperr.BadRequest("invalid multipart form"))
		return
	}

	params, err := parseTransactionForm(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var attachment *transaction.CreateAttachmentParams
	var storedPath string
	if files := r.MultipartForm.File["attachment"]; len(files) > 0 {
		stored, err := h.uploadStore.Save(files[0])
		if err != nil {
			respondError(w, err)
			return
		}
		storedPath = stored.FilePath
		attachment = &transaction.CreateAttachmentParams{
			FileName: stored.FileName,
			FilePath: stored.FilePath,
			FileType: stored.FileType,
			FileSize: stored.FileSize,
		}
	}

	txn, att, err := h.transactionService.Create(r.Context(), params, attachment)
	if err != nil {
		if storedPath != "" {
			h.uploadStore.Remove(storedPath)
		}
		respondError(w, err)
		return
	}

	data := map[string]any{"transaction": txn}
	if att != nil {
		data["attachment"] = att
	}
	respondMessage(w, http.StatusCreated, "Transaction created successfully", data)
}

func parseTransactionForm(r *http.Request) (transaction.CreateParams, error) {
	var params transaction.CreateParams

	accountID, err := strconv.ParseInt(r.FormValue("accountId"), 10, 64)
	if err != nil {
		return params, apperr.BadRequest("invalid account id")
	}
	categoryID, err := strconv.ParseInt(r.FormValue("categoryId"), 10, 64)
	if err != nil {
		return params, apperr.BadRequest("invalid category id")
	}
	amount, err := decimal.NewFromString(r.FormValue("amount"))
	if err != nil {
		return params, apperr.BadRequest("invalid amount")
	}
	date, err := time.Parse(dateLayout, r.FormValue("transactionDate"))
	if err != nil {
		return params, apperr.BadRequest("invalid transaction date; expected YYYY-MM-DD")
	}

	params = transaction.CreateParams{
		AccountID:       accountID,
		CategoryID:      categoryID,
		TransactionType: r.FormValue("transactionType"),
		Amount:          amount,
		TransactionDate: date,
	}

	if v := r.FormValue("transactionTime"); v != "" {
		if _, err := time.Parse("15:04:05", v); err != nil {
			return params, apperr.BadRequest("invalid transaction time; expected HH:MM:SS")
		}
		params.TransactionTime = &v
	}
	if v := r.FormValue("note"); v != "" {
		params.Note = &v
	}
	if v := r.FormValue("referenceNumber"); v != "" {
		params.ReferenceNumber = &v
	}

	return params, nil
}

// HandleListTransactions returns one page of transactions with the
// pagination envelope. Filters and paging come from the query string.
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	page, err := parsePageRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.transactionService.List(r.Context(), filter, page)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func parsePageRequest(r *http.Request) (transaction.PageRequest, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return transaction.PageRequest{}, err
	}
	perPage, err := queryInt(r, "perPage")
	if err != nil {
		return transaction.PageRequest{}, err
	}
	return transaction.NewPageRequest(page, perPage)
}

func parseFilter(r *http.Request) (transaction.Filter, error) {
	var filter transaction.Filter

	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperr.BadRequest("invalid year")
		}
		filter.Year = &year
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperr.BadRequest("invalid month")
		}
		filter.Month = &month
	}
	if v := r.URL.Query().Get("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperr.BadRequest("invalid category id")
		}
		filter.CategoryID = &id
	}
	if v := r.URL.Query().Get("accountId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperr.BadRequest("invalid account id")
		}
		filter.AccountID = &id
	}
	if v := r.URL.Query().Get("transactionType"); v != "" {
		filter.TransactionType = &v
	}

	return filter, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("invalid %s", key))
	}
	return n, nil
}
