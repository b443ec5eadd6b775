package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/shopspring/decimal"

	"expensetracker/internal/domain/account"
	"expensetracker/internal/domain/category"
	"expensetracker/internal/domain/transaction"
	"expensetracker/internal/infrastructure/uploads"
)

type mockTransactionRepo struct {
	CreateFunc           func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	CreateAttachmentFunc func(ctx context.Context, params transaction.CreateAttachmentParams) (*transaction.Attachment, error)
	ListFunc             func(ctx context.Context, filter transaction.Filter, page transaction.PageRequest) ([]*transaction.Transaction, int64, error)
	MonthlySummaryFunc   func(ctx context.Context) ([]transaction.MonthlySummaryRow, error)
	CategorySummaryFunc  func(ctx context.Context, typeFilter string, limit int) ([]transaction.CategorySummaryRow, error)
	CategoryRollupFunc   func(ctx context.Context, filter transaction.Filter) ([]transaction.RollupRow, error)
	SummaryFunc          func(ctx context.Context, filter transaction.Filter) (*transaction.Summary, error)
}

func (m *mockTransactionRepo) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return &transaction.Transaction{ID: 1}, nil
}

func (m *mockTransactionRepo) CreateAttachment(ctx context.Context, params transaction.CreateAttachmentParams) (*transaction.Attachment, error) {
	if m.CreateAttachmentFunc != nil {
		return m.CreateAttachmentFunc(ctx, params)
	}
	return &transaction.Attachment{ID: 1, TransactionID: params.TransactionID}, nil
}

func (m *mockTransactionRepo) List(ctx context.Context, filter transaction.Filter, page transaction.PageRequest) ([]*transaction.Transaction, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockTransactionRepo) MonthlySummary(ctx context.Context) ([]transaction.MonthlySummaryRow, error) {
	if m.MonthlySummaryFunc != nil {
		return m.MonthlySummaryFunc(ctx)
	}
	return nil, nil
}

func (m *mockTransactionRepo) CategorySummary(ctx context.Context, typeFilter string, limit int) ([]transaction.CategorySummaryRow, error) {
	if m.CategorySummaryFunc != nil {
		return m.CategorySummaryFunc(ctx, typeFilter, limit)
	}
	return nil, nil
}

func (m *mockTransactionRepo) CategoryRollup(ctx context.Context, filter transaction.Filter) ([]transaction.RollupRow, error) {
	if m.CategoryRollupFunc != nil {
		return m.CategoryRollupFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTransactionRepo) Summary(ctx context.Context, filter transaction.Filter) (*transaction.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, filter)
	}
	return &transaction.Summary{Total: decimal.Zero}, nil
}

func newTransactionService(repo transaction.Repository) *transaction.Service {
	accounts := &mockAccountRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*account.Account, error) {
			return &account.Account{ID: id, UserID: testUserID}, nil
		},
	}
	categories := &mockCategoryRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*category.Category, error) {
			return &category.Category{ID: id, Name: "Groceries", Type: category.TypeExpense}, nil
		},
	}
	return transaction.NewService(repo, accounts, categories)
}

// transactionForm builds a multipart body with the given fields and an
// optional file part named "attachment".
func transactionForm(t *testing.T, fields map[string]string, fileName, fileType string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="attachment"; filename="`+fileName+`"`)
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("writing file part: %v", err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func validTransactionFields() map[string]string {
	return map[string]string{
		"accountId":       "1",
		"categoryId":      "2",
		"transactionType": "expense",
		"amount":          "100.50",
		"transactionDate": "2024-03-15",
	}
}

func TestHandleCreateTransaction(t *testing.T) {
	var created transaction.CreateParams
	repo := &mockTransactionRepo{
		CreateFunc: func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
			created = params
			return &transaction.Transaction{
				ID:              10,
				AccountID:       params.AccountID,
				CategoryID:      params.CategoryID,
				TransactionType: params.TransactionType,
				Amount:          params.Amount,
				TransactionDate: params.TransactionDate,
			}, nil
		},
	}
	handler := NewTransactionHandler(newTransactionService(repo), uploads.NewStore(t.TempDir()))

	body, contentType := transactionForm(t, validTransactionFields(), "", "", nil)
	req := authedRequest(t, http.MethodPost, "/api/transactions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleCreateTransaction(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created.AccountID != 1 || created.CategoryID != 2 {
		t.Errorf("unexpected params %+v", created)
	}
	if !created.Amount.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("amount = %s, want 100.50", created.Amount)
	}
}

func TestHandleCreateTransactionWithAttachment(t *testing.T) {
	var attached transaction.CreateAttachmentParams
	repo := &mockTransactionRepo{
		CreateFunc: func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: 10}, nil
		},
		CreateAttachmentFunc: func(ctx context.Context, params transaction.CreateAttachmentParams) (*transaction.Attachment, error) {
			attached = params
			return &transaction.Attachment{ID: 4, TransactionID: params.TransactionID, FileName: params.FileName}, nil
		},
	}
	handler := NewTransactionHandler(newTransactionService(repo), uploads.NewStore(t.TempDir()))

	body, contentType := transactionForm(t, validTransactionFields(), "receipt.png", "image/png", []byte("png bytes"))
	req := authedRequest(t, http.MethodPost, "/api/transactions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleCreateTransaction(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if attached.TransactionID != 10 {
		t.Errorf("attachment bound to transaction %d, want 10", attached.TransactionID)
	}
	if attached.FileName != "receipt.png" {
		t.Errorf("unexpected attachment name %q", attached.FileName)
	}

	var resp struct {
		Data struct {
			Attachment *transaction.Attachment `json:"attachment"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.Attachment == nil {
		t.Error("expected attachment in response data")
	}
}

func TestHandleCreateTransactionRejectsBadFile(t *testing.T) {
	createCalled := false
	repo := &mockTransactionRepo{
		CreateFunc: func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
			createCalled = true
			return &transaction.Transaction{ID: 10}, nil
		},
	}
	handler := NewTransactionHandler(newTransactionService(repo), uploads.NewStore(t.TempDir()))

	body, contentType := transactionForm(t, validTransactionFields(), "notes.pdf", "application/pdf", []byte("pdf bytes"))
	req := authedRequest(t, http.MethodPost, "/api/transactions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleCreateTransaction(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if createCalled {
		t.Error("transaction must not be inserted when the file is rejected")
	}
}

func TestHandleCreateTransactionBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"bad account id", func(f map[string]string) { f["accountId"] = "abc" }},
		{"bad amount", func(f map[string]string) { f["amount"] = "lots" }},
		{"bad date", func(f map[string]string) { f["transactionDate"] = "15-03-2024" }},
		{"bad type", func(f map[string]string) { f["transactionType"] = "refund" }},
		{"bad time", func(f map[string]string) { f["transactionTime"] = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(newTransactionService(&mockTransactionRepo{}), uploads.NewStore(t.TempDir()))

			fields := validTransactionFields()
			tt.mutate(fields)
			body, contentType := transactionForm(t, fields, "", "", nil)
			req := authedRequest(t, http.MethodPost, "/api/transactions", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			handler.HandleCreateTransaction(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleListTransactions(t *testing.T) {
	var gotFilter transaction.Filter
	var gotPage transaction.PageRequest
	repo := &mockTransactionRepo{
		ListFunc: func(ctx context.Context, filter transaction.Filter, page transaction.PageRequest) ([]*transaction.Transaction, int64, error) {
			gotFilter = filter
			gotPage = page
			rows := make([]*transaction.Transaction, 5)
			for i := range rows {
				rows[i] = &transaction.Transaction{ID: int64(15 - i)}
			}
			return rows, 15, nil
		},
	}
	handler := NewTransactionHandler(newTransactionService(repo), uploads.NewStore(t.TempDir()))

	req := authedRequest(t, http.MethodGet, "/api/transactions?page=2&perPage=10&year=2024&month=3&transactionType=expense", nil)
	rec := httptest.NewRecorder()
	handler.HandleListTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotPage.Page != 2 || gotPage.PerPage != 10 {
		t.Errorf("unexpected page request %+v", gotPage)
	}
	if gotFilter.Year == nil || *gotFilter.Year != 2024 || gotFilter.Month == nil || *gotFilter.Month != 3 {
		t.Errorf("unexpected filter %+v", gotFilter)
	}

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			PerPage    int   `json:"perPage"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 5 {
		t.Errorf("expected 5 rows on the final page, got %d", len(resp.Data))
	}
	if resp.Pagination.Total != 15 || resp.Pagination.TotalPages != 2 {
		t.Errorf("unexpected pagination %+v", resp.Pagination)
	}
}

func TestHandleListTransactionsRejectsOddPerPage(t *testing.T) {
	handler := NewTransactionHandler(newTransactionService(&mockTransactionRepo{}), uploads.NewStore(t.TempDir()))

	req := authedRequest(t, http.MethodGet, "/api/transactions?perPage=17", nil)
	rec := httptest.NewRecorder()
	handler.HandleListTransactions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	assertErrorBody(t, rec)
}

func TestHandleListTransactionsMonthWithoutYear(t *testing.T) {
	handler := NewTransactionHandler(newTransactionService(&mockTransactionRepo{}), uploads.NewStore(t.TempDir()))

	req := authedRequest(t, http.MethodGet, "/api/transactions?month=3", nil)
	rec := httptest.NewRecorder()
	handler.HandleListTransactions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
