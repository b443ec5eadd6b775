package http

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"expensetracker/internal/domain/account"
	"expensetracker/internal/shared/apperr"
	"expensetracker/internal/shared/middleware"
)

// AccountHandler serves account creation and deletion.
type AccountHandler struct {
	accountService *account.Service
}

func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type createAccountRequest struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// HandleCreateAccount creates an account owned by the authenticated user.
func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, apperr.Unauthorized("authentication required"))
		return
	}

	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	acct, err := h.accountService.Create(r.Context(), account.CreateParams{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Account created successfully", acct)
}

// HandleDeleteAccount removes the account in the path.
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, apperr.BadRequest("invalid account id"))
		return
	}

	acct, err := h.accountService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Account deleted successfully", acct)
}
