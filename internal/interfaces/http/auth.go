package http

import (
	"log"
	"net/http"
	"time"

	"expensetracker/internal/domain/user"
	"expensetracker/internal/shared/auth"
)

// AuthHandler serves login.
type AuthHandler struct {
	userService *user.Service
	issuer      *auth.TokenIssuer
}

func NewAuthHandler(userService *user.Service, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{userService: userService, issuer: issuer}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Token     string    `json:"token"`
}

// HandleLogin checks credentials and returns a fresh access token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	u, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		log.Printf("Error issuing token for user %s: %v", u.ID, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Token:     token,
	})
}
