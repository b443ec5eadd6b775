package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"expensetracker/internal/shared/apperr"
)

// TokenIssuer issues and validates the signed access tokens that gate
// every protected endpoint. Tokens are HS256 JWTs carrying issuer,
// subject (user id), issued-at and expiry claims.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

const DefaultTokenLifetime = time.Hour

func NewTokenIssuer(secret, issuer string, lifetime time.Duration) *TokenIssuer {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, lifetime: lifetime}
}

// Issue creates a signed token for the given user id.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate verifies the token signature and claims and returns the
// subject (user id). Every failure mode collapses into the same
// authentication error so callers cannot distinguish why a token was
// rejected.
func (t *TokenIssuer) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", apperr.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", apperr.Unauthorized("invalid token")
	}
	if claims.Issuer != t.issuer {
		return "", apperr.Unauthorized("invalid token")
	}
	if claims.Subject == "" {
		return "", apperr.Unauthorized("invalid token")
	}

	return claims.Subject, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing header is an authentication failure; a header in any
// other shape is a malformed request, which surfaces as a distinct 400.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperr.Unauthorized("authentication required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", apperr.BadRequest("malformed authorization header")
	}
	return parts[1], nil
}
