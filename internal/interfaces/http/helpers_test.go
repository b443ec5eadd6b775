package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"expensetracker/internal/shared/middleware"
)

const testUserID = "11111111-2222-3333-4444-555555555555"

// authedRequest builds a request carrying the context user ID that the
// auth middleware would have set.
func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, testUserID)
	return req.WithContext(ctx)
}

// assertErrorBody checks that the response is the {"error": message}
// envelope with a non-empty message.
func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error response is not JSON: %v (body %q)", err, rec.Body.String())
	}
	if body["error"] == "" {
		t.Errorf("expected an error message, got %q", rec.Body.String())
	}
}
