package http

import "net/http"

// HandleHealthz is the liveness probe. Plain text, no auth.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
