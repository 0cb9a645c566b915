package api

import (
	"encoding/json"
	"net/http"

	"deploystack/base-services/internal/logging"
)

// WriteJSON marshals payload and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

// WriteText writes a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
