package httpadapter

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

// errorBody is the uniform error response shape: a short taxonomy label in
// "error" and a caller-facing explanation in "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, label, message string) {
	h.respondJSON(w, status, errorBody{Error: label, Message: message})
}

// respondInternal logs the underlying cause for operators and returns a
// generic 500 body. Internals are never exposed to the caller.
func (h *Handler) respondInternal(w http.ResponseWriter, err error) {
	h.logger.Error("internal error", slog.Any("error", err))
	h.respondError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
}
