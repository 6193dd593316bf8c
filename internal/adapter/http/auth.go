package httpadapter

import (
	"errors"
	"net/http"

	"adinsight/internal/core/domain"
)

// grantedResponse is the 200 body for a successful admin credential check:
// the account summary plus the full campaigns document under "data".
type grantedResponse struct {
	Message string             `json:"message"`
	User    domain.UserSummary `json:"user"`
	Data    []domain.Campaign  `json:"data"`
}

// deniedResponse is the 403 body for the known non-admin role, which echoes
// the account summary alongside the denial.
type deniedResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message"`
	User    domain.UserSummary `json:"user"`
}

// handleSimpleProtected gates the campaigns document behind the plaintext
// credential dataset.
func (h *Handler) handleSimpleProtected(w http.ResponseWriter, r *http.Request) {
	h.protectedData(w, r, false)
}

// handleEncryptedProtected gates the campaigns document behind the
// obfuscated credential dataset; both stored and supplied passwords go
// through the codec before comparison.
func (h *Handler) handleEncryptedProtected(w http.ResponseWriter, r *http.Request) {
	h.protectedData(w, r, true)
}

// protectedData implements the shared credential flow. The mismatch wording
// is deliberately disclosure-minimal: both an unknown username and a wrong
// password report "User not found" in the message, differing only in the
// error label and status code.
func (h *Handler) protectedData(w http.ResponseWriter, r *http.Request, obfuscated bool) {
	q := r.URL.Query()
	username, password := q.Get("username"), q.Get("password")
	if username == "" || password == "" {
		h.respondError(w, http.StatusBadRequest, "Validation error", "username and password query parameters are required")
		return
	}

	grant, err := h.svc.Authenticate(r.Context(), username, password, obfuscated)
	if err != nil {
		var denied *domain.RoleDeniedError
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, "User not found", "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.respondError(w, http.StatusUnauthorized, "Invalid credentials", "User not found")
		case errors.As(err, &denied):
			if denied.User != nil {
				h.respondJSON(w, http.StatusForbidden, deniedResponse{
					Error:   "Access denied",
					Message: denied.Message,
					User:    denied.User.Summary(),
				})
			} else {
				h.respondError(w, http.StatusForbidden, "Access denied", denied.Message)
			}
		default:
			// catch-all boundary: unreadable or malformed sources become a
			// generic 500, cause logged for operators only
			h.respondInternal(w, err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, grantedResponse{
		Message: "Access granted",
		User:    grant.User,
		Data:    grant.Data,
	})
}
