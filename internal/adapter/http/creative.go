package httpadapter

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"adinsight/internal/core/domain"
)

// creativeDataRequest is the POST /creative-data body. Entries may be JSON
// numbers or numeric strings; anything else is dropped during coercion.
type creativeDataRequest struct {
	CreativeIDs []any `json:"creativeIds" validate:"required,min=1"`
}

// handleCreativeData resolves a list of creative ids against the whole
// dataset. Non-numeric entries are silently dropped; the request is rejected
// only when the array is missing, empty, or nothing survives coercion.
func (h *Handler) handleCreativeData(w http.ResponseWriter, r *http.Request) {
	var req creativeDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error", "creativeIds must be a non-empty array")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error", "creativeIds must be a non-empty array")
		return
	}

	ids := coerceIDs(req.CreativeIDs)
	if len(ids) == 0 {
		h.respondError(w, http.StatusBadRequest, "Validation error", "creativeIds contains no numeric values")
		return
	}

	res, err := h.svc.CreativesByIDs(r.Context(), ids)
	switch {
	case errors.Is(err, domain.ErrNoCreativesFound):
		h.respondError(w, http.StatusNotFound, "Not found", "No creatives found for the provided ids")
	case err != nil:
		h.respondInternal(w, err)
	default:
		h.respondJSON(w, http.StatusOK, res)
	}
}

// coerceIDs applies the shared base-10 integer rule to a mixed id list.
// JSON numbers must be integral; strings are parsed with strconv. Everything
// else (booleans, nulls, objects, fractional numbers) is filtered out.
func coerceIDs(values []any) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case float64:
			if t == math.Trunc(t) {
				ids = append(ids, int64(t))
			}
		case string:
			if id, err := strconv.ParseInt(t, 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
