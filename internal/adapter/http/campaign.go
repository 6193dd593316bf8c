package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"adinsight/internal/core/domain"
)

// handleFullData returns the raw campaigns document, unfiltered. A missing
// or malformed source surfaces as a generic 500.
func (h *Handler) handleFullData(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.FullData(r.Context())
	if err != nil {
		h.respondInternal(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, campaigns)
}

// handleCampaignData returns the single campaign whose id matches the
// campaignId query parameter. Missing or non-numeric ids produce 400, an
// unknown id 404.
func (h *Handler) handleCampaignData(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("campaignId")
	if raw == "" {
		h.respondError(w, http.StatusBadRequest, "Validation error", "campaignId query parameter is required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error", "campaignId must be a numeric value")
		return
	}

	campaign, err := h.svc.CampaignByID(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		h.respondError(w, http.StatusNotFound, "Not found", fmt.Sprintf("No campaign found with id %d", id))
	case err != nil:
		h.respondInternal(w, err)
	default:
		h.respondJSON(w, http.StatusOK, campaign)
	}
}

// handleRegionData returns one summary row per regional-performance entry
// matching the region query parameter exactly, in campaign order.
func (h *Handler) handleRegionData(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		h.respondError(w, http.StatusBadRequest, "Validation error", "region query parameter is required")
		return
	}

	rows, err := h.svc.CampaignsByRegion(r.Context(), region)
	switch {
	case errors.Is(err, domain.ErrNoRegionalData):
		h.respondError(w, http.StatusNotFound, "Not found", fmt.Sprintf("No campaigns found for region '%s'", region))
	case err != nil:
		h.respondInternal(w, err)
	default:
		h.respondJSON(w, http.StatusOK, rows)
	}
}
