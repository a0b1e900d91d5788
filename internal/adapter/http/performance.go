package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCampaignPerformance aggregates a campaign's strategies into totals
// and derived rates. A campaign with no strategies is 404, distinct from
// valid zero totals.
func (h *Handler) handleCampaignPerformance(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		badRequest(w, "missing campaignId")
		return
	}
	perf, err := h.svc.CampaignPerformance(r.Context(), campaignID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perf)
}
