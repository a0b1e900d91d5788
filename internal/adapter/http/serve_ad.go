package httpadapter

import (
	"net/http"

	"adserver/internal/core/domain"
)

type serveAdResponse struct {
	Ad         domain.Ad `json:"ad"`
	CampaignID string    `json:"campaignId"`
	StrategyID string    `json:"strategyId"`
	Bid        float64   `json:"bid"`
}

// handleServeAd picks the active campaign/strategy pair, renders the
// creative and records an impression. 404 when no pair is resolvable,
// 500 on store failures.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	decision, err := h.svc.ServeAd(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, serveAdResponse{
		Ad:         decision.Ad,
		CampaignID: decision.CampaignID,
		StrategyID: decision.StrategyID,
		Bid:        decision.Bid,
	})
}
