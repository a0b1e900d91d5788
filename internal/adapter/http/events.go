package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
)

type eventRequest struct {
	CampaignID string `json:"campaignId"`
	StrategyID string `json:"strategyId"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// handleRecordClick records one click for a strategy. Both identifiers must
// be present; only the strategy key scopes the update.
func (h *Handler) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	h.recordEvent(w, r, h.svc.RecordClick)
}

// handleRecordConversion records one conversion for a strategy.
func (h *Handler) handleRecordConversion(w http.ResponseWriter, r *http.Request) {
	h.recordEvent(w, r, h.svc.RecordConversion)
}

func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request, record func(ctx context.Context, campaignID, strategyID string) error) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.CampaignID == "" || req.StrategyID == "" {
		badRequest(w, "Missing required fields")
		return
	}
	if err := record(r.Context(), req.CampaignID, req.StrategyID); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
