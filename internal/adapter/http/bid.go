package httpadapter

import (
	"encoding/json"
	"net/http"
)

type updateBidRequest struct {
	StrategyID string   `json:"strategyId"`
	NewBid     *float64 `json:"newBid"`
}

type updateBidResponse struct {
	Success    bool    `json:"success"`
	UpdatedBid float64 `json:"updatedBid"`
}

// handleUpdateBid replaces a strategy's manual bid. A missing strategyId or
// newBid is a validation failure; an unknown strategy is 404.
func (h *Handler) handleUpdateBid(w http.ResponseWriter, r *http.Request) {
	var req updateBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.StrategyID == "" || req.NewBid == nil {
		badRequest(w, "Missing required fields")
		return
	}
	updated, err := h.svc.UpdateBid(r.Context(), req.StrategyID, *req.NewBid)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updateBidResponse{Success: true, UpdatedBid: updated})
}
