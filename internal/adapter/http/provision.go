package httpadapter

import (
	"encoding/json"
	"net/http"

	"adserver/internal/core/domain"
)

type campaignRequest struct {
	CampaignID       string  `json:"campaignId"`
	Name             string  `json:"name"`
	Budget           float64 `json:"budget"`
	Status           string  `json:"status"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	AudienceLocation string  `json:"audienceLocation"`
}

type strategyRequest struct {
	StrategyID       string   `json:"strategyId"`
	CampaignID       string   `json:"campaignId"`
	Name             string   `json:"name"`
	BiddingType      string   `json:"biddingType"`
	CurrentBid       float64  `json:"currentBid"`
	DailyBudget      float64  `json:"dailyBudget"`
	Audiences        []string `json:"audiences"`
	SelectedChannels []string `json:"selectedChannels"`
	SelectedGoal     string   `json:"selectedGoal"`
	AgeRange         string   `json:"ageRange"`
	Gender           string   `json:"gender"`
	Screens          string   `json:"screens"`
}

// handleCreateCampaign provisions a new campaign record.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.CampaignID == "" || req.Name == "" {
		badRequest(w, "Missing required fields")
		return
	}
	if req.Budget < 0 {
		badRequest(w, "budget must be non-negative")
		return
	}
	c := domain.Campaign{
		CampaignID:       req.CampaignID,
		Name:             req.Name,
		Budget:           req.Budget,
		Status:           req.Status,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AudienceLocation: req.AudienceLocation,
	}
	if err := h.svc.CreateCampaign(r.Context(), &c); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"campaignId": c.CampaignID})
}

// handleCreateStrategy provisions a new strategy record bound to a campaign.
func (h *Handler) handleCreateStrategy(w http.ResponseWriter, r *http.Request) {
	var req strategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.CampaignID == "" || req.Name == "" {
		badRequest(w, "Missing required fields")
		return
	}
	if req.CurrentBid < 0 {
		badRequest(w, "currentBid must be non-negative")
		return
	}
	s := domain.Strategy{
		StrategyID:       req.StrategyID,
		CampaignID:       req.CampaignID,
		Name:             req.Name,
		BiddingType:      req.BiddingType,
		CurrentBid:       req.CurrentBid,
		DailyBudget:      req.DailyBudget,
		Audiences:        req.Audiences,
		SelectedChannels: req.SelectedChannels,
		SelectedGoal:     req.SelectedGoal,
		AgeRange:         req.AgeRange,
		Gender:           req.Gender,
		Screens:          req.Screens,
	}
	if err := h.svc.CreateStrategy(r.Context(), &s); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"strategyId": s.StrategyID})
}
