package domain

import "time"

// External key of the campaign synthesized when the store holds no seed
// data. Fixed so repeated synthesis converges on the same record.
const DefaultCampaignID = "default-campaign"

// DefaultStrategyID returns the external key of the strategy synthesized for
// a campaign with no strategies. The key is scoped per campaign: a newer
// campaign synthesizing its own default must never collide with, or reset
// the metrics of, another campaign's default record.
func DefaultStrategyID(campaignID string) string {
	return "default-strategy-" + campaignID
}

// DefaultCampaign builds the fallback campaign persisted by the repository
// when no campaign exists at decision time.
func DefaultCampaign(now time.Time) *Campaign {
	return &Campaign{
		CampaignID: DefaultCampaignID,
		Name:       "Default Campaign",
		Budget:     100,
		Status:     CampaignStatusActive,
		StartDate:  now.Format("2006-01-02"),
		EndDate:    now.AddDate(0, 0, 30).Format("2006-01-02"),
		CreatedAt:  now,
	}
}

// DefaultStrategy builds the fallback strategy bound to the given campaign.
func DefaultStrategy(campaignID string, now time.Time) *Strategy {
	return &Strategy{
		StrategyID:  DefaultStrategyID(campaignID),
		CampaignID:  campaignID,
		Name:        "Default Strategy",
		BiddingType: BiddingManual,
		CurrentBid:  1.0,
		DailyBudget: 10,
		CreatedAt:   now,
	}
}
