package domain

import "time"

// Bidding types.
const (
	BiddingManual    = "manual"
	BiddingAutomatic = "automatic"
)

// Metrics holds per-strategy performance counters. All four fields are
// monotonically non-decreasing: the engine only ever increments them.
type Metrics struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

// Strategy is a targeting and bidding configuration belonging to exactly one
// campaign (referenced by external key). It is the unit metrics are tracked
// against. CurrentBid carries the operator-set bid for manual strategies and
// the last computed value for automatic ones. The descriptive targeting
// fields are optional; render-time defaults apply when they are empty.
type Strategy struct {
	ID               int64
	StrategyID       string
	CampaignID       string
	Name             string
	BiddingType      string // manual, automatic
	CurrentBid       float64
	DailyBudget      float64
	Audiences        []string
	SelectedChannels []string
	SelectedGoal     string
	AgeRange         string
	Gender           string
	Screens          string
	Metrics          Metrics
	CreatedAt        time.Time
}
