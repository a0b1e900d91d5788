package domain

import "time"

// Campaign statuses.
const (
	CampaignStatusActive = "active"
	CampaignStatusPaused = "paused"
	CampaignStatusEnded  = "ended"
)

// Campaign represents an advertising campaign. CampaignID is the stable
// external key used by the API; ID is internal to the store. StartDate and
// EndDate are free-form scheduling text used in rendered ad copy and are not
// enforced by the engine.
type Campaign struct {
	ID               int64
	CampaignID       string
	Name             string
	Budget           float64
	Status           string // active, paused, ended
	StartDate        string
	EndDate          string
	AudienceLocation string
	CreatedAt        time.Time
}
