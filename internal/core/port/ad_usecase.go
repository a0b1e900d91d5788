package port

import (
	"context"

	"adserver/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// ServeAd selects the active campaign/strategy pair, derives the bid,
	// renders the creative and records one impression. ErrCampaignNotFound
	// or ErrStrategyNotFound when no pair is resolvable.
	ServeAd(ctx context.Context) (*AdDecision, error)

	// RecordClick records one click for the strategy. Both identifiers are
	// required; the lookup is by strategyID only.
	RecordClick(ctx context.Context, campaignID, strategyID string) error

	// RecordConversion records one conversion for the strategy.
	RecordConversion(ctx context.Context, campaignID, strategyID string) error

	// UpdateBid replaces a manual strategy's bid and returns the stored
	// value. ErrInvalidBid when newBid is not a finite non-negative number.
	UpdateBid(ctx context.Context, strategyID string, newBid float64) (float64, error)

	// CampaignPerformance aggregates all of a campaign's strategies into
	// totals and derived rates. ErrNoStrategies when the campaign has none.
	CampaignPerformance(ctx context.Context, campaignID string) (*domain.Performance, error)

	// CreateCampaign provisions a new campaign record.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error

	// CreateStrategy provisions a new strategy record.
	CreateStrategy(ctx context.Context, s *domain.Strategy) error
}

// AdDecision is the outcome of an ad request. It is a DTO used by the HTTP
// layer and does not contain domain behaviour.
type AdDecision struct {
	Ad         domain.Ad
	CampaignID string
	StrategyID string
	Bid        float64
}
