package port

import (
	"context"
	"errors"

	"adserver/internal/core/domain"
)

// Sentinel errors shared by repository implementations. Handlers match them
// with errors.Is to choose a response status.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrStrategyNotFound = errors.New("strategy not found")
	ErrNoStrategies     = errors.New("no strategies found for this campaign")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrInvalidBid       = errors.New("bid must be a finite non-negative number")
)

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. It covers both the read side
// (campaign/strategy lookup) and the metrics store side (counter and bid
// mutation). Implementations must be concurrency-safe: concurrent increments
// targeting the same strategy must all be reflected, never applied through an
// unguarded read-modify-write cycle.
type AdRepository interface {
	// LatestCampaign returns the most recently created campaign. When no
	// campaign exists it synthesizes, persists and returns a default one so
	// the decision path never fails purely for lack of seed data.
	LatestCampaign(ctx context.Context) (*domain.Campaign, error)
	// LatestStrategyByCampaign returns the most recently created strategy
	// bound to the campaign, synthesizing a default when none exists.
	LatestStrategyByCampaign(ctx context.Context, campaignID string) (*domain.Strategy, error)
	// StrategyByID returns the unique strategy with the given external key,
	// or ErrStrategyNotFound.
	StrategyByID(ctx context.Context, strategyID string) (*domain.Strategy, error)
	// StrategiesByCampaign returns all strategies for a campaign, newest
	// first. An empty result is not an error.
	StrategiesByCampaign(ctx context.Context, campaignID string) ([]domain.Strategy, error)

	// CreateCampaign persists a new campaign. A duplicate external key
	// yields ErrAlreadyExists.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// CreateStrategy persists a new strategy. A duplicate external key
	// yields ErrAlreadyExists.
	CreateStrategy(ctx context.Context, s *domain.Strategy) error

	// IncrementImpressions atomically adds 1 to the strategy's impression
	// counter. ErrStrategyNotFound when the reference no longer resolves.
	IncrementImpressions(ctx context.Context, strategyID string) error
	// IncrementClicks atomically adds 1 to the click counter and accrues the
	// strategy's current bid into spend (cost-per-click charging).
	IncrementClicks(ctx context.Context, strategyID string) error
	// IncrementConversions atomically adds 1 to the conversion counter.
	IncrementConversions(ctx context.Context, strategyID string) error
	// UpdateBid atomically replaces the strategy's current bid and returns
	// the stored value.
	UpdateBid(ctx context.Context, strategyID string, newBid float64) (float64, error)
}
