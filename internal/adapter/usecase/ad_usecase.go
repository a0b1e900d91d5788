package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"adserver/internal/core/domain"
	"adserver/internal/core/port"
)

// AdUseCase provides business logic for ad decisions and event processing.
// It orchestrates the domain and the repository to implement the AdUseCase
// interface.
type AdUseCase struct {
	repo port.AdRepository

	// baseBid is the starting point for automatic bid computation, scaled
	// by the strategy's observed click-through performance.
	baseBid float64
}

// NewAdUseCase creates a new usecase with the provided repository.
func NewAdUseCase(repo port.AdRepository) *AdUseCase {
	return &AdUseCase{repo: repo, baseBid: 1.0}
}

// ServeAd resolves the active campaign and its current strategy, computes the
// bid, renders the creative and records one impression. A failure to record
// the impression surfaces as an error; the already-computed ad is not rolled
// back or retried.
func (u *AdUseCase) ServeAd(ctx context.Context) (*port.AdDecision, error) {
	campaign, err := u.repo.LatestCampaign(ctx)
	if err != nil {
		return nil, err
	}
	strategy, err := u.repo.LatestStrategyByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		return nil, err
	}

	bid := u.computeBid(strategy)
	ad := domain.GenerateAd(*campaign, *strategy)

	if err = u.repo.IncrementImpressions(ctx, strategy.StrategyID); err != nil {
		return nil, fmt.Errorf("record impression: %w", err)
	}

	return &port.AdDecision{
		Ad:         ad,
		CampaignID: campaign.CampaignID,
		StrategyID: strategy.StrategyID,
		Bid:        bid,
	}, nil
}

// RecordClick increments the click counter for the strategy. campaignID is
// required by the public contract but does not scope the lookup; only the
// strategy key is matched.
func (u *AdUseCase) RecordClick(ctx context.Context, campaignID, strategyID string) error {
	return u.repo.IncrementClicks(ctx, strategyID)
}

// RecordConversion increments the conversion counter for the strategy.
func (u *AdUseCase) RecordConversion(ctx context.Context, campaignID, strategyID string) error {
	return u.repo.IncrementConversions(ctx, strategyID)
}

// UpdateBid validates and stores a new manual bid, returning the stored
// value.
func (u *AdUseCase) UpdateBid(ctx context.Context, strategyID string, newBid float64) (float64, error) {
	if math.IsNaN(newBid) || math.IsInf(newBid, 0) || newBid < 0 {
		return 0, port.ErrInvalidBid
	}
	return u.repo.UpdateBid(ctx, strategyID, newBid)
}

// CampaignPerformance folds all of a campaign's strategies into totals and
// derived rates. An empty strategy set is reported as ErrNoStrategies rather
// than zeroed aggregates.
func (u *AdUseCase) CampaignPerformance(ctx context.Context, campaignID string) (*domain.Performance, error) {
	strategies, err := u.repo.StrategiesByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		return nil, port.ErrNoStrategies
	}
	perf := domain.AggregatePerformance(strategies)
	return &perf, nil
}

// CreateCampaign provisions a campaign, stamping defaults for status and
// creation time.
func (u *AdUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.CampaignStatusActive
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return u.repo.CreateCampaign(ctx, c)
}

// CreateStrategy provisions a strategy, generating an external key when the
// caller did not supply one.
func (u *AdUseCase) CreateStrategy(ctx context.Context, s *domain.Strategy) error {
	if s.StrategyID == "" {
		s.StrategyID = "strategy-" + uuid.NewString()
	}
	if s.BiddingType == "" {
		s.BiddingType = domain.BiddingManual
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return u.repo.CreateStrategy(ctx, s)
}

// computeBid derives the bid for a strategy. Manual strategies pass their
// operator-set bid through unchanged. Automatic strategies scale the base bid
// by observed click-through rate: baseBid * (1 + ctr*100), where a strategy
// with no impressions yet gets a neutral multiplier instead of a division by
// zero.
func (u *AdUseCase) computeBid(s *domain.Strategy) float64 {
	if s.BiddingType != domain.BiddingAutomatic {
		return s.CurrentBid
	}
	var multiplier float64
	if s.Metrics.Impressions > 0 {
		multiplier = float64(s.Metrics.Clicks) / float64(s.Metrics.Impressions) * 100
	}
	return u.baseBid * (1 + multiplier)
}
