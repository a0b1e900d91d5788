package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"adserver/internal/core/domain"
	"adserver/internal/core/port"
)

func seedStrategy(t *testing.T, repo *AdRepository, strategyID string, bid float64) {
	t.Helper()
	err := repo.CreateCampaign(context.Background(), &domain.Campaign{
		CampaignID: "c1",
		Name:       "C",
		Status:     domain.CampaignStatusActive,
		CreatedAt:  time.Now(),
	})
	if err != nil && !errors.Is(err, port.ErrAlreadyExists) {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	err = repo.CreateStrategy(context.Background(), &domain.Strategy{
		StrategyID:  strategyID,
		CampaignID:  "c1",
		Name:        "S",
		BiddingType: domain.BiddingManual,
		CurrentBid:  bid,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateStrategy error: %v", err)
	}
}

// TestConcurrentIncrements ensures no increment is lost when impressions and
// clicks race against the same strategy: a impression goroutines and b click
// goroutines must land as exactly +a and +b.
func TestConcurrentIncrements(t *testing.T) {
	repo := NewAdRepository()
	seedStrategy(t, repo, "s1", 2.0)

	const a, b = 100, 40

	wg := sync.WaitGroup{}
	wg.Add(a + b)
	for i := 0; i < a; i++ {
		go func() {
			defer wg.Done()
			_ = repo.IncrementImpressions(context.Background(), "s1")
		}()
	}
	for i := 0; i < b; i++ {
		go func() {
			defer wg.Done()
			_ = repo.IncrementClicks(context.Background(), "s1")
		}()
	}
	wg.Wait()

	s, err := repo.StrategyByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("StrategyByID error: %v", err)
	}
	if s.Metrics.Impressions != a {
		t.Fatalf("impressions = %d, want %d", s.Metrics.Impressions, a)
	}
	if s.Metrics.Clicks != b {
		t.Fatalf("clicks = %d, want %d", s.Metrics.Clicks, b)
	}
	// each click charges the current bid
	if s.Metrics.Spend != b*2.0 {
		t.Fatalf("spend = %v, want %v", s.Metrics.Spend, b*2.0)
	}
}

// TestIncrementUnknownStrategy ensures mutations against a missing reference
// report not-found.
func TestIncrementUnknownStrategy(t *testing.T) {
	repo := NewAdRepository()

	if err := repo.IncrementImpressions(context.Background(), "nope"); !errors.Is(err, port.ErrStrategyNotFound) {
		t.Fatalf("expected ErrStrategyNotFound, got %v", err)
	}
	if _, err := repo.UpdateBid(context.Background(), "nope", 1); !errors.Is(err, port.ErrStrategyNotFound) {
		t.Fatalf("expected ErrStrategyNotFound, got %v", err)
	}
}

// TestUpdateBid ensures the stored value is replaced and returned.
func TestUpdateBid(t *testing.T) {
	repo := NewAdRepository()
	seedStrategy(t, repo, "s1", 1.0)

	updated, err := repo.UpdateBid(context.Background(), "s1", 2.5)
	if err != nil {
		t.Fatalf("UpdateBid error: %v", err)
	}
	if updated != 2.5 {
		t.Fatalf("updated = %v, want 2.5", updated)
	}

	s, _ := repo.StrategyByID(context.Background(), "s1")
	if s.CurrentBid != 2.5 {
		t.Fatalf("stored bid = %v, want 2.5", s.CurrentBid)
	}
}

// TestSynthesizesDefaults ensures the latest lookups create and persist
// default records when the store is empty, and stay stable across calls.
func TestSynthesizesDefaults(t *testing.T) {
	repo := NewAdRepository()

	campaign, err := repo.LatestCampaign(context.Background())
	if err != nil {
		t.Fatalf("LatestCampaign error: %v", err)
	}
	if campaign.CampaignID != domain.DefaultCampaignID {
		t.Fatalf("unexpected campaign id: %q", campaign.CampaignID)
	}
	if campaign.Status != domain.CampaignStatusActive {
		t.Fatalf("default campaign should be active, got %q", campaign.Status)
	}

	strategy, err := repo.LatestStrategyByCampaign(context.Background(), campaign.CampaignID)
	if err != nil {
		t.Fatalf("LatestStrategyByCampaign error: %v", err)
	}
	if strategy.StrategyID != domain.DefaultStrategyID(campaign.CampaignID) {
		t.Fatalf("unexpected strategy id: %q", strategy.StrategyID)
	}

	// second call resolves the persisted records, not new ones
	again, err := repo.LatestCampaign(context.Background())
	if err != nil {
		t.Fatalf("LatestCampaign error: %v", err)
	}
	if again.ID != campaign.ID {
		t.Fatalf("default campaign was re-created: %d vs %d", again.ID, campaign.ID)
	}
}

// TestLatestPicksNewest ensures the latest lookups order by creation time.
func TestLatestPicksNewest(t *testing.T) {
	repo := NewAdRepository()
	base := time.Now()

	for i, id := range []string{"old", "new"} {
		err := repo.CreateCampaign(context.Background(), &domain.Campaign{
			CampaignID: id,
			Name:       id,
			Status:     domain.CampaignStatusActive,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("CreateCampaign error: %v", err)
		}
	}

	c, err := repo.LatestCampaign(context.Background())
	if err != nil {
		t.Fatalf("LatestCampaign error: %v", err)
	}
	if c.CampaignID != "new" {
		t.Fatalf("latest campaign = %q, want \"new\"", c.CampaignID)
	}
}

// TestDefaultStrategyScopedPerCampaign ensures a newer campaign synthesizing
// its own default never resets the metrics already accrued by another
// campaign's default strategy.
func TestDefaultStrategyScopedPerCampaign(t *testing.T) {
	repo := NewAdRepository()
	ctx := context.Background()

	campaign, err := repo.LatestCampaign(ctx)
	if err != nil {
		t.Fatalf("LatestCampaign error: %v", err)
	}
	first, err := repo.LatestStrategyByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		t.Fatalf("LatestStrategyByCampaign error: %v", err)
	}
	if err = repo.IncrementClicks(ctx, first.StrategyID); err != nil {
		t.Fatalf("IncrementClicks error: %v", err)
	}

	// a newer campaign with no strategies synthesizes its own default
	err = repo.CreateCampaign(ctx, &domain.Campaign{
		CampaignID: "c2",
		Name:       "Newer",
		Status:     domain.CampaignStatusActive,
		CreatedAt:  campaign.CreatedAt.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	second, err := repo.LatestStrategyByCampaign(ctx, "c2")
	if err != nil {
		t.Fatalf("LatestStrategyByCampaign error: %v", err)
	}
	if second.StrategyID == first.StrategyID {
		t.Fatalf("default strategy key %q shared across campaigns", second.StrategyID)
	}
	if second.CampaignID != "c2" {
		t.Fatalf("synthesized strategy bound to %q, want c2", second.CampaignID)
	}
	if second.Metrics.Clicks != 0 {
		t.Fatalf("fresh default should start at zero clicks, got %d", second.Metrics.Clicks)
	}

	kept, err := repo.StrategyByID(ctx, first.StrategyID)
	if err != nil {
		t.Fatalf("StrategyByID error: %v", err)
	}
	if kept.Metrics.Clicks != 1 {
		t.Fatalf("accrued clicks were reset: got %d, want 1", kept.Metrics.Clicks)
	}
	if kept.CampaignID != campaign.CampaignID {
		t.Fatalf("default strategy rebound to %q", kept.CampaignID)
	}
}

// TestLatestTieBreak ensures creation-time ties resolve by external key
// instead of map iteration order.
func TestLatestTieBreak(t *testing.T) {
	repo := NewAdRepository()
	created := time.Now()

	for _, id := range []string{"first", "second", "third"} {
		err := repo.CreateCampaign(context.Background(), &domain.Campaign{
			CampaignID: id,
			Name:       id,
			Status:     domain.CampaignStatusActive,
			CreatedAt:  created,
		})
		if err != nil {
			t.Fatalf("CreateCampaign error: %v", err)
		}
	}

	for i := 0; i < 10; i++ {
		c, err := repo.LatestCampaign(context.Background())
		if err != nil {
			t.Fatalf("LatestCampaign error: %v", err)
		}
		if c.CampaignID != "third" {
			t.Fatalf("latest campaign = %q, want \"third\"", c.CampaignID)
		}
	}
}

// TestCreateStrategyUnknownCampaign ensures a strategy cannot reference a
// campaign that does not exist.
func TestCreateStrategyUnknownCampaign(t *testing.T) {
	repo := NewAdRepository()

	err := repo.CreateStrategy(context.Background(), &domain.Strategy{
		StrategyID: "s1",
		CampaignID: "ghost",
		Name:       "S",
	})
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// TestCreateDuplicate ensures duplicate external keys are rejected.
func TestCreateDuplicate(t *testing.T) {
	repo := NewAdRepository()
	seedStrategy(t, repo, "s1", 1.0)

	err := repo.CreateStrategy(context.Background(), &domain.Strategy{StrategyID: "s1", CampaignID: "c1"})
	if !errors.Is(err, port.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
