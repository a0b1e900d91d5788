package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"adserver/internal/core/domain"
	"adserver/internal/core/port"
)

// AdRepository is an in-memory implementation of port.AdRepository. It backs
// DB-less environments and tests. All record access goes through a single
// mutex, so counter mutations serialize: N concurrent increments on one
// strategy always land as exactly +N, never through an interleaved
// read-modify-write cycle.
type AdRepository struct {
	mu         sync.Mutex
	campaigns  map[string]*domain.Campaign
	strategies map[string]*domain.Strategy
	nextID     int64
}

// NewAdRepository returns an empty in-memory repository.
func NewAdRepository() *AdRepository {
	return &AdRepository{
		campaigns:  make(map[string]*domain.Campaign),
		strategies: make(map[string]*domain.Strategy),
	}
}

// LatestCampaign returns the newest campaign, synthesizing the default one
// when the store is empty.
func (r *AdRepository) LatestCampaign(ctx context.Context) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *domain.Campaign
	for _, c := range r.campaigns {
		if latest == nil || newerCampaign(c, latest) {
			latest = c
		}
	}
	if latest == nil {
		latest = domain.DefaultCampaign(time.Now().UTC())
		r.nextID++
		latest.ID = r.nextID
		r.campaigns[latest.CampaignID] = latest
	}
	out := *latest
	return &out, nil
}

// LatestStrategyByCampaign returns the newest strategy for the campaign,
// synthesizing the default one when the campaign has none.
func (r *AdRepository) LatestStrategyByCampaign(ctx context.Context, campaignID string) (*domain.Strategy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *domain.Strategy
	for _, s := range r.strategies {
		if s.CampaignID != campaignID {
			continue
		}
		if latest == nil || newerStrategy(s, latest) {
			latest = s
		}
	}
	if latest == nil {
		latest = domain.DefaultStrategy(campaignID, time.Now().UTC())
		r.nextID++
		latest.ID = r.nextID
		r.strategies[latest.StrategyID] = latest
	}
	out := cloneStrategy(latest)
	return &out, nil
}

// StrategyByID returns the strategy with the given external key.
func (r *AdRepository) StrategyByID(ctx context.Context, strategyID string) (*domain.Strategy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.strategies[strategyID]
	if !ok {
		return nil, port.ErrStrategyNotFound
	}
	out := cloneStrategy(s)
	return &out, nil
}

// StrategiesByCampaign returns all strategies for a campaign, newest first.
func (r *AdRepository) StrategiesByCampaign(ctx context.Context, campaignID string) ([]domain.Strategy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Strategy
	for _, s := range r.strategies {
		if s.CampaignID == campaignID {
			out = append(out, cloneStrategy(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// CreateCampaign persists a new campaign.
func (r *AdRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.CampaignID]; ok {
		return port.ErrAlreadyExists
	}
	r.nextID++
	c.ID = r.nextID
	stored := *c
	r.campaigns[c.CampaignID] = &stored
	return nil
}

// CreateStrategy persists a new strategy. The referenced campaign must
// already exist.
func (r *AdRepository) CreateStrategy(ctx context.Context, s *domain.Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[s.CampaignID]; !ok {
		return port.ErrCampaignNotFound
	}
	if _, ok := r.strategies[s.StrategyID]; ok {
		return port.ErrAlreadyExists
	}
	r.nextID++
	s.ID = r.nextID
	stored := cloneStrategy(s)
	r.strategies[s.StrategyID] = &stored
	return nil
}

// IncrementImpressions atomically adds one impression.
func (r *AdRepository) IncrementImpressions(ctx context.Context, strategyID string) error {
	return r.mutate(strategyID, func(s *domain.Strategy) {
		s.Metrics.Impressions++
	})
}

// IncrementClicks atomically adds one click and charges the current bid into
// spend under the same lock acquisition.
func (r *AdRepository) IncrementClicks(ctx context.Context, strategyID string) error {
	return r.mutate(strategyID, func(s *domain.Strategy) {
		s.Metrics.Clicks++
		s.Metrics.Spend += s.CurrentBid
	})
}

// IncrementConversions atomically adds one conversion.
func (r *AdRepository) IncrementConversions(ctx context.Context, strategyID string) error {
	return r.mutate(strategyID, func(s *domain.Strategy) {
		s.Metrics.Conversions++
	})
}

// UpdateBid atomically replaces the current bid and returns the stored value.
func (r *AdRepository) UpdateBid(ctx context.Context, strategyID string, newBid float64) (float64, error) {
	var updated float64
	err := r.mutate(strategyID, func(s *domain.Strategy) {
		s.CurrentBid = newBid
		updated = s.CurrentBid
	})
	return updated, err
}

func (r *AdRepository) mutate(strategyID string, fn func(*domain.Strategy)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.strategies[strategyID]
	if !ok {
		return port.ErrStrategyNotFound
	}
	fn(s)
	return nil
}

// newerCampaign reports whether a should be preferred over b as "latest",
// breaking creation-time ties by insertion order.
func newerCampaign(a, b *domain.Campaign) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func newerStrategy(a, b *domain.Strategy) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// cloneStrategy copies a strategy including its slices so callers never share
// backing arrays with stored records.
func cloneStrategy(s *domain.Strategy) domain.Strategy {
	out := *s
	out.Audiences = append([]string(nil), s.Audiences...)
	out.SelectedChannels = append([]string(nil), s.SelectedChannels...)
	return out
}
