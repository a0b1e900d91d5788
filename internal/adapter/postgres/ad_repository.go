package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserver/internal/core/domain"
	"adserver/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Counter and bid mutations are single UPDATE statements, so concurrent
// calls targeting the same strategy serialize on the row without any
// read-modify-write window.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const campaignColumns = `id, campaign_id, name, budget, status, start_date, end_date, audience_location, created_at`

const strategyColumns = `id, strategy_id, campaign_id, name, bidding_type, current_bid, daily_budget,
	audiences, selected_channels, selected_goal, age_range, gender, screens,
	impressions, clicks, conversions, spend, created_at`

// LatestCampaign returns the newest campaign, synthesizing the default one
// when the table is empty. The insert uses ON CONFLICT DO NOTHING so two
// concurrent synthesizers converge on a single row.
func (r *AdRepository) LatestCampaign(ctx context.Context) (*domain.Campaign, error) {
	c, err := r.scanCampaign(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	def := domain.DefaultCampaign(time.Now().UTC())
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
		(campaign_id, name, budget, status, start_date, end_date, audience_location, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (campaign_id) DO NOTHING`,
		def.CampaignID, def.Name, def.Budget, def.Status, def.StartDate, def.EndDate, def.AudienceLocation, def.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r.scanCampaign(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE campaign_id = $1`, def.CampaignID)
}

// LatestStrategyByCampaign returns the newest strategy for the campaign,
// synthesizing the default one when the campaign has none.
func (r *AdRepository) LatestStrategyByCampaign(ctx context.Context, campaignID string) (*domain.Strategy, error) {
	s, err := r.scanStrategy(ctx,
		`SELECT `+strategyColumns+` FROM strategies WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`, campaignID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	def := domain.DefaultStrategy(campaignID, time.Now().UTC())
	if err = r.insertStrategy(ctx, def, true); err != nil {
		return nil, err
	}
	return r.scanStrategy(ctx, `SELECT `+strategyColumns+` FROM strategies WHERE strategy_id = $1`, def.StrategyID)
}

// StrategyByID returns the unique strategy with the given external key.
func (r *AdRepository) StrategyByID(ctx context.Context, strategyID string) (*domain.Strategy, error) {
	s, err := r.scanStrategy(ctx, `SELECT `+strategyColumns+` FROM strategies WHERE strategy_id = $1`, strategyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrStrategyNotFound
	}
	return s, err
}

// StrategiesByCampaign returns all strategies for a campaign, newest first.
func (r *AdRepository) StrategiesByCampaign(ctx context.Context, campaignID string) ([]domain.Strategy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+strategyColumns+` FROM strategies WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Strategy, error) {
		var s domain.Strategy
		err := scanStrategyRow(row, &s)
		return s, err
	})
}

// CreateCampaign persists a new campaign and backfills its internal id.
func (r *AdRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
		(campaign_id, name, budget, status, start_date, end_date, audience_location, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		c.CampaignID, c.Name, c.Budget, c.Status, c.StartDate, c.EndDate, c.AudienceLocation, c.CreatedAt).Scan(&c.ID)
	if isUniqueViolation(err) {
		return port.ErrAlreadyExists
	}
	return err
}

// CreateStrategy persists a new strategy and backfills its internal id. A
// campaign_id that resolves no campaign surfaces as ErrCampaignNotFound, not
// as a store failure.
func (r *AdRepository) CreateStrategy(ctx context.Context, s *domain.Strategy) error {
	err := r.insertStrategy(ctx, s, false)
	switch {
	case isUniqueViolation(err):
		return port.ErrAlreadyExists
	case isForeignKeyViolation(err):
		return port.ErrCampaignNotFound
	}
	return err
}

// IncrementImpressions atomically adds one impression.
func (r *AdRepository) IncrementImpressions(ctx context.Context, strategyID string) error {
	return r.mutateStrategy(ctx, `UPDATE strategies SET impressions = impressions + 1 WHERE strategy_id = $1`, strategyID)
}

// IncrementClicks atomically adds one click and charges the current bid into
// spend in the same statement.
func (r *AdRepository) IncrementClicks(ctx context.Context, strategyID string) error {
	return r.mutateStrategy(ctx,
		`UPDATE strategies SET clicks = clicks + 1, spend = spend + current_bid WHERE strategy_id = $1`, strategyID)
}

// IncrementConversions atomically adds one conversion.
func (r *AdRepository) IncrementConversions(ctx context.Context, strategyID string) error {
	return r.mutateStrategy(ctx, `UPDATE strategies SET conversions = conversions + 1 WHERE strategy_id = $1`, strategyID)
}

// UpdateBid atomically replaces the current bid and returns the stored value.
func (r *AdRepository) UpdateBid(ctx context.Context, strategyID string, newBid float64) (float64, error) {
	var updated float64
	err := r.pool.QueryRow(ctx,
		`UPDATE strategies SET current_bid = $2 WHERE strategy_id = $1 RETURNING current_bid`,
		strategyID, newBid).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrStrategyNotFound
	}
	return updated, err
}

func (r *AdRepository) mutateStrategy(ctx context.Context, query, strategyID string) error {
	tag, err := r.pool.Exec(ctx, query, strategyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrStrategyNotFound
	}
	return nil
}

func (r *AdRepository) insertStrategy(ctx context.Context, s *domain.Strategy, onConflictIgnore bool) error {
	query := `INSERT INTO strategies
		(strategy_id, campaign_id, name, bidding_type, current_bid, daily_budget,
		 audiences, selected_channels, selected_goal, age_range, gender, screens,
		 impressions, clicks, conversions, spend, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	if onConflictIgnore {
		query += ` ON CONFLICT (strategy_id) DO NOTHING`
	}
	_, err := r.pool.Exec(ctx, query,
		s.StrategyID, s.CampaignID, s.Name, s.BiddingType, s.CurrentBid, s.DailyBudget,
		s.Audiences, s.SelectedChannels, s.SelectedGoal, s.AgeRange, s.Gender, s.Screens,
		s.Metrics.Impressions, s.Metrics.Clicks, s.Metrics.Conversions, s.Metrics.Spend, s.CreatedAt)
	return err
}

func (r *AdRepository) scanCampaign(ctx context.Context, query string, args ...any) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.CampaignID, &c.Name, &c.Budget, &c.Status,
		&c.StartDate, &c.EndDate, &c.AudienceLocation, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AdRepository) scanStrategy(ctx context.Context, query string, args ...any) (*domain.Strategy, error) {
	var s domain.Strategy
	if err := scanStrategyRow(r.pool.QueryRow(ctx, query, args...), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStrategyRow(row pgx.Row, s *domain.Strategy) error {
	return row.Scan(
		&s.ID, &s.StrategyID, &s.CampaignID, &s.Name, &s.BiddingType, &s.CurrentBid, &s.DailyBudget,
		&s.Audiences, &s.SelectedChannels, &s.SelectedGoal, &s.AgeRange, &s.Gender, &s.Screens,
		&s.Metrics.Impressions, &s.Metrics.Clicks, &s.Metrics.Conversions, &s.Metrics.Spend, &s.CreatedAt)
}

func isUniqueViolation(err error) bool {
	return isPgErrCode(err, "23505")
}

func isForeignKeyViolation(err error) bool {
	return isPgErrCode(err, "23503")
}

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
