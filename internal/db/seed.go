package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and strategies with primed metrics so the
// decision and performance endpoints return meaningful data out of the box.
// Inserts are idempotent on the external keys.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	goals := []string{"Brand awareness", "Lead generation", "Store visits"}
	channels := [][]string{
		{"social", "search"},
		{"display", "video"},
		{"social", "display", "search"},
	}
	audiences := [][]string{
		{"18-24", "25-34"},
		{"25-34", "35-44"},
		{"35-44", "45-54"},
	}

	for i := 1; i <= 3; i++ {
		campaignID := fmt.Sprintf("campaign-%d", i)
		start := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
		end := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
			(campaign_id, name, budget, status, start_date, end_date, audience_location, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT (campaign_id) DO NOTHING`,
			campaignID, fmt.Sprintf("Demo Campaign %d", i), 1000.0, "active", start, end, "United States")
		if err != nil {
			return err
		}

		for j := 1; j <= 2; j++ {
			strategyID := "strategy-" + uuid.NewString()
			biddingType := "manual"
			if j%2 == 0 {
				biddingType = "automatic"
			}
			impressions := int64(r.Intn(5000))
			clicks := int64(0)
			if impressions > 0 {
				clicks = int64(r.Intn(int(impressions)/10 + 1))
			}
			conversions := int64(0)
			if clicks > 0 {
				conversions = int64(r.Intn(int(clicks)))
			}
			bid := 0.5 + r.Float64()*2
			_, err = pool.Exec(ctx, `INSERT INTO strategies
				(strategy_id, campaign_id, name, bidding_type, current_bid, daily_budget,
				 audiences, selected_channels, selected_goal, age_range, gender, screens,
				 impressions, clicks, conversions, spend, created_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now())
				ON CONFLICT (strategy_id) DO NOTHING`,
				strategyID, campaignID, fmt.Sprintf("Strategy %d-%d", i, j), biddingType, bid, 25.0,
				audiences[r.Intn(len(audiences))], channels[r.Intn(len(channels))],
				goals[r.Intn(len(goals))], "", "", "",
				impressions, clicks, conversions, float64(clicks)*bid)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
