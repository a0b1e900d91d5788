package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adserver/internal/adapter/memory"
	"adserver/internal/adapter/usecase"
	"adserver/internal/core/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.AdRepository) {
	t.Helper()
	repo := memory.NewAdRepository()
	svc := usecase.NewAdUseCase(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(svc, logger).Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func seedPair(t *testing.T, repo *memory.AdRepository, strategyID string, m domain.Metrics, bid float64) {
	t.Helper()
	ctx := context.Background()
	_ = repo.CreateCampaign(ctx, &domain.Campaign{
		CampaignID: "c1",
		Name:       "Summer Sale",
		Status:     domain.CampaignStatusActive,
		StartDate:  "2025-06-01",
		EndDate:    "2025-08-31",
		CreatedAt:  time.Now(),
	})
	err := repo.CreateStrategy(ctx, &domain.Strategy{
		StrategyID:       strategyID,
		CampaignID:       "c1",
		Name:             "Broad Reach",
		BiddingType:      domain.BiddingManual,
		CurrentBid:       bid,
		DailyBudget:      25,
		Audiences:        []string{"18-24", "25-34"},
		SelectedChannels: []string{"social", "search"},
		Metrics:          m,
		CreatedAt:        time.Now(),
	})
	require.NoError(t, err)
}

// TestServeAd checks the full decision path including the rendered creative
// and the recorded impression.
func TestServeAd(t *testing.T) {
	srv, repo := newTestServer(t)
	seedPair(t, repo, "s1", domain.Metrics{}, 1.5)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/serve-ad", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "c1", body["campaignId"])
	require.Equal(t, "s1", body["strategyId"])

	ad, ok := body["ad"].(map[string]any)
	require.True(t, ok, "missing ad payload: %v", body)
	require.Equal(t, "Summer Sale - Broad Reach", ad["title"])
	require.Equal(t, "18-24, 25-34", ad["targetAudience"])
	require.Equal(t, "social, search", ad["channels"])

	s, err := repo.StrategyByID(context.Background(), "s1")
	require.NoError(t, err)
	require.EqualValues(t, 1, s.Metrics.Impressions)
}

// TestServeAdEmptyStore checks the fallback path: an empty store synthesizes
// the default pair instead of failing.
func TestServeAdEmptyStore(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/serve-ad", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, domain.DefaultCampaignID, body["campaignId"])
	require.Equal(t, domain.DefaultStrategyID(domain.DefaultCampaignID), body["strategyId"])
}

// TestUpdateBid covers success, unknown strategy and missing fields.
func TestUpdateBid(t *testing.T) {
	srv, repo := newTestServer(t)
	seedPair(t, repo, "s1", domain.Metrics{}, 1.0)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/update-bid",
		map[string]any{"strategyId": "s1", "newBid": 2.5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.EqualValues(t, 2.5, body["updatedBid"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/update-bid",
		map[string]any{"strategyId": "unknown", "newBid": 2.5})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotEmpty(t, body["error"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/update-bid",
		map[string]any{"strategyId": "s1"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotEmpty(t, body["error"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/update-bid",
		map[string]any{"strategyId": "s1", "newBid": -1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestRecordClickValidation rejects bodies missing either identifier.
func TestRecordClickValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/record-click",
		map[string]any{"strategyId": "s1"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotEmpty(t, body["error"])
}

// TestCampaignPerformance checks the aggregate body over two strategies and
// the not-found case.
func TestCampaignPerformance(t *testing.T) {
	srv, repo := newTestServer(t)
	seedPair(t, repo, "s1", domain.Metrics{Impressions: 100, Clicks: 10}, 1.0)
	err := repo.CreateStrategy(context.Background(), &domain.Strategy{
		StrategyID: "s2",
		CampaignID: "c1",
		Name:       "Narrow",
		Metrics:    domain.Metrics{Impressions: 50, Clicks: 0},
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/campaign-performance/c1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 150, body["impressions"])
	require.EqualValues(t, 10, body["clicks"])
	require.InDelta(t, 6.67, body["ctr"].(float64), 0.01)
	require.EqualValues(t, 0, body["conversionRate"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/campaign-performance/none", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotEmpty(t, body["error"])
}

// TestClickRoundTrip records a click and verifies the performance view
// reflects exactly one additional click with a recomputed rate.
func TestClickRoundTrip(t *testing.T) {
	srv, repo := newTestServer(t)
	seedPair(t, repo, "s1", domain.Metrics{Impressions: 100, Clicks: 10}, 1.0)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/record-click",
		map[string]any{"campaignId": "c1", "strategyId": "s1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	resp, perf := doJSON(t, http.MethodGet, srv.URL+"/campaign-performance/c1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 11, perf["clicks"])
	require.InDelta(t, 11.0, perf["ctr"].(float64), 0.001)

	s, err := repo.StrategyByID(context.Background(), "s1")
	require.NoError(t, err)
	require.EqualValues(t, 11, s.Metrics.Clicks)
}

// TestRecordConversion records a conversion and checks the counter.
func TestRecordConversion(t *testing.T) {
	srv, repo := newTestServer(t)
	seedPair(t, repo, "s1", domain.Metrics{}, 1.0)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/record-conversion",
		map[string]any{"campaignId": "c1", "strategyId": "s1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	s, err := repo.StrategyByID(context.Background(), "s1")
	require.NoError(t, err)
	require.EqualValues(t, 1, s.Metrics.Conversions)
}

// TestProvisioning creates a campaign and strategy over HTTP and rejects
// duplicates.
func TestProvisioning(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/campaigns",
		map[string]any{"campaignId": "c9", "name": "Launch", "budget": 500})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "c9", body["campaignId"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/campaigns",
		map[string]any{"campaignId": "c9", "name": "Launch"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/strategies",
		map[string]any{"campaignId": "c9", "name": "Wide", "biddingType": "automatic"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["strategyId"])

	// a strategy must reference an existing campaign
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/strategies",
		map[string]any{"campaignId": "ghost", "name": "Orphan"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotEmpty(t, body["error"])
}
