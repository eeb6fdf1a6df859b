package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "adpulse/internal/adapter/http"
	"adpulse/internal/adapter/memory"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/projection"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// newTestClient starts the real API over a seeded store and returns a
// client plus a counter of requests that reached the server.
func newTestClient(t *testing.T) (*Client, *atomic.Int64) {
	t.Helper()
	return newWrappedClient(t, func(api http.Handler) http.Handler { return api })
}

// newWrappedClient is newTestClient with wrap placed in front of the API.
func newWrappedClient(t *testing.T, wrap func(http.Handler) http.Handler) (*Client, *atomic.Int64) {
	t.Helper()
	repo := memory.NewDashboardRepository(testclock.NewClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, memory.Seed(context.Background(), repo))
	svc := usecase.NewDashboardUseCase(repo, projection.New(constRand(0.5)))
	api := wrap(httpadapter.NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Router())

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		api.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client()), &hits
}

// holdCampaignList answers matching GET /api/campaigns requests from a
// snapshot taken on arrival, but only writes the response once release is
// closed. Every held request is announced on arrived.
func holdCampaignList(match func() bool, arrived chan<- struct{}, release <-chan struct{}) func(http.Handler) http.Handler {
	return func(api http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != campaignsPath || !match() {
				api.ServeHTTP(w, r)
				return
			}
			rec := httptest.NewRecorder()
			api.ServeHTTP(rec, r)
			arrived <- struct{}{}
			<-release
			for k, v := range rec.Header() {
				w.Header()[k] = v
			}
			w.WriteHeader(rec.Code)
			_, _ = w.Write(rec.Body.Bytes())
		})
	}
}

func always() bool { return true }

func month() domain.DateRange {
	r, _ := domain.ParseDateRange("2024-01-01", "2024-01-31")
	return r
}

func TestQueriesAreCached(t *testing.T) {
	c, hits := newTestClient(t)
	ctx := context.Background()

	first, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load())

	// a different range is a different key
	scaled, err := c.Campaigns(ctx, month())
	require.NoError(t, err)
	assert.Equal(t, "342.00", scaled[0].ROI)
	assert.Equal(t, int64(2), hits.Load())
}

func TestMutationsInvalidateCampaigns(t *testing.T) {
	c, hits := newTestClient(t)
	ctx := context.Background()

	_, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	_, err = c.Campaigns(ctx, month())
	require.NoError(t, err)
	_, err = c.Metrics(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Equal(t, int64(3), hits.Load())

	created, err := c.CreateCampaign(ctx, domain.CampaignInput{Name: "Spring", Channel: "Email", Spend: "10", ROI: "2"})
	require.NoError(t, err)
	assert.Equal(t, "10.00", created.Spend)
	require.Equal(t, int64(4), hits.Load())

	list, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, int64(5), hits.Load())

	// metrics are not campaign queries and stay cached
	_, err = c.Metrics(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), hits.Load())

	status := domain.StatusPaused
	updated, err := c.UpdateCampaign(ctx, created.ID, domain.CampaignPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, updated.Status)

	got, err := c.Campaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, c.DeleteCampaign(ctx, created.ID))
	_, err = c.Campaign(ctx, created.ID)
	assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	c, hits := newTestClient(t)
	ctx := context.Background()

	_, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)

	_, err = c.CreateCampaign(ctx, domain.CampaignInput{Channel: "Email", Spend: "1", ROI: "1"})
	assert.True(t, errors.Is(err, errors.NotValid), "got %v", err)

	err = c.DeleteCampaign(ctx, "cp999")
	assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)

	before := hits.Load()
	_, err = c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, before, hits.Load())
}

func TestConcurrentQueriesShareOneFetch(t *testing.T) {
	arrived := make(chan struct{}, 8)
	release := make(chan struct{})
	c, hits := newWrappedClient(t, holdCampaignList(always, arrived, release))
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := c.Campaigns(ctx, domain.DateRange{})
			assert.NoError(t, err)
			assert.Len(t, list, 4)
		}()
	}
	<-arrived
	// let the remaining callers join the held fetch
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), hits.Load())
	_, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestReadAfterMutationSkipsInflightFetch(t *testing.T) {
	var first atomic.Bool
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	holdFirst := func() bool { return first.CompareAndSwap(false, true) }
	c, _ := newWrappedClient(t, holdCampaignList(holdFirst, arrived, release))
	ctx := context.Background()

	stale := make(chan []domain.Campaign, 1)
	go func() {
		list, err := c.Campaigns(ctx, domain.DateRange{})
		assert.NoError(t, err)
		stale <- list
	}()
	<-arrived

	_, err := c.CreateCampaign(ctx, domain.CampaignInput{Name: "Spring", Channel: "Email", Spend: "10", ROI: "2"})
	require.NoError(t, err)

	fresh := make(chan []domain.Campaign, 1)
	go func() {
		list, err := c.Campaigns(ctx, domain.DateRange{})
		assert.NoError(t, err)
		fresh <- list
	}()
	select {
	case list := <-fresh:
		assert.Len(t, list, 5)
	case <-time.After(2 * time.Second):
		t.Error("read after create waited on the earlier fetch")
	}

	close(release)
	assert.Len(t, <-stale, 4)

	// the earlier fetch must not have been cached either
	list, err := c.Campaigns(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestCancelOnlyStopsOwnCall(t *testing.T) {
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	c, hits := newWrappedClient(t, holdCampaignList(always, arrived, release))

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Campaigns(leaderCtx, domain.DateRange{})
		leaderErr <- err
	}()
	<-arrived

	follower := make(chan []domain.Campaign, 1)
	go func() {
		list, err := c.Campaigns(context.Background(), domain.DateRange{})
		assert.NoError(t, err)
		follower <- list
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	err := <-leaderErr
	require.Error(t, err)
	assert.Contains(t, err.Error(), context.Canceled.Error())

	close(release)
	assert.Len(t, <-follower, 4)
	assert.Equal(t, int64(1), hits.Load())
}

func TestChartNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Chart(context.Background(), "radar", domain.DateRange{})
	require.True(t, errors.Is(err, errors.NotFound), "got %v", err)
	assert.Contains(t, err.Error(), "Chart data not found")
}

func TestServerErrorsSurface(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Failed to fetch metrics"}`)
	}))
	defer srv.Close()
	c := New(srv.URL, srv.Client())

	_, err := c.Metrics(context.Background(), domain.DateRange{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch metrics", apiErr.Message)
	assert.Zero(t, c.cache.len())
}

func TestCancelledContext(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Campaigns(ctx, domain.DateRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}
