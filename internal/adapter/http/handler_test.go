package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/memory"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port/mocks"
	"adpulse/internal/core/projection"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

var epoch = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSeededHandler wires the real repository and use case, seeded with the
// demo dataset.
func newSeededHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	repo := memory.NewDashboardRepository(testclock.NewClock(epoch))
	require.NoError(t, memory.Seed(context.Background(), repo))
	svc := usecase.NewDashboardUseCase(repo, projection.New(constRand(0.5)))
	return NewHandler(svc, discardLogger(), opts...).Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func listCampaigns(t *testing.T, h http.Handler) []domain.Campaign {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/api/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[[]domain.Campaign](t, rec)
}

func TestSeededCampaigns(t *testing.T) {
	h := newSeededHandler(t)

	list := listCampaigns(t, h)
	require.Len(t, list, 4)

	wantNames := map[string]string{
		"cp001": "Summer Sale 2024",
		"cp002": "Holiday Campaign",
		"cp003": "Brand Awareness",
		"cp004": "Product Launch",
	}
	for _, c := range list {
		assert.Equal(t, wantNames[c.ID], c.Name, c.ID)
	}
	assert.Equal(t, domain.Campaign{
		ID: "cp002", Name: "Holiday Campaign", Channel: "Facebook", Spend: "1890.00",
		Conversions: 92, ROI: "312.00", Status: "paused", CreatedAt: epoch,
	}, list[1])
}

func TestCreateThenRead(t *testing.T) {
	h := newSeededHandler(t)

	rec := do(t, h, http.MethodPost, "/api/campaigns",
		`{"name":"Spring Promo","channel":"Email","spend":"500","roi":"120.5","conversions":12}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.Campaign](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, epoch, created.CreatedAt)
	assert.Equal(t, "500.00", created.Spend)
	assert.Equal(t, "120.50", created.ROI)
	assert.Equal(t, domain.StatusActive, created.Status)

	rec = do(t, h, http.MethodGet, "/api/campaigns/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[domain.Campaign](t, rec))
	assert.Len(t, listCampaigns(t, h), 5)
}

func TestCreateIgnoresClientIdentity(t *testing.T) {
	h := newSeededHandler(t)

	rec := do(t, h, http.MethodPost, "/api/campaigns",
		`{"id":"cp001","createdAt":"2000-01-01T00:00:00Z","name":"X","channel":"Y","spend":"1","roi":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[domain.Campaign](t, rec)
	assert.NotEqual(t, "cp001", created.ID)
	assert.Equal(t, epoch, created.CreatedAt)
}

func TestUpdatePartial(t *testing.T) {
	h := newSeededHandler(t)

	before := decode[domain.Campaign](t, do(t, h, http.MethodGet, "/api/campaigns/cp001", ""))

	rec := do(t, h, http.MethodPut, "/api/campaigns/cp001", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	want := before
	want.Status = domain.StatusPaused
	assert.Equal(t, want, decode[domain.Campaign](t, rec))

	rec = do(t, h, http.MethodPut, "/api/campaigns/cp001", `{"name":null,"spend":"99.9"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[domain.Campaign](t, rec)
	assert.Equal(t, before.Name, got.Name)
	assert.Equal(t, "99.90", got.Spend)
}

func TestDeleteThenFetch(t *testing.T) {
	h := newSeededHandler(t)

	rec := do(t, h, http.MethodDelete, "/api/campaigns/cp003", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/campaigns/cp003", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]string{"error": "Campaign not found"}, decode[map[string]string](t, rec))
}

func TestNotFoundDoesNotMutate(t *testing.T) {
	h := newSeededHandler(t)
	before := listCampaigns(t, h)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"status":"paused"}`},
		{http.MethodDelete, ""},
	} {
		rec := do(t, h, tc.method, "/api/campaigns/cp999", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
	}
	assert.Equal(t, before, listCampaigns(t, h))
}

func TestValidationRejection(t *testing.T) {
	h := newSeededHandler(t)

	bodies := []string{
		`{"channel":"Email","spend":"1","roi":"1"}`,
		`{"name":"","channel":"Email","spend":"1","roi":"1"}`,
		`{"name":"X","channel":"Email","spend":1,"roi":"1"}`,
		`{"name":"X","channel":"Email","spend":"1","roi":"1","status":"archived"}`,
		`{"name":"X","channel":"Email","spend":"1","roi":"1","conversions":-3}`,
		`not json`,
		``,
	}
	for _, body := range bodies {
		rec := do(t, h, http.MethodPost, "/api/campaigns", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, map[string]string{"error": "Invalid campaign data"}, decode[map[string]string](t, rec))
	}
	assert.Len(t, listCampaigns(t, h), 4)

	rec := do(t, h, http.MethodPut, "/api/campaigns/cp001", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsRange(t *testing.T) {
	h := newSeededHandler(t)

	rec := do(t, h, http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode[domain.Metrics](t, rec)
	assert.Equal(t, "24567.00", m.Revenue)
	assert.Equal(t, int64(12456), m.Users)
	assert.Equal(t, "3.20", m.Conversions)
	assert.Equal(t, "18.70", m.Growth)

	// a lone bound is not a range
	rec = do(t, h, http.MethodGet, "/api/metrics?from=2024-01-01", "")
	assert.Equal(t, m, decode[domain.Metrics](t, rec))

	rec = do(t, h, http.MethodGet, "/api/metrics?from=2024-01-01&to=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	scaled := decode[domain.Metrics](t, rec)
	assert.Equal(t, "49134.00", scaled.Revenue) // 60 days

	rec = do(t, h, http.MethodGet, "/api/metrics?from=soon&to=2024-03-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEmptyStore(t *testing.T) {
	repo := memory.NewDashboardRepository(testclock.NewClock(epoch))
	svc := usecase.NewDashboardUseCase(repo, projection.New(constRand(0.5)))
	h := NewHandler(svc, discardLogger()).Router()

	rec := do(t, h, http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestCampaignsThirtyDayWindow(t *testing.T) {
	h := newSeededHandler(t)

	rec := do(t, h, http.MethodGet, "/api/campaigns?from=2024-01-01&to=2024-01-31", "")
	require.Equal(t, http.StatusOK, rec.Code)
	scaled := decode[[]domain.Campaign](t, rec)
	base := listCampaigns(t, h)
	require.Len(t, scaled, len(base))
	for i := range base {
		assert.Equal(t, base[i].Spend, scaled[i].Spend)
		assert.Equal(t, base[i].Conversions, scaled[i].Conversions)
	}
	assert.Equal(t, "342.00", scaled[0].ROI)
}

func TestChartsLengthInvariant(t *testing.T) {
	h := newSeededHandler(t)

	for _, typ := range []string{"line", "bar", "pie"} {
		for _, q := range []string{"", "?from=2024-01-01&to=2024-02-15"} {
			rec := do(t, h, http.MethodGet, "/api/charts/"+typ+q, "")
			require.Equal(t, http.StatusOK, rec.Code, typ+q)
			c := decode[domain.ChartData](t, rec)
			assert.Equal(t, typ, c.Type)
			require.NotEmpty(t, c.Data.Datasets)
			for _, ds := range c.Data.Datasets {
				assert.Len(t, ds.Data, len(c.Data.Labels), typ+q)
			}
		}
	}

	rec := do(t, h, http.MethodGet, "/api/charts/radar", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]string{"error": "Chart data not found"}, decode[map[string]string](t, rec))
}

func TestUnexpectedErrorsAreGeneric(t *testing.T) {
	svc := mocks.NewMockDashboardUseCase(t)
	svc.EXPECT().Campaigns(mock.Anything, mock.Anything).Return(nil, errors.New("disk on fire"))
	svc.EXPECT().DeleteCampaign(mock.Anything, "cp001").Return(errors.New("disk on fire"))
	svc.EXPECT().Metrics(mock.Anything, mock.Anything).Return(nil, errors.New("disk on fire"))

	var logs bytes.Buffer
	h := NewHandler(svc, slog.New(slog.NewTextHandler(&logs, nil))).Router()

	for target, msg := range map[string]string{
		"GET /api/campaigns":          "Failed to fetch campaigns",
		"DELETE /api/campaigns/cp001": "Failed to delete campaign",
		"GET /api/metrics":            "Failed to fetch metrics",
	} {
		method, path, _ := strings.Cut(target, " ")
		rec := do(t, h, method, path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.Equal(t, map[string]string{"error": msg}, decode[map[string]string](t, rec))
		assert.NotContains(t, rec.Body.String(), "disk on fire")
	}
	assert.Contains(t, logs.String(), "disk on fire")
}

func TestValidationNeverReachesUseCase(t *testing.T) {
	// no expectations: any call fails the test
	svc := mocks.NewMockDashboardUseCase(t)
	h := NewHandler(svc, discardLogger()).Router()

	rec := do(t, h, http.MethodPost, "/api/campaigns", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newSeededHandler(t, WithMetrics(reg))

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	do(t, h, http.MethodGet, "/api/campaigns/cp001", "")

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `adpulse_http_requests_total{method="GET",route="/api/campaigns/{id}",status="200"} 1`)
}
