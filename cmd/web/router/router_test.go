package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"congress-tracker/cmd/web/services"
	"congress-tracker/models"
	"congress-tracker/repositories"
)

type emptyTrades struct{}

func (emptyTrades) List(_ context.Context, opt repositories.ListTradesOptions) (repositories.ListResult, error) {
	return repositories.ListResult{Page: 1, PageSize: opt.PageSize}, nil
}
func (emptyTrades) DistinctValues(context.Context, string) ([]string, error) { return nil, nil }
func (emptyTrades) Count(context.Context) (int64, error)                     { return 0, nil }

type onePolitician struct{ p models.Politician }

func (o onePolitician) FindByName(_ context.Context, name string) (*models.Politician, error) {
	if name != o.p.Name {
		return nil, repositories.ErrNotFound
	}
	return &o.p, nil
}
func (onePolitician) Count(context.Context) (int64, error)                     { return 1, nil }
func (onePolitician) CountCommitteeAssignments(context.Context) (int64, error) { return 0, nil }

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	trades := emptyTrades{}
	politicians := onePolitician{p: models.Politician{Name: "A/B Tester", Party: "D", Chamber: "House"}}
	r, err := New(Deps{
		Trades:         services.NewTradeService(trades, nil, 20),
		Profiles:       services.NewProfileService(politicians, trades, nil, 20),
		Status:         services.NewStatusService(trades, politicians, nil),
		Registry:       prometheus.NewRegistry(),
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	require.NoError(t, err)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	r := newEngine(t)

	for _, path := range []string{"/", "/dashboard", "/politician/A%2FB%20Tester", "/health", "/status", "/api/v1/trades", "/api/v1/filters", "/api/v1/politicians/A%2FB%20Tester"} {
		rec := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), path)
	}

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/politician/Nobody", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardIsListingAlias(t *testing.T) {
	r := newEngine(t)

	root := serve(r, httptest.NewRequest(http.MethodGet, "/?party=D", nil))
	dash := serve(r, httptest.NewRequest(http.MethodGet, "/dashboard?party=D", nil))
	assert.Contains(t, root.Body.String(), `action="/"`)
	assert.Contains(t, dash.Body.String(), `action="/dashboard"`)
}

func TestMetricsExposed(t *testing.T) {
	r := newEngine(t)
	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/trades", nil))

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `congress_tracker_http_requests_total{method="GET",route="/api/v1/trades",status="200"} 1`)
}

func TestAPIPreflight(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/trades", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
