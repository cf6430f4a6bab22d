package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"congress-tracker/cmd/web/companyinfo"
	"congress-tracker/cmd/web/dto"
	"congress-tracker/cmd/web/query"
	"congress-tracker/cmd/web/services"
	"congress-tracker/cmd/web/view"
	"congress-tracker/models"
	"congress-tracker/repositories"
)

type memTrades struct {
	items   []models.Trade
	lastOpt repositories.ListTradesOptions
}

func (m *memTrades) List(_ context.Context, opt repositories.ListTradesOptions) (repositories.ListResult, error) {
	m.lastOpt = opt
	var matched []models.Trade
	for _, t := range m.items {
		if opt.Party != "" && t.Party != opt.Party {
			continue
		}
		if opt.BioguideID != "" && t.BioguideID != opt.BioguideID {
			continue
		}
		matched = append(matched, t)
	}

	total := int64(len(matched))
	pages := query.TotalPages(total, opt.PageSize)
	page := query.ClampPage(opt.Page, pages)
	start := (page - 1) * opt.PageSize
	end := min(start+opt.PageSize, len(matched))
	var items []models.Trade
	if start < end {
		items = matched[start:end]
	}
	return repositories.ListResult{Items: items, Total: total, Page: page, PageSize: opt.PageSize}, nil
}

func (m *memTrades) DistinctValues(_ context.Context, field string) ([]string, error) {
	switch field {
	case "party":
		return []string{"D", "R"}, nil
	case "industry":
		return []string{"Energy", "Technology"}, nil
	}
	return nil, nil
}

func (m *memTrades) Count(context.Context) (int64, error) { return int64(len(m.items)), nil }

type memPoliticians struct{ byName map[string]models.Politician }

func (m *memPoliticians) FindByName(_ context.Context, name string) (*models.Politician, error) {
	for k, p := range m.byName {
		if strings.EqualFold(k, name) {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memPoliticians) Count(context.Context) (int64, error) { return int64(len(m.byName)), nil }

func (m *memPoliticians) CountCommitteeAssignments(context.Context) (int64, error) {
	var n int64
	for _, p := range m.byName {
		n += int64(len(p.Committees))
	}
	return n, nil
}

type staticCompanies struct{}

func (staticCompanies) Lookup(_ context.Context, ticker string) companyinfo.Info {
	return companyinfo.Info{Name: ticker, Industry: companyinfo.FallbackIndustry}
}

func (staticCompanies) Len() int { return 2 }

type fixture struct {
	trades *memTrades
	engine *gin.Engine
}

func newFixture(t *testing.T, ping PingFunc) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	trades := &memTrades{}
	for i := 0; i < 45; i++ {
		party := "D"
		if i%3 == 0 {
			party = "R"
		}
		trades.items = append(trades.items, models.Trade{
			BioguideID:     "P000197",
			PoliticianName: "Nancy Pelosi",
			Party:          party,
			State:          "CA",
			Chamber:        "House",
			Ticker:         "NVDA",
			Traded:         time.Date(2024, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
			Transaction:    "Purchase",
			Amount:         200_000,
		})
	}
	politicians := &memPoliticians{byName: map[string]models.Politician{
		"Nancy Pelosi": {BioguideID: "P000197", Name: "Nancy Pelosi", Party: "D", Chamber: "House", State: "CA", Committees: []string{"Intelligence"}},
		"A/B Tester":   {Name: "A/B Tester", Party: "I", Chamber: "Senate"},
	}}

	tradeSvc := services.NewTradeService(trades, staticCompanies{}, 20)
	profileSvc := services.NewProfileService(politicians, trades, staticCompanies{}, 20)
	statusSvc := services.NewStatusService(trades, politicians, staticCompanies{})

	tmpl, err := view.New()
	require.NoError(t, err)

	r := gin.New()
	r.UseRawPath = true
	r.SetHTMLTemplate(tmpl)
	r.GET("/", ListingPageHandler(tradeSvc))
	r.GET("/politician/:name", ProfilePageHandler(profileSvc))
	r.GET("/api/v1/trades", ListTradesHandler(tradeSvc))
	r.GET("/api/v1/filters", FilterOptionsHandler(tradeSvc))
	r.GET("/api/v1/politicians/:name", GetPoliticianHandler(profileSvc))
	r.GET("/health", HealthHandler(ping))
	r.GET("/status", StatusHandler(statusSvc))

	return &fixture{trades: trades, engine: r}
}

func (f *fixture) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func relHrefs(t *testing.T, body string) map[string]string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	out := map[string]string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var rel, href string
			for _, a := range n.Attr {
				switch a.Key {
				case "rel":
					rel = a.Val
				case "href":
					href = a.Val
				}
			}
			if rel != "" {
				out[rel] = href
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func TestListingPageKeepsFiltersAcrossPages(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/?party=D&industry=Energy&industry=Technology&page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "D", f.trades.lastOpt.Party)
	assert.Equal(t, []string{"Energy", "Technology"}, f.trades.lastOpt.Industries)

	want := query.FilterState{Party: "D", Industries: []string{"Energy", "Technology"}}
	links := relHrefs(t, rec.Body.String())
	// 30 matching trades: page 2 is the last page
	require.Contains(t, links, query.RelFirst)
	require.Contains(t, links, query.RelPrev)
	assert.NotContains(t, links, query.RelNext)
	assert.NotContains(t, links, query.RelLast)
	for rel, href := range links {
		u, err := url.Parse(href)
		require.NoError(t, err)
		assert.Equal(t, "/", u.Path)
		assert.True(t, want.Equal(query.Decode(u.Query())), "%s link lost filters: %s", rel, href)
	}
}

func TestListingPageInvalidPage(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/?page=abc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.trades.lastOpt.Page)
	links := relHrefs(t, rec.Body.String())
	assert.NotContains(t, links, query.RelPrev)
	assert.Contains(t, links, query.RelNext)

	rec = f.get("/?page=99")
	require.Equal(t, http.StatusOK, rec.Code)
	links = relHrefs(t, rec.Body.String())
	assert.Contains(t, links, query.RelPrev)
	assert.NotContains(t, links, query.RelNext)
	assert.Contains(t, rec.Body.String(), "Page 3 of 3")
}

func TestProfilePage(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/politician/nancy%20pelosi?page=2&party=R")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "P000197", f.trades.lastOpt.BioguideID)
	assert.Empty(t, f.trades.lastOpt.Party)
	assert.Contains(t, rec.Body.String(), "Intelligence")

	links := relHrefs(t, rec.Body.String())
	require.Len(t, links, 4)
	for _, href := range links {
		u, err := url.Parse(href)
		require.NoError(t, err)
		assert.Equal(t, "/politician/Nancy%20Pelosi", u.EscapedPath())
		assert.Equal(t, []string{query.KeyPage}, keys(u.Query()))
	}
}

func TestProfilePageEscapedSlash(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/politician/A%2FB%20Tester")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A/B Tester")
	assert.Contains(t, rec.Body.String(), "No committee data found")
}

func TestProfilePageNotFound(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/politician/Nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "politician not found")
}

func TestListTradesJSON(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/api/v1/trades?party=R&page=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TradeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(15), resp.Trades.Total)
	assert.Equal(t, 1, resp.Trades.TotalPages)
	assert.Len(t, resp.Trades.Items, 15)
	assert.Equal(t, "R", resp.Filter.Party)
	assert.True(t, resp.Links.Empty())

	first := resp.Trades.Items[0]
	assert.Equal(t, "Republican", first.Party)
	assert.Equal(t, "NVDA", first.CompanyName)
	assert.Equal(t, "/politician/Nancy%20Pelosi", first.ProfileURL)
	assert.Equal(t, "100K–250K", first.Size)
}

func TestListTradesJSONLinks(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/api/v1/trades?page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TradeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Links.Next)
	require.NotNil(t, resp.Links.Prev)
	assert.Equal(t, 3, resp.Links.Next.Page)
	assert.Equal(t, "/api/v1/trades?page=3", resp.Links.Next.Href)
}

func TestGetPoliticianJSON(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/api/v1/politicians/Nancy%20Pelosi")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Democrat", resp.Profile.Party)
	assert.Equal(t, []string{"Intelligence"}, resp.Profile.Committees)
	require.NotNil(t, resp.Links.Next)
	assert.Equal(t, "/api/v1/politicians/Nancy%20Pelosi?page=2", resp.Links.Next.Href)

	rec = f.get("/api/v1/politicians/Nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "not found", errResp.Error)
}

func TestFilterOptionsJSON(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/api/v1/filters")
	require.Equal(t, http.StatusOK, rec.Code)
	var opts dto.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, []string{"D", "R"}, opts.Parties)
	assert.NotEmpty(t, opts.Ranges)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })
	rec := f.get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	f = newFixture(t, func(context.Context) error { return errors.New("connection refused") })
	rec = f.get("/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestStatus(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.get("/status")
	require.Equal(t, http.StatusOK, rec.Code)
	var st dto.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "success", st.Status)
	assert.Equal(t, dto.DataCounter{Trades: 45, Politicians: 2, CommitteeAssignments: 1, CachedTickers: 2}, st.DataLoaded)
}

func keys(v url.Values) []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	return out
}
