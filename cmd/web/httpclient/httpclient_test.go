package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"congress-tracker/cmd/web/trace"
)

func TestGetJSONPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(HeaderRequestID)
		gotSpanID = r.Header.Get(HeaderSpanID)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Apple Inc."}`))
	}))
	defer srv.Close()

	client := NewBaseClient(srv.URL, nil)
	ctx := trace.WithRequestID(context.Background(), "req-42")

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.GetJSON(ctx, "/companies/AAPL", map[string][]string{"fields": {"name"}}, &out))

	assert.Equal(t, "Apple Inc.", out.Name)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "1", gotSpanID)
	assert.Equal(t, "fields=name", gotQuery)
}

func TestGetJSONStatusHandling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewBaseClient(srv.URL, nil)
	var out map[string]any

	err := client.GetJSON(context.Background(), "/missing", nil, &out)
	assert.ErrorIs(t, err, ErrNotFound)

	err = client.GetJSON(context.Background(), "/broken", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	client := NewBaseClient("http://example.org/api", nil)
	_, err := client.NewRequest(context.Background(), http.MethodGet, "/x?y=1", nil, nil)
	assert.Error(t, err)

	req, err := client.NewRequest(context.Background(), http.MethodGet, "/companies/MSFT", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/api/companies/MSFT", req.URL.String())
}
