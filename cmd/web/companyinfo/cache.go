// Package companyinfo resolves a ticker to its company name and industry,
// backed by a JSON file cache.
package companyinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/httpclient"
)

// FallbackIndustry is used when a ticker cannot be looked up.
const FallbackIndustry = "General"

// Info is the cached company description of a ticker.
type Info struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// Fetcher looks up a ticker in an external source.
type Fetcher interface {
	Fetch(ctx context.Context, ticker string) (Info, error)
}

// Cache is safe for concurrent use.
type Cache struct {
	path    string
	fetcher Fetcher

	mu      sync.RWMutex
	entries map[string]Info
	dirty   bool
}

// NewCache creates an empty cache persisted at path. fetcher may be nil, in
// which case every miss resolves to the fallback info.
func NewCache(path string, fetcher Fetcher) *Cache {
	return &Cache{path: path, fetcher: fetcher, entries: map[string]Info{}}
}

// Load reads the cache file. A missing file is not an error; a corrupt one
// is reported and the cache starts empty.
func (c *Cache) Load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	entries := map[string]Info{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("load ticker cache %s: %w", c.path, err)
	}

	c.mu.Lock()
	c.entries = entries
	c.dirty = false
	c.mu.Unlock()
	return nil
}

// Save writes the cache file if it changed since the last Load/Save.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	data, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

// Len returns the number of cached tickers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Lookup returns the info for ticker. Misses go to the fetcher; when that
// fails the ticker itself becomes the name with FallbackIndustry. Either
// way the result is cached.
func (c *Cache) Lookup(ctx context.Context, ticker string) Info {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Info{Name: "Unknown", Industry: "Unknown"}
	}

	c.mu.RLock()
	info, ok := c.entries[ticker]
	c.mu.RUnlock()
	if ok {
		return info
	}

	info = Info{Name: ticker, Industry: FallbackIndustry}
	if c.fetcher != nil {
		fetched, err := c.fetcher.Fetch(ctx, ticker)
		switch {
		case err == nil:
			if fetched.Name != "" {
				info.Name = fetched.Name
			}
			if fetched.Industry != "" {
				info.Industry = fetched.Industry
			}
		case errors.Is(err, httpclient.ErrNotFound):
			logger.Log.Debugf("company info not found for %s", ticker)
		default:
			logger.WarnWithFields("company info lookup failed", logger.Fields{"ticker": ticker, "error": err.Error()})
		}
	}

	c.mu.Lock()
	c.entries[ticker] = info
	c.dirty = true
	c.mu.Unlock()
	return info
}

// HTTPFetcher reads company info from GET {base}/companies/{ticker}.
type HTTPFetcher struct {
	client *httpclient.BaseClient
}

func NewHTTPFetcher(client *httpclient.BaseClient) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ticker string) (Info, error) {
	var out Info
	if err := f.client.GetJSON(ctx, "/companies/"+ticker, nil, &out); err != nil {
		return Info{}, err
	}
	return out, nil
}
