package dto

// Status reports how much data the service currently sees.
type Status struct {
	Status     string      `json:"status"`
	DataLoaded DataCounter `json:"data_loaded"`
}

type DataCounter struct {
	Trades               int64 `json:"trades"`
	Politicians          int64 `json:"politicians"`
	CommitteeAssignments int64 `json:"committee_assignments"`
	CachedTickers        int   `json:"cached_tickers"`
}
