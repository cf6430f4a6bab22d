package dto

// Profile is a politician page: metadata, committees and one page of trades.
// Committees is the stored list and may be empty; renderers substitute the
// placeholder line.
type Profile struct {
	Name       string            `json:"name"`
	Party      string            `json:"party"`
	Chamber    string            `json:"chamber"`
	State      string            `json:"state,omitempty"`
	Committees []string          `json:"committees"`
	Trades     PageResult[Trade] `json:"trades"`
}
