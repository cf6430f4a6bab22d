package dto

import "congress-tracker/cmd/web/query"

// TradeListResponse is the JSON form of the listing page.
type TradeListResponse struct {
	Filter query.FilterState `json:"filter"`
	Trades PageResult[Trade] `json:"trades"`
	Links  query.Links       `json:"links"`
}

// ProfileResponse is the JSON form of the profile page.
type ProfileResponse struct {
	Profile Profile     `json:"profile"`
	Links   query.Links `json:"links"`
}

// ErrorResponse is returned by JSON endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
