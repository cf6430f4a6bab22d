// Package query holds the query-string contract shared by the listing and
// profile pages: the filter codec, page parsing and pagination links.
package query

import (
	"net/url"
	"slices"
	"strconv"
	"time"
)

// Query-string keys understood by the listing page.
const (
	KeyName        = "name"
	KeyParty       = "party"
	KeyState       = "state"
	KeyIndustry    = "industry"
	KeyCommittee   = "committee"
	KeyTransaction = "transaction"
	KeyRange       = "range"
	KeyAfter       = "after"
	KeyPage        = "page"
)

// AfterLayout is the date layout of the "after" filter (HTML date input).
const AfterLayout = "2006-01-02"

// FilterState is the set of user-selected constraints on a trade listing.
// An empty field means "no constraint". Industries and Committees are OR
// within the field; fields are AND-combined with each other.
type FilterState struct {
	Name        string   `json:"name,omitempty"`
	Party       string   `json:"party,omitempty"`
	State       string   `json:"state,omitempty"`
	Industries  []string `json:"industry,omitempty"`
	Committees  []string `json:"committee,omitempty"`
	Transaction string   `json:"transaction,omitempty"`
	Range       string   `json:"range,omitempty"`
	After       string   `json:"after,omitempty"`
}

// Encode serializes the filter into query values. Empty single values are
// omitted and multi-valued fields become repeated keys in their original order.
func (f FilterState) Encode() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, KeyName, f.Name)
	setIfNotEmpty(q, KeyParty, f.Party)
	setIfNotEmpty(q, KeyState, f.State)
	for _, v := range f.Industries {
		if v != "" {
			q.Add(KeyIndustry, v)
		}
	}
	for _, v := range f.Committees {
		if v != "" {
			q.Add(KeyCommittee, v)
		}
	}
	setIfNotEmpty(q, KeyTransaction, f.Transaction)
	setIfNotEmpty(q, KeyRange, f.Range)
	setIfNotEmpty(q, KeyAfter, f.After)
	return q
}

// Decode reads a FilterState from query values. Unknown keys (including
// "page") are ignored.
func Decode(q url.Values) FilterState {
	return FilterState{
		Name:        q.Get(KeyName),
		Party:       q.Get(KeyParty),
		State:       q.Get(KeyState),
		Industries:  nonEmpty(q[KeyIndustry]),
		Committees:  nonEmpty(q[KeyCommittee]),
		Transaction: q.Get(KeyTransaction),
		Range:       q.Get(KeyRange),
		After:       q.Get(KeyAfter),
	}
}

// ParseRawQuery decodes a raw (already percent-encoded) query string.
// A malformed query yields whatever pairs could be parsed.
func ParseRawQuery(raw string) FilterState {
	q, _ := url.ParseQuery(raw)
	return Decode(q)
}

// IsZero reports whether no constraint is set.
func (f FilterState) IsZero() bool {
	return f.Equal(FilterState{})
}

// Equal compares two filters. Nil and empty slices are the same constraint.
func (f FilterState) Equal(o FilterState) bool {
	return f.Name == o.Name &&
		f.Party == o.Party &&
		f.State == o.State &&
		slices.Equal(f.Industries, o.Industries) &&
		slices.Equal(f.Committees, o.Committees) &&
		f.Transaction == o.Transaction &&
		f.Range == o.Range &&
		f.After == o.After
}

// HasIndustry reports whether v is among the selected industries.
func (f FilterState) HasIndustry(v string) bool {
	return slices.Contains(f.Industries, v)
}

// HasCommittee reports whether v is among the selected committees.
func (f FilterState) HasCommittee(v string) bool {
	return slices.Contains(f.Committees, v)
}

// AfterTime parses the "after" filter. ok is false when it is empty or
// not a valid date; the constraint is then dropped rather than rejected.
func (f FilterState) AfterTime() (t time.Time, ok bool) {
	if f.After == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(AfterLayout, f.After)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PageRequest selects one page of a result set. Page is 1-based.
type PageRequest struct {
	Page     int
	PageSize int
}

// ParsePage parses the "page" parameter. Missing, malformed or values
// below 1 all become 1.
func ParsePage(raw string) int {
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// TotalPages returns the number of pages for total items. It is never
// below 1 so that an empty result still has a well-defined page 1.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	n := int((total + int64(pageSize) - 1) / int64(pageSize))
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
