package query

import (
	"net/url"
	"strconv"
)

// Link relations produced by BuildLinks.
const (
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// Link is a single pagination anchor.
type Link struct {
	Rel  string `json:"rel"`
	Page int    `json:"page"`
	Href string `json:"href"`
}

// Links is the navigation block of a paginated page. A nil entry is not
// rendered.
type Links struct {
	First *Link `json:"first,omitempty"`
	Prev  *Link `json:"prev,omitempty"`
	Next  *Link `json:"next,omitempty"`
	Last  *Link `json:"last,omitempty"`
}

// All returns the present links in first, prev, next, last order.
func (l Links) All() []Link {
	var out []Link
	for _, lk := range []*Link{l.First, l.Prev, l.Next, l.Last} {
		if lk != nil {
			out = append(out, *lk)
		}
	}
	return out
}

// Empty reports whether there is nothing to render.
func (l Links) Empty() bool {
	return l.First == nil && l.Prev == nil && l.Next == nil && l.Last == nil
}

// BuildLinks builds first/prev/next/last links for page out of totalPages.
// With a non-nil filter every href carries the full filter followed by the
// page; with nil (profile pages) only the page is carried. page is clamped
// into [1, totalPages] so no link can point outside the range.
func BuildLinks(base string, page, totalPages int, filter *FilterState) Links {
	if totalPages < 1 {
		totalPages = 1
	}
	page = ClampPage(page, totalPages)

	var params url.Values
	if filter != nil {
		params = filter.Encode()
	} else {
		params = url.Values{}
	}
	mk := func(rel string, p int) *Link {
		params.Set(KeyPage, strconv.Itoa(p))
		return &Link{Rel: rel, Page: p, Href: base + "?" + params.Encode()}
	}

	var links Links
	if page > 1 {
		links.First = mk(RelFirst, 1)
		links.Prev = mk(RelPrev, page-1)
	}
	if page < totalPages {
		links.Next = mk(RelNext, page+1)
		links.Last = mk(RelLast, totalPages)
	}
	return links
}

// ProfilePath returns the profile page path for a politician name. The
// name is escaped as a single path segment.
func ProfilePath(name string) string {
	return "/politician/" + url.PathEscape(name)
}
