// Package view holds the HTML templates of the listing and profile pages
// and the data they are executed with.
package view

import (
	"embed"
	"html/template"

	"congress-tracker/cmd/web/dto"
	"congress-tracker/cmd/web/format"
	"congress-tracker/cmd/web/query"
)

// Template names.
const (
	ListingTemplate = "listing"
	ProfileTemplate = "profile"
	ErrorTemplate   = "error"
)

// Dropdown panel ids of the listing filter form.
const (
	DropdownIndustry  = "industry"
	DropdownCommittee = "committee"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Pager is the navigation block under a trade table.
type Pager struct {
	Links      query.Links
	Page       int
	TotalPages int
}

// NewPager builds the pager of a page result. filter is nil on profile pages.
func NewPager[T any](base string, res dto.PageResult[T], filter *query.FilterState) Pager {
	return Pager{
		Links:      query.BuildLinks(base, res.Page, res.TotalPages, filter),
		Page:       res.Page,
		TotalPages: res.TotalPages,
	}
}

// ListingPage is the data of the listing template.
type ListingPage struct {
	Action    string
	Filter    query.FilterState
	Options   dto.FilterOptions
	Trades    dto.PageResult[dto.Trade]
	Pager     Pager
	Dropdowns *Dropdowns
}

// NewListingPage assembles the listing data; base is the path the form
// submits to and pagination links point at.
func NewListingPage(base string, f query.FilterState, opts dto.FilterOptions, trades dto.PageResult[dto.Trade]) ListingPage {
	return ListingPage{
		Action:    base,
		Filter:    f,
		Options:   opts,
		Trades:    trades,
		Pager:     NewPager(base, trades, &f),
		Dropdowns: NewDropdowns(DropdownIndustry, DropdownCommittee),
	}
}

// ProfilePage is the data of the profile template.
type ProfilePage struct {
	Profile dto.Profile
	Pager   Pager
}

func NewProfilePage(p dto.Profile) ProfilePage {
	return ProfilePage{
		Profile: p,
		Pager:   NewPager(query.ProfilePath(p.Name), p.Trades, nil),
	}
}

// ErrorPage is the data of the error template.
type ErrorPage struct {
	Status  int
	Message string
}

// FuncMap exposes the display rules to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"partyName": format.Party,
		"industryLabel": func(v string) string {
			label, _ := format.Industry(v)
			return label
		},
		"countLabel":     format.CountLabel,
		"committeeLines": format.Committees,
		"profilePath":    query.ProfilePath,
	}
}

// New parses the embedded templates.
func New() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}
