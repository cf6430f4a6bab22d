package dto

// Trade is the display projection of a trade. Columns render in field
// order. All values are already formatted; empty Industry means the
// industry line is hidden and empty ExcessReturn means the field is omitted.
type Trade struct {
	PoliticianName string `json:"politician_name"`
	ProfileURL     string `json:"profile_url"`
	Party          string `json:"party"`
	State          string `json:"state"`
	Chamber        string `json:"chamber"`
	CompanyName    string `json:"company_name"`
	Ticker         string `json:"ticker"`
	Industry       string `json:"industry,omitempty"`
	Traded         string `json:"traded"`
	Filed          string `json:"filed"`
	Transaction    string `json:"transaction"`
	Size           string `json:"size"`
	Price          string `json:"price,omitempty"`
	ExcessReturn   string `json:"excess_return,omitempty"`
}
