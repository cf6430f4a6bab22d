package dto

// FilterOptions are the choices offered by the listing filter controls.
type FilterOptions struct {
	Parties      []string `json:"party_options"`
	States       []string `json:"state_options"`
	Industries   []string `json:"industry_options"`
	Committees   []string `json:"committee_options"`
	Transactions []string `json:"transaction_options"`
	Ranges       []string `json:"range_options"`
}
