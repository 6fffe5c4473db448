package request

// PriceLookup is the body of POST /api/prices.
type PriceLookup struct {
	Tickers []string `json:"tickers"`
}
