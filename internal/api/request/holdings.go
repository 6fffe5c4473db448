package request

// SyncHolding is one line item of a POST /api/sheets/sync body. The caller
// submits the full portfolio; the sheet is rewritten from exactly this set.
// No load-assigned id is accepted here: row identity is positional.
type SyncHolding struct {
	Account      string  `json:"account"`
	AssetClass   string  `json:"assetClass"`
	Risk         string  `json:"risk"`
	Role         string  `json:"role"`
	Name         string  `json:"name"`
	Ticker       string  `json:"ticker"`
	Qty          float64 `json:"qty"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
}
