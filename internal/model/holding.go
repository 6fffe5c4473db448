package model

// Column headers of the backing Google Sheet. The sheet is maintained in
// Korean by its owner, so the header strings are part of the external
// contract and must not be translated.
const (
	ColAccount    = "계좌"
	ColAssetClass = "자산군"
	ColRisk       = "위험등급"
	ColRole       = "역할"
	ColName       = "종목명"
	ColTicker     = "티커"
	ColQty        = "수량"
	ColAvgPrice   = "매수단가"
	ColValuation  = "평가금액"
	ColROI        = "수익률"
)

// Defaults substituted for blank classification cells on load.
const (
	DefaultAccount    = "공통"
	DefaultAssetClass = "기타"
	DefaultRisk       = "미분류"
	DefaultRole       = "미분류"

	// CategoryGeneral is a fixed sentinel assigned to every loaded holding.
	// It is not read from or written to the sheet.
	CategoryGeneral = "일반"
)

// SheetHeader is the fixed column order written as the first row on every sync.
var SheetHeader = []string{
	ColAccount,
	ColAssetClass,
	ColRisk,
	ColRole,
	ColName,
	ColTicker,
	ColQty,
	ColAvgPrice,
	ColValuation,
	ColROI,
}

// Holding represents one portfolio line item loaded from the sheet.
//
// ID is assigned by load order (1-based) and is not persisted back to the
// sheet, so it is not stable across a load/sync cycle. CurrentPrice is
// initialized to AvgPrice on load; callers are expected to refresh it via
// the pricing service before using it for valuation.
type Holding struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Ticker       string  `json:"ticker"`
	Qty          float64 `json:"qty"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Account      string  `json:"account"`
	AssetClass   string  `json:"assetClass"`
	Risk         string  `json:"risk"`
	Role         string  `json:"role"`
	Category     string  `json:"category"`
}
