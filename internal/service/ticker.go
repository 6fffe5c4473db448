package service

// tickerAliases maps user-facing symbols to the identifiers Yahoo Finance
// expects. Korean ETFs carry a numeric KRX code with a .KS suffix; crypto
// symbols need their USD pair.
var tickerAliases = map[string]string{
	"SOXL":         "SOXL",
	"BTC":          "BTC-USD",
	"AAPL":         "AAPL",
	"ASML":         "ASML",
	"GOOGL":        "GOOGL",
	"MU":           "MU",
	"NVDA":         "NVDA",
	"SLV":          "SLV",
	"ACE_KRX_GOLD": "411060.KS",
	"ACE_US_30Y":   "453850.KS",
}

// ResolveTicker maps a user ticker to its provider symbol. Unknown tickers
// are returned unchanged, so resolution never fails.
func ResolveTicker(userTicker string) string {
	if symbol, ok := tickerAliases[userTicker]; ok {
		return symbol
	}
	return userTicker
}
