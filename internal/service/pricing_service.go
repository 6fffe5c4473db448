package service

import (
	"context"
	"log"
	"math"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/yahoo"
)

// exchangeRateSymbol is the Yahoo symbol for the USD/KRW daily series.
const exchangeRateSymbol = "KRW=X"

// fetchConcurrency bounds how many symbols are queried at once.
const fetchConcurrency = 4

// PricingService resolves current prices for user tickers, normalized into
// whole KRW. It holds no state between requests.
type PricingService struct {
	yahooClient  yahoo.Client
	fallbackRate float64
}

// NewPricingService creates a new PricingService. fallbackRate is the
// USD/KRW rate used when the live rate cannot be fetched.
func NewPricingService(yahooClient yahoo.Client, fallbackRate float64) *PricingService {
	return &PricingService{
		yahooClient:  yahooClient,
		fallbackRate: fallbackRate,
	}
}

// ExchangeRate returns the most recent USD/KRW daily close. Any failure
// falls back to the configured default so a rate-source hiccup cannot fail
// a whole pricing batch; the fallback is deliberately not surfaced to the
// caller.
func (s *PricingService) ExchangeRate() float64 {
	resp, err := s.yahooClient.QueryDailySymbol(exchangeRateSymbol)
	if err != nil {
		log.Printf("exchange rate lookup failed, using fallback %.1f: %v", s.fallbackRate, err)
		return s.fallbackRate
	}

	chart, err := s.yahooClient.ParseChart(resp)
	if err != nil {
		log.Printf("exchange rate parse failed, using fallback %.1f: %v", s.fallbackRate, err)
		return s.fallbackRate
	}

	rate, ok := chart.LatestClose()
	if !ok {
		return s.fallbackRate
	}
	return rate
}

// FetchPrices returns a map of user ticker to current price in whole KRW.
// The exchange rate is resolved once and applied to every non-KRW listing.
// Each ticker is fetched independently; a ticker whose lookup fails is
// omitted from the result rather than reported, so callers must treat a
// missing key as unknown, never as zero.
func (s *PricingService) FetchPrices(ctx context.Context, tickers []string) map[string]int64 {
	rate := s.ExchangeRate()

	prices := make(map[string]int64, len(tickers))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, ticker := range tickers {
		g.Go(func() error {
			price, ok := s.fetchOne(ticker, rate)
			if !ok {
				return nil
			}
			mu.Lock()
			prices[ticker] = price
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors: failure isolation is per ticker.
	_ = g.Wait()

	return prices
}

// fetchOne prices a single ticker. KRX/KOSDAQ listings already quote in KRW;
// everything else is converted at the given USD/KRW rate. Both outcomes are
// rounded to the nearest whole KRW.
func (s *PricingService) fetchOne(ticker string, rate float64) (int64, bool) {
	symbol := ResolveTicker(ticker)

	resp, err := s.yahooClient.QueryDailySymbol(symbol)
	if err != nil {
		log.Printf("price lookup skipped for %s (%s): %v", ticker, symbol, err)
		return 0, false
	}

	chart, err := s.yahooClient.ParseChart(resp)
	if err != nil {
		log.Printf("price parse skipped for %s (%s): %v", ticker, symbol, err)
		return 0, false
	}

	closePrice, ok := chart.LatestClose()
	if !ok {
		return 0, false
	}

	if isKRWListed(symbol) {
		return int64(math.Round(closePrice)), true
	}
	return int64(math.Round(closePrice * rate)), true
}

// isKRWListed reports whether a resolved symbol is a KRX (.KS) or
// KOSDAQ (.KQ) listing, meaning its close already quotes in KRW.
func isKRWListed(symbol string) bool {
	return strings.Contains(symbol, ".KS") || strings.Contains(symbol, ".KQ")
}
