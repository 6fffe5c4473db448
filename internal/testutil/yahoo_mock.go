package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// Responses are configured per symbol, so one symbol can fail while the
// rest of a batch succeeds. Queries may arrive concurrently.
type MockYahooClient struct {
	// Responses maps a symbol to the response returned for it
	Responses map[string]yahoo.Response
	// Errors maps a symbol to the error returned for it
	Errors map[string]error

	mu         sync.Mutex
	queryCount int
}

// NewMockYahooClient creates an empty mock Yahoo client. Symbols without a
// configured response behave like unknown symbols (lookup error).
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{
		Responses: make(map[string]yahoo.Response),
		Errors:    make(map[string]error),
	}
}

// QueryDailySymbol returns the configured response or error for the symbol.
// Unconfigured symbols yield a lookup error, matching the real client's
// behavior for unknown symbols.
func (m *MockYahooClient) QueryDailySymbol(symbol string) (yahoo.Response, error) {
	m.mu.Lock()
	m.queryCount++
	m.mu.Unlock()
	if err, ok := m.Errors[symbol]; ok {
		return yahoo.Response{}, err
	}
	if resp, ok := m.Responses[symbol]; ok {
		return resp, nil
	}
	return yahoo.Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
}

// Queries reports how many symbol lookups the mock has served.
func (m *MockYahooClient) Queries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCount
}

// ParseChart delegates to the real implementation since it is pure logic.
func (m *MockYahooClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	return yahoo.NewFinanceClient().ParseChart(yahooResult)
}

// WithQuote configures a single-day quote for the symbol.
func (m *MockYahooClient) WithQuote(symbol string, closePrice float64) *MockYahooClient {
	m.Responses[symbol] = CreateQuoteResponse(symbol, closePrice)
	return m
}

// WithError configures the mock to fail lookups for the symbol.
func (m *MockYahooClient) WithError(symbol string, err error) *MockYahooClient {
	m.Errors[symbol] = err
	return m
}

// WithEmptyChart configures a response that contains a result but no usable
// quotes, simulating a symbol with an empty series.
func (m *MockYahooClient) WithEmptyChart(symbol string) *MockYahooClient {
	m.Responses[symbol] = yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{Symbol: symbol},
				},
			},
		},
	}
	return m
}

// CreateQuoteResponse creates a chart response holding one day's close for
// the symbol, dated yesterday UTC.
func CreateQuoteResponse(symbol string, closePrice float64) yahoo.Response {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)
	volume := int64(1000000)

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:   symbol,
						Currency: "USD",
					},
					Timestamp: []int64{yesterday.Unix()},
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   []*float64{&closePrice},
								High:   []*float64{&closePrice},
								Low:    []*float64{&closePrice},
								Close:  []*float64{&closePrice},
								Volume: []*int64{&volume},
							},
						},
					},
				},
			},
		},
	}
}
