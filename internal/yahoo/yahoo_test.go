package yahoo_test

import (
	"testing"
	"time"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/yahoo"
)

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func chartResponse(timestamps []int64, closes []*float64) yahoo.Response {
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta:      yahoo.Meta{Symbol: "TEST", Currency: "USD"},
					Timestamp: timestamps,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   closes,
								High:   closes,
								Low:    closes,
								Close:  closes,
								Volume: make([]*int64, len(closes)),
							},
						},
					},
				},
			},
		},
	}
}

// TestFinanceClient_ParseChart tests conversion of raw API responses.
//
// WHY: Yahoo pads quote arrays with nulls on non-trading days; the parser
// must drop those while keeping order, and must reject structurally broken
// responses instead of panicking on them.
func TestFinanceClient_ParseChart(t *testing.T) {
	client := yahoo.NewFinanceClient()

	t.Run("parses a well-formed chart", func(t *testing.T) {
		ts := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		resp := chartResponse(
			[]int64{ts.Unix(), ts.AddDate(0, 0, 1).Unix()},
			[]*float64{floatPtr(100.5), floatPtr(101.25)},
		)

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}

		if chart.Symbol != "TEST" {
			t.Errorf("Expected symbol TEST, got %q", chart.Symbol)
		}
		if len(chart.Indicators) != 2 {
			t.Fatalf("Expected 2 indicators, got %d", len(chart.Indicators))
		}
		if chart.Indicators[0].PriceClose != 100.5 {
			t.Errorf("Expected first close 100.5, got %v", chart.Indicators[0].PriceClose)
		}
	})

	t.Run("drops null closes and keeps order", func(t *testing.T) {
		ts := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		resp := chartResponse(
			[]int64{ts.Unix(), ts.AddDate(0, 0, 1).Unix(), ts.AddDate(0, 0, 2).Unix()},
			[]*float64{floatPtr(100), nil, floatPtr(102)},
		)

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}

		if len(chart.Indicators) != 2 {
			t.Fatalf("Expected 2 indicators after dropping null, got %d", len(chart.Indicators))
		}
		if close, ok := chart.LatestClose(); !ok || close != 102 {
			t.Errorf("Expected latest close 102, got %v (ok=%v)", close, ok)
		}
	})

	t.Run("rejects malformed responses", func(t *testing.T) {
		tests := []struct {
			name string
			resp yahoo.Response
		}{
			{name: "no results", resp: yahoo.Response{}},
			{name: "no timestamps", resp: chartResponse(nil, nil)},
			{
				name: "mismatched lengths",
				resp: chartResponse([]int64{1, 2}, []*float64{floatPtr(1)}),
			},
			{
				name: "all closes null",
				resp: chartResponse([]int64{1}, []*float64{nil}),
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := client.ParseChart(tt.resp); err == nil {
					t.Error("Expected error, got nil")
				}
			})
		}
	})
}

func TestPriceChart_LatestClose(t *testing.T) {
	t.Run("empty chart reports no close", func(t *testing.T) {
		if _, ok := (yahoo.PriceChart{}).LatestClose(); ok {
			t.Error("Expected ok=false for empty chart")
		}
	})

	t.Run("uses volume pointer slices safely", func(t *testing.T) {
		resp := chartResponse([]int64{1}, []*float64{floatPtr(10)})
		resp.Chart.Result[0].Indicators.Quote[0].Volume = []*int64{int64Ptr(42)}

		chart, err := yahoo.NewFinanceClient().ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}
		if chart.Indicators[0].Volume != 42 {
			t.Errorf("Expected volume 42, got %d", chart.Indicators[0].Volume)
		}
	})
}
