package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/handlers"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/testutil"
)

// TestPricesHandler_Prices tests the POST /api/prices endpoint.
//
// WHY: This is the endpoint the frontend polls to refresh valuations.
// The contract that failed tickers are absent (not zero) must hold at the
// HTTP boundary, not just inside the service.
func TestPricesHandler_Prices(t *testing.T) {
	t.Run("returns priced tickers as a map", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mockYahoo := testutil.NewMockYahooClient().
			WithQuote("KRW=X", 1450.0).
			WithQuote("AAPL", 100.0)
		handler := handlers.NewPricesHandler(
			testutil.NewTestPricingService(t, mockYahoo),
			testutil.NewTestAuditService(t, db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/prices",
			map[string][]string{"tickers": {"AAPL"}})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]int64
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response["AAPL"] != 145000 {
			t.Errorf("Expected AAPL price 145000, got %v", response["AAPL"])
		}
	})

	t.Run("omits failed tickers from the response", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mockYahoo := testutil.NewMockYahooClient().
			WithQuote("KRW=X", 1450.0).
			WithQuote("AAPL", 100.0)
		// NVDA deliberately unconfigured: lookup fails
		handler := handlers.NewPricesHandler(
			testutil.NewTestPricingService(t, mockYahoo),
			testutil.NewTestAuditService(t, db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/prices",
			map[string][]string{"tickers": {"AAPL", "NVDA"}})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		var response map[string]int64
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if _, ok := response["NVDA"]; ok {
			t.Error("Expected NVDA to be absent from response")
		}
		if len(response) != 1 {
			t.Errorf("Expected 1 entry, got %d", len(response))
		}
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPricesHandler(
			testutil.NewTestPricingService(t, testutil.NewMockYahooClient()),
			testutil.NewTestAuditService(t, db),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/prices", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if response["status"] != "error" {
			t.Errorf("Expected status \"error\", got %q", response["status"])
		}
	})
}
