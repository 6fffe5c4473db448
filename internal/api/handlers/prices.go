package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/request"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
)

// PricesHandler handles price lookup HTTP requests
type PricesHandler struct {
	pricingService *service.PricingService
	auditService   *service.AuditService
}

// NewPricesHandler creates a new PricesHandler
func NewPricesHandler(pricingService *service.PricingService, auditService *service.AuditService) *PricesHandler {
	return &PricesHandler{
		pricingService: pricingService,
		auditService:   auditService,
	}
}

// Prices handles POST requests for current prices.
//
// Endpoint: POST /api/prices
// Body: {"tickers": ["AAPL", "BTC", ...]}
// Response: 200 OK with a ticker -> whole-KRW price map. Tickers whose
// lookup failed are absent from the map, never zero.
func (h *PricesHandler) Prices(w http.ResponseWriter, r *http.Request) {
	var req request.PriceLookup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.auditService.Record(model.AuditOpPrices, model.AuditStatusError, apperrors.ErrInvalidRequestBody.Error(), 0)
		errorResponse := map[string]string{
			"status":  "error",
			"message": apperrors.ErrInvalidRequestBody.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	prices := h.pricingService.FetchPrices(r.Context(), req.Tickers)

	h.auditService.Record(
		model.AuditOpPrices,
		model.AuditStatusSuccess,
		fmt.Sprintf("%d of %d tickers priced", len(prices), len(req.Tickers)),
		len(prices),
	)
	respondJSON(w, http.StatusOK, prices)
}
