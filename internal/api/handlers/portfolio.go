package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/request"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/validation"
)

// PortfolioHandler handles sheet load/sync HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	auditService     *service.AuditService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, auditService *service.AuditService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		auditService:     auditService,
	}
}

// SyncResponse represents a successful sync outcome.
type SyncResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Load handles GET requests for the full portfolio ledger.
//
// Endpoint: GET /api/sheets/load
// Response: 200 OK with an ordered holding list; 500 with a
// status/message payload when the sheet is unreachable or unreadable.
func (h *PortfolioHandler) Load(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.portfolioService.Load(r.Context())
	if err != nil {
		message := storeErrorMessage(err)
		h.auditService.Record(model.AuditOpLoad, model.AuditStatusError, message, 0)
		errorResponse := map[string]string{
			"status":  "error",
			"message": message,
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	h.auditService.Record(model.AuditOpLoad, model.AuditStatusSuccess, "", len(holdings))
	respondJSON(w, http.StatusOK, holdings)
}

// Sync handles POST requests that replace the sheet with the submitted
// portfolio.
//
// Endpoint: POST /api/sheets/sync
// Body: JSON array of holdings (account, assetClass, risk, role, name,
// ticker, qty, avgPrice, currentPrice).
// Response: 200 OK {"status":"success","count":N}; 400 on a malformed or
// invalid body; 500 with status/message when the write fails.
func (h *PortfolioHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var holdings []request.SyncHolding
	if err := json.NewDecoder(r.Body).Decode(&holdings); err != nil {
		h.auditService.Record(model.AuditOpSync, model.AuditStatusError, apperrors.ErrInvalidRequestBody.Error(), 0)
		errorResponse := map[string]string{
			"status":  "error",
			"message": apperrors.ErrInvalidRequestBody.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	if err := validation.ValidateSyncHoldings(holdings); err != nil {
		h.auditService.Record(model.AuditOpSync, model.AuditStatusError, err.Error(), 0)
		errorResponse := map[string]string{
			"status":  "error",
			"message": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	count, err := h.portfolioService.Save(r.Context(), holdings)
	if err != nil {
		message := storeErrorMessage(err)
		h.auditService.Record(model.AuditOpSync, model.AuditStatusError, message, 0)
		errorResponse := map[string]string{
			"status":  "error",
			"message": message,
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	h.auditService.Record(model.AuditOpSync, model.AuditStatusSuccess, "", count)
	respondJSON(w, http.StatusOK, SyncResponse{
		Status: "success",
		Count:  count,
	})
}

// storeErrorMessage maps connection-level store errors to the stable
// message the frontend matches on; other errors pass through.
func storeErrorMessage(err error) string {
	if errors.Is(err, apperrors.ErrSheetNotConfigured) || errors.Is(err, apperrors.ErrSheetConnection) {
		return "Google Sheet connection failed"
	}
	return err.Error()
}
