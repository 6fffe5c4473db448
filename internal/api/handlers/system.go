package handlers

import (
	"net/http"
	"strconv"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
)

// defaultLogLimit caps GET /api/system/logs when no limit is given.
const defaultLogLimit = 50

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	auditService  *service.AuditService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, auditService *service.AuditService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		auditService:  auditService,
	}
}

// Root serves the plain-text banner at GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Portfolio Backend (Google Sheets Only) is Running!"))
}

// Ping handles the legacy health check at GET /health
func (h *SystemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and audit database connectivity.
// The sheet and market-data collaborators are deliberately not probed:
// their availability only matters per request.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Version:  h.systemService.CheckVersion(),
			Error:    err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Version:  h.systemService.CheckVersion(),
	}
	respondJSON(w, http.StatusOK, response)
}

// Logs handles GET requests for recent audit entries.
//
// Endpoint: GET /api/system/logs?limit=N
func (h *SystemHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			errorResponse := map[string]string{
				"error":  "invalid limit parameter",
				"detail": "limit must be a positive integer",
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		limit = parsed
	}

	entries, err := h.auditService.Recent(limit)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve audit logs",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
