package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/handlers"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/testutil"
)

func newSystemHandler(t *testing.T) (*handlers.SystemHandler, *service.AuditService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	auditService := testutil.NewTestAuditService(t, db)
	return handlers.NewSystemHandler(service.NewSystemService(db), auditService), auditService
}

func TestSystemHandler_Root(t *testing.T) {
	handler, _ := newSystemHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "is Running!") {
		t.Errorf("Expected banner text, got %q", w.Body.String())
	}
}

func TestSystemHandler_Ping(t *testing.T) {
	handler, _ := newSystemHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status \"ok\", got %q", response["status"])
	}
}

// TestSystemHandler_Health tests the GET /api/system/health endpoint.
//
// WHY: Deployment health checks key off this endpoint; it must distinguish
// a healthy audit database from a broken one with the right status codes.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy when database responds", func(t *testing.T) {
		handler, _ := newSystemHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "healthy" || response.Database != "connected" {
			t.Errorf("Unexpected health response: %+v", response)
		}
		if response.Version == "" {
			t.Error("Expected version to be reported")
		}
	})

	t.Run("reports unhealthy when database is closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(
			service.NewSystemService(db),
			testutil.NewTestAuditService(t, db),
		)
		db.Close() // Force database error

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", w.Code)
		}
	})
}

// TestSystemHandler_Logs tests the GET /api/system/logs endpoint.
func TestSystemHandler_Logs(t *testing.T) {
	t.Run("returns recorded entries newest first", func(t *testing.T) {
		handler, auditService := newSystemHandler(t)

		auditService.Record(model.AuditOpPrices, model.AuditStatusSuccess, "", 3)
		auditService.Record(model.AuditOpLoad, model.AuditStatusError, "Google Sheet connection failed", 0)

		req := httptest.NewRequest(http.MethodGet, "/api/system/logs", nil)
		w := httptest.NewRecorder()

		handler.Logs(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.AuditEntry
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(response))
		}
	})

	t.Run("honors the limit parameter", func(t *testing.T) {
		handler, auditService := newSystemHandler(t)

		for i := 0; i < 5; i++ {
			auditService.Record(model.AuditOpPrices, model.AuditStatusSuccess, "", i)
		}

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/system/logs",
			map[string]string{"limit": "2"},
		)
		w := httptest.NewRecorder()

		handler.Logs(w, req)

		var response []model.AuditEntry
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(response))
		}
	})

	t.Run("returns 400 for an invalid limit", func(t *testing.T) {
		handler, _ := newSystemHandler(t)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/system/logs",
			map[string]string{"limit": "zero"},
		)
		w := httptest.NewRecorder()

		handler.Logs(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
