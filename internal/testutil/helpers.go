package testutil

import (
	"database/sql"
	"testing"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/repository"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
)

// NewTestAuditService creates an AuditService backed by the given test database.
func NewTestAuditService(t *testing.T, db *sql.DB) *service.AuditService {
	t.Helper()
	return service.NewAuditService(repository.NewAuditRepository(db))
}

// NewTestPortfolioService creates a PortfolioService backed by a fake sheet.
func NewTestPortfolioService(t *testing.T, sheet *FakeSheet) *service.PortfolioService {
	t.Helper()
	return service.NewPortfolioService(&FakeSheetOpener{Sheet: sheet})
}

// NewTestPricingService creates a PricingService on the given mock with the
// production default fallback rate.
func NewTestPricingService(t *testing.T, yahooClient *MockYahooClient) *service.PricingService {
	t.Helper()
	return service.NewPricingService(yahooClient, 1450.0)
}
