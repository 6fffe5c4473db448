package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/request"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/sheets"
)

// PortfolioService loads the portfolio ledger from the backing sheet and
// writes it back as a full-table overwrite. A sheet handle is acquired per
// operation; no state is retained between requests.
type PortfolioService struct {
	sheetOpener sheets.Opener
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(sheetOpener sheets.Opener) *PortfolioService {
	return &PortfolioService{
		sheetOpener: sheetOpener,
	}
}

// Load reads every row of the sheet into holdings.
//
// Numeric cells are parsed defensively: thousands separators are stripped
// and a malformed cell becomes 0 instead of failing the load. Blank
// classification cells get their per-field default. IDs are assigned
// 1-based in row order and are not stable across reloads.
func (s *PortfolioService) Load(ctx context.Context) ([]model.Holding, error) {
	sheet, err := s.sheetOpener.Open(ctx)
	if err != nil {
		return nil, err
	}

	records, err := sheet.ReadAllRecords()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToLoadHoldings, err)
	}

	holdings := make([]model.Holding, 0, len(records))
	for i, row := range records {
		avgPrice := parseAmount(row[model.ColAvgPrice])
		holdings = append(holdings, model.Holding{
			ID:           i + 1,
			Name:         row[model.ColName],
			Ticker:       row[model.ColTicker],
			Qty:          parseAmount(row[model.ColQty]),
			AvgPrice:     avgPrice,
			CurrentPrice: avgPrice, // refreshed by the caller via pricing
			Account:      valueOr(row, model.ColAccount, model.DefaultAccount),
			AssetClass:   valueOr(row, model.ColAssetClass, model.DefaultAssetClass),
			Risk:         valueOr(row, model.ColRisk, model.DefaultRisk),
			Role:         valueOr(row, model.ColRole, model.DefaultRole),
			Category:     model.CategoryGeneral,
		})
	}

	return holdings, nil
}

// Save replaces the entire sheet with the submitted holdings.
//
// Per holding it computes the valuation (currentPrice x qty, persisted as a
// truncated integer) and the ROI against invested value, formatted as a
// two-decimal percentage. The sheet is cleared and rewritten from A1, so the
// submitted set becomes the sheet's entire content; there is no merge or
// per-row patching. Returns the number of holdings written.
func (s *PortfolioService) Save(ctx context.Context, holdings []request.SyncHolding) (int, error) {
	sheet, err := s.sheetOpener.Open(ctx)
	if err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(holdings)+1)

	header := make([]interface{}, len(model.SheetHeader))
	for i, col := range model.SheetHeader {
		header[i] = col
	}
	rows = append(rows, header)

	for _, h := range holdings {
		currentValue := h.CurrentPrice * h.Qty
		investedValue := h.AvgPrice * h.Qty

		roi := "0.00%"
		if investedValue > 0 {
			roi = fmt.Sprintf("%.2f%%", (currentValue-investedValue)/investedValue*100)
		}

		rows = append(rows, []interface{}{
			h.Account,
			h.AssetClass,
			h.Risk,
			h.Role,
			h.Name,
			h.Ticker,
			h.Qty,
			h.AvgPrice,
			int64(currentValue),
			roi,
		})
	}

	if err := sheet.Clear(); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToSyncHoldings, err)
	}
	if err := sheet.WriteRange("A1", rows); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToSyncHoldings, err)
	}

	return len(holdings), nil
}

// parseAmount parses a numeric cell after stripping thousands separators.
// Malformed cells become 0 so a single bad cell cannot abort a load.
func parseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// valueOr returns the trimmed cell value, or fallback when the cell is
// blank or absent.
func valueOr(row map[string]string, key, fallback string) string {
	if value := strings.TrimSpace(row[key]); value != "" {
		return value
	}
	return fallback
}
