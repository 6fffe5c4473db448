package validation

import (
	"fmt"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api/request"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
)

// ValidateSyncHoldings checks a sync payload before it reaches the sheet.
// Quantities and purchase prices must be non-negative; classification and
// name fields are free text and accepted as-is (blanks get sheet defaults
// on the next load).
func ValidateSyncHoldings(holdings []request.SyncHolding) error {
	for i, h := range holdings {
		if h.Qty < 0 {
			return fmt.Errorf("holding %d (%s): qty: %w", i+1, h.Ticker, apperrors.ErrNegativeAmount)
		}
		if h.AvgPrice < 0 {
			return fmt.Errorf("holding %d (%s): avgPrice: %w", i+1, h.Ticker, apperrors.ErrNegativeAmount)
		}
	}
	return nil
}
