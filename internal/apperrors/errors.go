package apperrors

import "errors"

// Store errors represent failures against the backing Google Sheet.
// Connection-level failures are surfaced immediately and never retried.
var (
	// ErrSheetNotConfigured indicates the spreadsheet ID or service account
	// credentials are absent from the configuration.
	ErrSheetNotConfigured = errors.New("google sheet configuration missing")

	// ErrSheetConnection indicates the sheet handle could not be acquired
	// (bad credentials, auth failure, unreachable API).
	ErrSheetConnection = errors.New("google sheet connection failed")
)

// Business logic errors represent validation failures on incoming requests.
var (
	// ErrNegativeAmount indicates an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRequestBody indicates the request payload could not be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// Operation failure errors represent system-level failures when retrieving
// or persisting data.
var (
	// ErrFailedToLoadHoldings indicates the portfolio could not be read from the sheet.
	ErrFailedToLoadHoldings = errors.New("failed to load holdings")

	// ErrFailedToSyncHoldings indicates the portfolio could not be written to the sheet.
	ErrFailedToSyncHoldings = errors.New("failed to sync holdings")

	// ErrFailedToRetrieveLogs indicates audit log entries could not be read.
	ErrFailedToRetrieveLogs = errors.New("failed to retrieve audit logs")
)
