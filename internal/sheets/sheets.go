// Package sheets wraps the Google Sheets API behind the minimal surface the
// portfolio service needs: read every row keyed by header, clear the sheet,
// and write a full table at an origin cell.
package sheets

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
)

// readRange covers every populated cell of the first sheet.
const readRange = "A1:Z"

// Store is one acquired sheet handle. All state lives in the external
// spreadsheet; a handle is acquired per operation and never cached.
type Store interface {
	ReadAllRecords() ([]map[string]string, error)
	Clear() error
	WriteRange(origin string, rows [][]interface{}) error
}

// Opener acquires a Store. Production uses GoogleSheets; tests use a fake.
type Opener interface {
	Open(ctx context.Context) (Store, error)
}

// GoogleSheets opens handles to a single spreadsheet using service account
// credentials. A zero-value configuration is valid: Open then reports
// apperrors.ErrSheetNotConfigured, degrading store operations to a
// connection failure instead of crashing the process.
type GoogleSheets struct {
	credentialsJSON []byte
	spreadsheetID   string
}

// NewGoogleSheets creates an opener for the given spreadsheet.
func NewGoogleSheets(credentialsJSON []byte, spreadsheetID string) *GoogleSheets {
	return &GoogleSheets{
		credentialsJSON: credentialsJSON,
		spreadsheetID:   spreadsheetID,
	}
}

// Open acquires a handle to the configured spreadsheet.
func (g *GoogleSheets) Open(ctx context.Context) (Store, error) {
	if len(g.credentialsJSON) == 0 || g.spreadsheetID == "" {
		return nil, apperrors.ErrSheetNotConfigured
	}

	jwtConfig, err := google.JWTConfigFromJSON(g.credentialsJSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSheetConnection, err)
	}

	service, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSheetConnection, err)
	}

	return &sheetHandle{
		service:       service,
		spreadsheetID: g.spreadsheetID,
	}, nil
}

// sheetHandle is a Store backed by the Sheets values API.
type sheetHandle struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

// ReadAllRecords returns every data row keyed by the header row.
// Cells are returned as formatted strings, so numbers keep whatever
// thousands separators the sheet displays. Rows shorter than the header
// yield empty strings for the missing columns.
func (h *sheetHandle) ReadAllRecords() ([]map[string]string, error) {
	resp, err := h.service.Spreadsheets.Values.Get(h.spreadsheetID, readRange).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}

	if len(resp.Values) == 0 {
		return []map[string]string{}, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		headers[i] = cellString(cell)
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = cellString(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// Clear removes every value from the sheet.
func (h *sheetHandle) Clear() error {
	_, err := h.service.Spreadsheets.Values.Clear(h.spreadsheetID, readRange, &sheetsapi.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}
	return nil
}

// WriteRange writes rows starting at the given origin cell.
func (h *sheetHandle) WriteRange(origin string, rows [][]interface{}) error {
	valueRange := &sheetsapi.ValueRange{Values: rows}
	_, err := h.service.Spreadsheets.Values.
		Update(h.spreadsheetID, origin, valueRange).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet values: %w", err)
	}
	return nil
}

// cellString renders one API cell value as a string.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
