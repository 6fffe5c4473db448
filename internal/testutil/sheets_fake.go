package testutil

import (
	"context"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/sheets"
)

// FakeSheet is an in-memory sheets.Store. It records what a save writes so
// tests can assert on the exact table that would reach the spreadsheet.
type FakeSheet struct {
	// Records is what ReadAllRecords returns
	Records []map[string]string
	// ReadErr, ClearErr and WriteErr force the corresponding operation to fail
	ReadErr  error
	ClearErr error
	WriteErr error

	// Cleared is set once Clear succeeds
	Cleared bool
	// WrittenOrigin and WrittenRows capture the last successful WriteRange call
	WrittenOrigin string
	WrittenRows   [][]interface{}
}

// ReadAllRecords returns the configured records or ReadErr.
func (f *FakeSheet) ReadAllRecords() ([]map[string]string, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.Records, nil
}

// Clear marks the sheet cleared or returns ClearErr.
func (f *FakeSheet) Clear() error {
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Cleared = true
	return nil
}

// WriteRange captures the written table or returns WriteErr.
func (f *FakeSheet) WriteRange(origin string, rows [][]interface{}) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.WrittenOrigin = origin
	f.WrittenRows = rows
	return nil
}

// FakeSheetOpener is a sheets.Opener handing out a fixed FakeSheet, or
// failing with OpenErr to simulate a connection failure.
type FakeSheetOpener struct {
	Sheet   *FakeSheet
	OpenErr error
}

// Open returns the fake sheet or the configured error.
func (o *FakeSheetOpener) Open(_ context.Context) (sheets.Store, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	return o.Sheet, nil
}
