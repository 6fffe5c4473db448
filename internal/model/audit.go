package model

import "time"

// Audit operation names.
const (
	AuditOpPrices = "prices"
	AuditOpLoad   = "sheets.load"
	AuditOpSync   = "sheets.sync"
)

// Audit entry statuses.
const (
	AuditStatusSuccess = "success"
	AuditStatusError   = "error"
)

// AuditEntry is one recorded API operation. Entries are operational
// telemetry only; portfolio state itself lives in the sheet.
type AuditEntry struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}
