package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
)

// AuditRepository provides data access methods for the audit_log table.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository with the provided database connection.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores one audit entry.
func (r *AuditRepository) Insert(entry model.AuditEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO audit_log (id, operation, status, detail, item_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.Operation,
		entry.Status,
		entry.Detail,
		entry.ItemCount,
		entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (r *AuditRepository) Recent(limit int) ([]model.AuditEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, operation, status, detail, item_count, created_at
		FROM audit_log
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit_log table: %w", err)
	}
	defer rows.Close()

	entries := make([]model.AuditEntry, 0, limit)
	for rows.Next() {
		var entry model.AuditEntry
		var createdAtStr string

		err := rows.Scan(
			&entry.ID,
			&entry.Operation,
			&entry.Status,
			&entry.Detail,
			&entry.ItemCount,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit_log results: %w", err)
		}

		entry.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse audit timestamp: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit_log table: %w", err)
	}

	return entries, nil
}

// DeleteOlderThan removes entries created before the cutoff and returns how
// many were deleted.
func (r *AuditRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`
		DELETE FROM audit_log WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted audit entries: %w", err)
	}
	return deleted, nil
}
