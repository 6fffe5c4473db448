package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/apperrors"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/repository"
)

// AuditService records API operations for later inspection. Recording is
// best-effort: a failed insert is logged and never fails the request that
// triggered it.
type AuditService struct {
	auditRepo *repository.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

// Record stores one operation outcome and returns the entry id.
func (s *AuditService) Record(operation, status, detail string, itemCount int) string {
	entry := model.AuditEntry{
		ID:        uuid.NewString(),
		Operation: operation,
		Status:    status,
		Detail:    detail,
		ItemCount: itemCount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.Insert(entry); err != nil {
		log.Printf("audit record dropped (%s %s): %v", operation, status, err)
	}
	return entry.ID
}

// Recent returns the newest audit entries, most recent first.
func (s *AuditService) Recent(limit int) ([]model.AuditEntry, error) {
	entries, err := s.auditRepo.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveLogs, err)
	}
	return entries, nil
}

// Purge deletes entries older than the retention window and returns how
// many were removed.
func (s *AuditService) Purge(retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	return s.auditRepo.DeleteOlderThan(cutoff)
}
