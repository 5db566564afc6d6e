package services

import (
	"context"
	"log/slog"

	"github.com/blogem/config-store/metrics"
	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/repositories"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditFailure describes an audit record that could not be persisted
type AuditFailure struct {
	Record models.AuditRecord
	Err    error
}

// AuditService interface defines the audit logger.
// Record never reports an error to its caller; failures go to the log, metrics and Failures().
type AuditService interface {
	Record(ctx context.Context, caller models.Caller, event models.AuditEvent) (*models.AuditRecord, bool)
	Query(ctx context.Context, caller models.Caller, entryID string, limit int) ([]models.AuditRecord, error)
	Verify(ctx context.Context, caller models.Caller) (*models.ChainReport, error)
	Failures() <-chan AuditFailure
}

type auditService struct {
	auditRepo repositories.AuditRepository
	metrics   *metrics.Metrics
	logger    *slog.Logger
	failures  chan AuditFailure
}

// NewAuditService creates a new audit service; failureBuffer sizes the failure channel
func NewAuditService(auditRepo repositories.AuditRepository, m *metrics.Metrics, logger *slog.Logger, failureBuffer int) AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	if failureBuffer < 0 {
		failureBuffer = 0
	}
	return &auditService{
		auditRepo: auditRepo,
		metrics:   m,
		logger:    logger,
		failures:  make(chan AuditFailure, failureBuffer),
	}
}

// Record appends an audit record on a context detached from the caller's cancellation
func (s *auditService) Record(ctx context.Context, caller models.Caller, event models.AuditEvent) (*models.AuditRecord, bool) {
	caller = caller.WithClientDefaults()

	record := &models.AuditRecord{
		ID:          newID(),
		Scope:       caller.Scope,
		TenantID:    caller.TenantID,
		EntryID:     event.EntryID,
		Action:      event.Action,
		Actor:       caller.Actor,
		BeforeValue: event.Before,
		AfterValue:  event.After,
		Reason:      event.Reason,
		ClientIP:    caller.ClientIP,
		ClientAgent: caller.ClientAgent,
		CreatedAt:   timeNow(),
	}

	if err := s.auditRepo.Append(context.WithoutCancel(ctx), record); err != nil {
		s.logger.Error("audit write failed",
			slog.String("scope", string(record.Scope)),
			slog.String("tenant_id", record.TenantID),
			slog.String("entry_id", record.EntryID),
			slog.String("action", string(record.Action)),
			slog.String("audit_id", record.ID),
			slog.Any("error", err),
		)
		s.metrics.AuditWriteFailed(string(record.Scope))

		select {
		case s.failures <- AuditFailure{Record: *record, Err: err}:
		default:
			// channel full
		}
		return record, false
	}

	return record, true
}

// Query returns the caller's audit records newest first
func (s *auditService) Query(ctx context.Context, caller models.Caller, entryID string, limit int) ([]models.AuditRecord, error) {
	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	records, err := s.auditRepo.Query(ctx, repositories.AuditQuery{
		Scope:    caller.Scope,
		TenantID: caller.TenantID,
		EntryID:  entryID,
		Limit:    limit,
	})
	if err != nil {
		return nil, mapRepoError("query audit records", err)
	}

	return records, nil
}

// Verify walks the caller's audit chain and reports the first broken link
func (s *auditService) Verify(ctx context.Context, caller models.Caller) (*models.ChainReport, error) {
	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	records, err := s.auditRepo.Chain(ctx, caller.Scope, caller.TenantID)
	if err != nil {
		return nil, mapRepoError("read audit chain", err)
	}

	report := &models.ChainReport{
		Scope:    caller.Scope,
		TenantID: caller.TenantID,
		Valid:    true,
	}

	prevHash := ""
	for i := range records {
		record := &records[i]
		report.Records++

		if record.PrevHash != prevHash || record.Hash != record.ComputeHash() {
			report.Valid = false
			report.BrokenAt = record.ID
			s.logger.Warn("audit chain broken",
				slog.String("scope", string(caller.Scope)),
				slog.String("tenant_id", caller.TenantID),
				slog.String("audit_id", record.ID),
				slog.Int64("seq", record.Seq),
			)
			break
		}
		prevHash = record.Hash
	}

	return report, nil
}

// Failures exposes dropped audit records to an operator-facing consumer
func (s *auditService) Failures() <-chan AuditFailure {
	return s.failures
}
