package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blogem/config-store/metrics"
	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/repositories"
)

const publishTimeout = 5 * time.Second

// ChangePublisher delivers change events after a committed mutation
type ChangePublisher interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
}

// SettingsService interface defines the settings store business logic.
// Every operation is scoped to the caller's scope and tenant.
type SettingsService interface {
	List(ctx context.Context, caller models.Caller, category string) ([]models.ConfigurationEntry, error)
	Get(ctx context.Context, caller models.Caller, category, key string) (*models.ConfigurationEntry, error)
	Create(ctx context.Context, caller models.Caller, form *models.CreateEntryForm) (*models.ConfigurationEntry, error)
	Update(ctx context.Context, caller models.Caller, id string, update *models.EntryUpdate) (*models.ConfigurationEntry, error)
	SoftDelete(ctx context.Context, caller models.Caller, id, reason string) error
}

// settingsService implements SettingsService interface
type settingsService struct {
	settingsRepo repositories.SettingsRepository
	audit        AuditService
	publisher    ChangePublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo repositories.SettingsRepository,
	audit AuditService,
	publisher ChangePublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsService{
		settingsRepo: settingsRepo,
		audit:        audit,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
	}
}

// List retrieves active entries of the caller's scope, optionally filtered by category
func (s *settingsService) List(ctx context.Context, caller models.Caller, category string) (entries []models.ConfigurationEntry, err error) {
	defer func() { s.metrics.Operation(string(caller.Scope), "list", err) }()

	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	category = strings.TrimSpace(category)
	if category != "" && !models.IsValidCategory(caller.Scope, category) {
		return nil, fmt.Errorf("%w: %q for %s scope", ErrCategoryInvalid, category, caller.Scope)
	}

	entries, err = s.settingsRepo.List(ctx, caller.Scope, caller.TenantID, category)
	if err != nil {
		return nil, mapRepoError("list settings", err)
	}

	return entries, nil
}

// Get retrieves a single active entry
func (s *settingsService) Get(ctx context.Context, caller models.Caller, category, key string) (entry *models.ConfigurationEntry, err error) {
	defer func() { s.metrics.Operation(string(caller.Scope), "get", err) }()

	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	// Keys are stored trimmed
	category, key = strings.TrimSpace(category), strings.TrimSpace(key)

	entry, err = s.settingsRepo.GetByKey(ctx, caller.Scope, caller.TenantID, category, key)
	if err != nil {
		return nil, mapRepoError("get setting", err)
	}

	if !caller.Owns(entry) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, category, key)
	}

	return entry, nil
}

// Create validates and stores a new entry, then records a CREATE audit record
func (s *settingsService) Create(ctx context.Context, caller models.Caller, form *models.CreateEntryForm) (entry *models.ConfigurationEntry, err error) {
	defer func() { s.metrics.Operation(string(caller.Scope), "create", err) }()

	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	// Validate form
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	category := strings.TrimSpace(form.Category)
	key := strings.TrimSpace(form.Key)

	if !models.IsValidCategory(caller.Scope, category) {
		return nil, fmt.Errorf("%w: %q for %s scope", ErrCategoryInvalid, category, caller.Scope)
	}

	value, err := normalizeValue(form.Value)
	if err != nil {
		return nil, err
	}

	if result := models.ValidateValue(value, form.Schema); !result.Valid {
		return nil, validationFailed(result.Errors)
	}

	// Check for an active entry at the same key; the unique index is the final arbiter
	existing, err := s.settingsRepo.GetByKey(ctx, caller.Scope, caller.TenantID, category, key)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateKey, category, key)
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, mapRepoError("check existing setting", err)
	}

	now := timeNow()
	entry = &models.ConfigurationEntry{
		ID:             newID(),
		Scope:          caller.Scope,
		TenantID:       caller.TenantID,
		Category:       category,
		Key:            key,
		Value:          value,
		Schema:         form.Schema,
		Description:    strings.TrimSpace(form.Description),
		Active:         true,
		LastModifiedBy: caller.Actor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.settingsRepo.Create(ctx, entry); err != nil {
		return nil, mapRepoError("create setting", err)
	}

	s.recordChange(ctx, caller, entry, models.AuditEvent{
		EntryID: entry.ID,
		Action:  models.AuditActionCreate,
		After:   entry.Value,
		Reason:  form.Reason,
	})

	return entry, nil
}

// Update merges a partial update into an owned active entry, then records an UPDATE audit record
func (s *settingsService) Update(ctx context.Context, caller models.Caller, id string, update *models.EntryUpdate) (entry *models.ConfigurationEntry, err error) {
	defer func() { s.metrics.Operation(string(caller.Scope), "update", err) }()

	if errs := caller.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if errs := update.Validate(); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	existing, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	revalidate := false

	if update.Value != nil {
		value, err := normalizeValue(update.Value)
		if err != nil {
			return nil, err
		}
		merged.Value = value
		revalidate = true
	}
	if update.Schema != nil {
		if existing.Schema != nil && !update.Schema.Type.Valid() {
			return nil, validationFailed([]string{"schema type is required to replace an existing schema"})
		}
		merged.Schema = update.Schema
		revalidate = true
	}
	if update.Description != nil {
		merged.Description = strings.TrimSpace(*update.Description)
	}

	if revalidate {
		if result := models.ValidateValue(merged.Value, merged.Schema); !result.Valid {
			return nil, validationFailed(result.Errors)
		}
	}

	merged.LastModifiedBy = caller.Actor
	merged.UpdatedAt = timeNow()

	if err := s.settingsRepo.Update(ctx, &merged); err != nil {
		return nil, mapRepoError("update setting", err)
	}

	s.recordChange(ctx, caller, &merged, models.AuditEvent{
		EntryID: merged.ID,
		Action:  models.AuditActionUpdate,
		Before:  existing.Value,
		After:   merged.Value,
		Reason:  update.Reason,
	})

	return &merged, nil
}

// SoftDelete tombstones an owned active entry, then records a DELETE audit record
func (s *settingsService) SoftDelete(ctx context.Context, caller models.Caller, id, reason string) (err error) {
	defer func() { s.metrics.Operation(string(caller.Scope), "delete", err) }()

	if errs := caller.Validate(); len(errs) > 0 {
		return validationFailed(errs)
	}

	entry, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return err
	}

	entry.Active = false
	entry.LastModifiedBy = caller.Actor
	entry.UpdatedAt = timeNow()

	if err := s.settingsRepo.SoftDelete(ctx, entry); err != nil {
		return mapRepoError("delete setting", err)
	}

	s.recordChange(ctx, caller, entry, models.AuditEvent{
		EntryID: entry.ID,
		Action:  models.AuditActionDelete,
		Before:  entry.Value,
		Reason:  reason,
	})

	return nil
}

// loadOwned loads an entry by ID and checks it is active and owned by the caller
func (s *settingsService) loadOwned(ctx context.Context, caller models.Caller, id string) (*models.ConfigurationEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationFailed([]string{"id is required"})
	}

	entry, err := s.settingsRepo.GetByID(ctx, caller.Scope, id)
	if err != nil {
		return nil, mapRepoError("load setting", err)
	}

	if !caller.Owns(entry) {
		return nil, fmt.Errorf("%w: entry %s", ErrForbidden, id)
	}

	if !entry.Active {
		return nil, fmt.Errorf("%w: entry %s is deleted", ErrNotFound, id)
	}

	return entry, nil
}

// recordChange runs the best-effort side effects of a committed mutation
func (s *settingsService) recordChange(ctx context.Context, caller models.Caller, entry *models.ConfigurationEntry, event models.AuditEvent) {
	record, _ := s.audit.Record(ctx, caller, event)

	if s.publisher == nil {
		return
	}

	change := models.ChangeEvent{
		AuditRecordID: record.ID,
		EntryID:       entry.ID,
		Scope:         entry.Scope,
		TenantID:      entry.TenantID,
		Category:      entry.Category,
		Key:           entry.Key,
		Action:        event.Action,
		Actor:         caller.Actor,
		BeforeValue:   event.Before,
		AfterValue:    event.After,
		OccurredAt:    record.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(publishCtx, change); err != nil {
		s.logger.Warn("change event not published",
			slog.String("entry_id", entry.ID),
			slog.String("action", string(event.Action)),
			slog.Any("error", err),
		)
		s.metrics.ChangeEventFailed()
	}
}

// normalizeValue canonicalizes a JSON value; an absent value is stored as null
func normalizeValue(raw json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null"), nil
	}
	value, err := models.CanonicalJSON(raw)
	if err != nil {
		return nil, validationFailed([]string{"value must be valid JSON"})
	}
	return value, nil
}
