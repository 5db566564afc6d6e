package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blogem/config-store/models"
)

// ConfigurationFacade is the entry point for callers of the configuration store.
// Identity and client context arrive with every call as a models.Caller.
type ConfigurationFacade interface {
	Categories(scope models.Scope) ([]string, error)
	Validate(value json.RawMessage, schema *models.ValidationSchema) models.ValidationResult
	List(ctx context.Context, caller models.Caller, category string) ([]models.ConfigurationEntry, error)
	Get(ctx context.Context, caller models.Caller, category, key string) (*models.ConfigurationEntry, error)
	Create(ctx context.Context, caller models.Caller, form *models.CreateEntryForm) (*models.ConfigurationEntry, error)
	Update(ctx context.Context, caller models.Caller, id string, update *models.EntryUpdate) (*models.ConfigurationEntry, error)
	Delete(ctx context.Context, caller models.Caller, id, reason string) error
	AuditTrail(ctx context.Context, caller models.Caller, entryID string, limit int) ([]models.AuditRecord, error)
	VerifyAuditTrail(ctx context.Context, caller models.Caller) (*models.ChainReport, error)
}

type configurationFacade struct {
	settings    SettingsService
	audit       AuditService
	recordViews bool
}

// NewConfigurationFacade creates the facade; recordViews adds a VIEW audit record to every Get
func NewConfigurationFacade(settings SettingsService, audit AuditService, recordViews bool) ConfigurationFacade {
	return &configurationFacade{
		settings:    settings,
		audit:       audit,
		recordViews: recordViews,
	}
}

// Categories lists the registered categories of a scope
func (f *configurationFacade) Categories(scope models.Scope) ([]string, error) {
	if !scope.Valid() {
		return nil, validationFailed([]string{fmt.Sprintf("unknown scope %q", scope)})
	}
	return models.CategoriesFor(scope), nil
}

// Validate checks a value against a schema without storing anything
func (f *configurationFacade) Validate(value json.RawMessage, schema *models.ValidationSchema) models.ValidationResult {
	return models.ValidateValue(value, schema)
}

func (f *configurationFacade) List(ctx context.Context, caller models.Caller, category string) ([]models.ConfigurationEntry, error) {
	return f.settings.List(ctx, caller.WithClientDefaults(), category)
}

func (f *configurationFacade) Get(ctx context.Context, caller models.Caller, category, key string) (*models.ConfigurationEntry, error) {
	caller = caller.WithClientDefaults()

	entry, err := f.settings.Get(ctx, caller, category, key)
	if err != nil {
		return nil, err
	}

	if f.recordViews {
		f.audit.Record(ctx, caller, models.AuditEvent{
			EntryID: entry.ID,
			Action:  models.AuditActionView,
		})
	}

	return entry, nil
}

func (f *configurationFacade) Create(ctx context.Context, caller models.Caller, form *models.CreateEntryForm) (*models.ConfigurationEntry, error) {
	return f.settings.Create(ctx, caller.WithClientDefaults(), form)
}

func (f *configurationFacade) Update(ctx context.Context, caller models.Caller, id string, update *models.EntryUpdate) (*models.ConfigurationEntry, error) {
	return f.settings.Update(ctx, caller.WithClientDefaults(), id, update)
}

func (f *configurationFacade) Delete(ctx context.Context, caller models.Caller, id, reason string) error {
	return f.settings.SoftDelete(ctx, caller.WithClientDefaults(), id, reason)
}

// AuditTrail returns the caller's audit records newest first, optionally for one entry
func (f *configurationFacade) AuditTrail(ctx context.Context, caller models.Caller, entryID string, limit int) ([]models.AuditRecord, error) {
	return f.audit.Query(ctx, caller, entryID, limit)
}

// VerifyAuditTrail recomputes the caller's audit hash chain
func (f *configurationFacade) VerifyAuditTrail(ctx context.Context, caller models.Caller) (*models.ChainReport, error) {
	return f.audit.Verify(ctx, caller)
}
