package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blogem/config-store/models"
)

// SettingsRepository interface defines configuration entry database operations.
// Reads by key only ever see active entries; GetByID also returns tombstones.
type SettingsRepository interface {
	List(ctx context.Context, scope models.Scope, tenantID, category string) ([]models.ConfigurationEntry, error)
	GetByKey(ctx context.Context, scope models.Scope, tenantID, category, key string) (*models.ConfigurationEntry, error)
	GetByID(ctx context.Context, scope models.Scope, id string) (*models.ConfigurationEntry, error)
	Create(ctx context.Context, entry *models.ConfigurationEntry) error
	Update(ctx context.Context, entry *models.ConfigurationEntry) error
	SoftDelete(ctx context.Context, entry *models.ConfigurationEntry) error
}

// settingsRepository implements SettingsRepository over platform_settings and tenant_settings
type settingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// settingRow is the storage shape shared by both settings tables
type settingRow struct {
	ID             string         `db:"id"`
	TenantID       string         `db:"tenant_id"`
	Category       string         `db:"category"`
	Key            string         `db:"key"`
	Value          string         `db:"value"`
	Schema         sql.NullString `db:"schema"`
	Description    string         `db:"description"`
	Active         bool           `db:"active"`
	LastModifiedBy string         `db:"last_modified_by"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (row *settingRow) toModel(scope models.Scope) (*models.ConfigurationEntry, error) {
	entry := &models.ConfigurationEntry{
		ID:             row.ID,
		Scope:          scope,
		TenantID:       row.TenantID,
		Category:       row.Category,
		Key:            row.Key,
		Value:          normalizeJSON(row.Value),
		Description:    row.Description,
		Active:         row.Active,
		LastModifiedBy: row.LastModifiedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if row.Schema.Valid && row.Schema.String != "" {
		var schema models.ValidationSchema
		if err := json.Unmarshal([]byte(row.Schema.String), &schema); err != nil {
			return nil, fmt.Errorf("failed to decode schema of entry %s: %w", row.ID, err)
		}
		entry.Schema = &schema
	}

	return entry, nil
}

// normalizeJSON returns stored JSON in canonical form; engines such as JSONB reformat documents
func normalizeJSON(stored string) json.RawMessage {
	canonical, err := models.CanonicalJSON(json.RawMessage(stored))
	if err != nil {
		return json.RawMessage(stored)
	}
	return canonical
}

func encodeSchema(schema *models.ValidationSchema) (sql.NullString, error) {
	if schema == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode schema: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// selectColumns returns the column list for a scope; platform rows carry an empty tenant_id
func selectColumns(scope models.Scope) string {
	tenantColumn := "tenant_id"
	if scope == models.ScopePlatform {
		tenantColumn = "'' AS tenant_id"
	}
	return "id, " + tenantColumn + ", category, key, value, schema, description, active, last_modified_by, created_at, updated_at"
}

// List retrieves active entries ordered by category and key
func (r *settingsRepository) List(ctx context.Context, scope models.Scope, tenantID, category string) ([]models.ConfigurationEntry, error) {
	table, err := settingsTable(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE active = ?", selectColumns(scope), table)
	args := []interface{}{true}

	if scope == models.ScopeTenant {
		query += " AND tenant_id = ?"
		args = append(args, tenantID)
	}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY category ASC, key ASC"

	var rows []settingRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	entries := make([]models.ConfigurationEntry, 0, len(rows))
	for i := range rows {
		entry, err := rows[i].toModel(scope)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// GetByKey retrieves the active entry for a key
func (r *settingsRepository) GetByKey(ctx context.Context, scope models.Scope, tenantID, category, key string) (*models.ConfigurationEntry, error) {
	table, err := settingsTable(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE active = ? AND category = ? AND key = ?", selectColumns(scope), table)
	args := []interface{}{true, category, key}

	if scope == models.ScopeTenant {
		query += " AND tenant_id = ?"
		args = append(args, tenantID)
	}

	var row settingRow
	err = r.db.GetContext(ctx, &row, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("setting %s/%s: %w", category, key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return row.toModel(scope)
}

// GetByID retrieves an entry by ID regardless of its active flag
func (r *settingsRepository) GetByID(ctx context.Context, scope models.Scope, id string) (*models.ConfigurationEntry, error) {
	table, err := settingsTable(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", selectColumns(scope), table)

	var row settingRow
	err = r.db.GetContext(ctx, &row, r.db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("setting with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return row.toModel(scope)
}

// Create inserts a new entry; the active-key unique index rejects duplicates
func (r *settingsRepository) Create(ctx context.Context, entry *models.ConfigurationEntry) error {
	schema, err := encodeSchema(entry.Schema)
	if err != nil {
		return err
	}

	var query string
	var args []interface{}

	switch entry.Scope {
	case models.ScopePlatform:
		query = `
			INSERT INTO platform_settings (id, category, key, value, schema, description, active,
			                               last_modified_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		args = []interface{}{
			entry.ID, entry.Category, entry.Key, string(entry.Value), schema, entry.Description,
			entry.Active, entry.LastModifiedBy, entry.CreatedAt, entry.UpdatedAt,
		}
	case models.ScopeTenant:
		query = `
			INSERT INTO tenant_settings (id, tenant_id, category, key, value, schema, description, active,
			                             last_modified_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		args = []interface{}{
			entry.ID, entry.TenantID, entry.Category, entry.Key, string(entry.Value), schema, entry.Description,
			entry.Active, entry.LastModifiedBy, entry.CreatedAt, entry.UpdatedAt,
		}
	default:
		return fmt.Errorf("unknown scope %q", entry.Scope)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("setting %s/%s: %w", entry.Category, entry.Key, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create setting: %w", err)
	}

	return nil
}

// Update writes value, schema and description of an active entry
func (r *settingsRepository) Update(ctx context.Context, entry *models.ConfigurationEntry) error {
	table, err := settingsTable(entry.Scope)
	if err != nil {
		return err
	}

	schema, err := encodeSchema(entry.Schema)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET value = ?, schema = ?, description = ?, last_modified_by = ?, updated_at = ?
		WHERE id = ? AND active = ?
	`, table)

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		string(entry.Value),
		schema,
		entry.Description,
		entry.LastModifiedBy,
		entry.UpdatedAt,
		entry.ID,
		true,
	)
	if err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	return expectOneRow(result, entry.ID)
}

// SoftDelete tombstones an active entry
func (r *settingsRepository) SoftDelete(ctx context.Context, entry *models.ConfigurationEntry) error {
	table, err := settingsTable(entry.Scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET active = ?, last_modified_by = ?, updated_at = ?
		WHERE id = ? AND active = ?
	`, table)

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		false,
		entry.LastModifiedBy,
		entry.UpdatedAt,
		entry.ID,
		true,
	)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	return expectOneRow(result, entry.ID)
}

func expectOneRow(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("setting with ID %s: %w", id, ErrNotFound)
	}

	return nil
}
