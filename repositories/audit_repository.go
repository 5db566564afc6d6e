package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blogem/config-store/database"
	"github.com/blogem/config-store/models"
)

// AuditQuery selects audit records of one scope, newest first
type AuditQuery struct {
	Scope    models.Scope
	TenantID string
	EntryID  string
	Limit    int
}

// AuditRepository handles audit trail persistence.
// Records are append-only and chained per table and tenant.
type AuditRepository interface {
	Append(ctx context.Context, record *models.AuditRecord) error
	Query(ctx context.Context, q AuditQuery) ([]models.AuditRecord, error)
	Chain(ctx context.Context, scope models.Scope, tenantID string) ([]models.AuditRecord, error)
}

type auditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sqlx.DB) AuditRepository {
	return &auditRepository{db: db}
}

type auditRow struct {
	Seq         int64          `db:"seq"`
	ID          string         `db:"id"`
	EntryID     string         `db:"setting_id"`
	TenantID    string         `db:"tenant_id"`
	Action      string         `db:"action"`
	Actor       string         `db:"actor"`
	BeforeValue sql.NullString `db:"before_value"`
	AfterValue  sql.NullString `db:"after_value"`
	Reason      string         `db:"reason"`
	ClientIP    string         `db:"client_ip"`
	ClientAgent string         `db:"client_agent"`
	CreatedAt   time.Time      `db:"created_at"`
	PrevHash    string         `db:"prev_hash"`
	Hash        string         `db:"hash"`
}

func (row *auditRow) toModel(scope models.Scope) models.AuditRecord {
	return models.AuditRecord{
		ID:          row.ID,
		Seq:         row.Seq,
		Scope:       scope,
		TenantID:    row.TenantID,
		EntryID:     row.EntryID,
		Action:      models.AuditAction(row.Action),
		Actor:       row.Actor,
		BeforeValue: nullableJSON(row.BeforeValue),
		AfterValue:  nullableJSON(row.AfterValue),
		Reason:      row.Reason,
		ClientIP:    row.ClientIP,
		ClientAgent: row.ClientAgent,
		CreatedAt:   row.CreatedAt.UTC(),
		PrevHash:    row.PrevHash,
		Hash:        row.Hash,
	}
}

func nullableJSON(value sql.NullString) json.RawMessage {
	if !value.Valid {
		return nil
	}
	return normalizeJSON(value.String)
}

func jsonParam(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

func auditColumns(scope models.Scope) string {
	tenantColumn := "tenant_id"
	if scope == models.ScopePlatform {
		tenantColumn = "'' AS tenant_id"
	}
	return "seq, id, setting_id, " + tenantColumn +
		", action, actor, before_value, after_value, reason, client_ip, client_agent, created_at, prev_hash, hash"
}

// Append seals the record onto the tail of its chain and inserts it.
// The tail read and the insert share one transaction; on PostgreSQL an advisory
// lock keyed by table and tenant serializes concurrent appends.
func (r *auditRepository) Append(ctx context.Context, record *models.AuditRecord) error {
	table, err := auditTable(record.Scope)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}
	defer tx.Rollback()

	if database.IsPostgres(r.db) {
		lockKey := table + ":" + record.TenantID
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", lockKey); err != nil {
			return fmt.Errorf("failed to lock audit chain: %w", err)
		}
	}

	tailQuery := fmt.Sprintf("SELECT hash FROM %s", table)
	var tailArgs []interface{}
	if record.Scope == models.ScopeTenant {
		tailQuery += " WHERE tenant_id = ?"
		tailArgs = append(tailArgs, record.TenantID)
	}
	tailQuery += " ORDER BY seq DESC LIMIT 1"

	var prevHash string
	err = tx.GetContext(ctx, &prevHash, tx.Rebind(tailQuery), tailArgs...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to read audit chain tail: %w", err)
	}

	record.Seal(prevHash)

	var query string
	var args []interface{}

	switch record.Scope {
	case models.ScopePlatform:
		query = `
			INSERT INTO platform_settings_audit (id, setting_id, action, actor, before_value, after_value,
			                                     reason, client_ip, client_agent, created_at, prev_hash, hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING seq
		`
		args = []interface{}{
			record.ID, record.EntryID, string(record.Action), record.Actor,
			jsonParam(record.BeforeValue), jsonParam(record.AfterValue),
			record.Reason, record.ClientIP, record.ClientAgent, record.CreatedAt,
			record.PrevHash, record.Hash,
		}
	default:
		query = `
			INSERT INTO tenant_settings_audit (id, setting_id, tenant_id, action, actor, before_value, after_value,
			                                   reason, client_ip, client_agent, created_at, prev_hash, hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING seq
		`
		args = []interface{}{
			record.ID, record.EntryID, record.TenantID, string(record.Action), record.Actor,
			jsonParam(record.BeforeValue), jsonParam(record.AfterValue),
			record.Reason, record.ClientIP, record.ClientAgent, record.CreatedAt,
			record.PrevHash, record.Hash,
		}
	}

	if err := tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&record.Seq); err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit record: %w", err)
	}

	return nil
}

// Query returns matching records newest first
func (r *auditRepository) Query(ctx context.Context, q AuditQuery) ([]models.AuditRecord, error) {
	table, err := auditTable(q.Scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1 = 1", auditColumns(q.Scope), table)
	var args []interface{}

	if q.Scope == models.ScopeTenant {
		query += " AND tenant_id = ?"
		args = append(args, q.TenantID)
	}
	if q.EntryID != "" {
		query += " AND setting_id = ?"
		args = append(args, q.EntryID)
	}
	query += " ORDER BY seq DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	return r.selectRecords(ctx, q.Scope, query, args...)
}

// Chain returns the full chain of a scope and tenant in append order
func (r *auditRepository) Chain(ctx context.Context, scope models.Scope, tenantID string) ([]models.AuditRecord, error) {
	table, err := auditTable(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", auditColumns(scope), table)
	var args []interface{}

	if scope == models.ScopeTenant {
		query += " WHERE tenant_id = ?"
		args = append(args, tenantID)
	}
	query += " ORDER BY seq ASC"

	return r.selectRecords(ctx, scope, query, args...)
}

func (r *auditRepository) selectRecords(ctx context.Context, scope models.Scope, query string, args ...interface{}) ([]models.AuditRecord, error) {
	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}

	records := make([]models.AuditRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toModel(scope))
	}

	return records, nil
}
