package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// AuditAction is the kind of operation an audit record describes
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionView   AuditAction = "VIEW"
)

// AuditRecord is an immutable entry in the settings audit trail.
// Records of one table and tenant form a hash chain through PrevHash.
type AuditRecord struct {
	ID          string          `json:"id"`
	Seq         int64           `json:"seq"`
	Scope       Scope           `json:"scope"`
	TenantID    string          `json:"tenant_id,omitempty"`
	EntryID     string          `json:"entry_id"`
	Action      AuditAction     `json:"action"`
	Actor       string          `json:"actor"`
	BeforeValue json.RawMessage `json:"before_value,omitempty"`
	AfterValue  json.RawMessage `json:"after_value,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	ClientIP    string          `json:"client_ip"`
	ClientAgent string          `json:"client_agent"`
	CreatedAt   time.Time       `json:"created_at"`
	PrevHash    string          `json:"prev_hash"`
	Hash        string          `json:"hash"`
}

// AuditEvent is what the settings store reports to the audit logger
type AuditEvent struct {
	EntryID string
	Action  AuditAction
	Before  json.RawMessage
	After   json.RawMessage
	Reason  string
}

// ChainReport is the result of verifying an audit chain
type ChainReport struct {
	Scope    Scope  `json:"scope"`
	TenantID string `json:"tenant_id,omitempty"`
	Records  int    `json:"records"`
	Valid    bool   `json:"valid"`
	BrokenAt string `json:"broken_at,omitempty"`
}

// ComputeHash hashes the previous link together with the record's canonical fields
func (r *AuditRecord) ComputeHash() string {
	payload := struct {
		ID          string `json:"id"`
		Scope       Scope  `json:"scope"`
		TenantID    string `json:"tenant_id"`
		EntryID     string `json:"entry_id"`
		Action      string `json:"action"`
		Actor       string `json:"actor"`
		BeforeValue string `json:"before_value"`
		AfterValue  string `json:"after_value"`
		Reason      string `json:"reason"`
		ClientIP    string `json:"client_ip"`
		ClientAgent string `json:"client_agent"`
		CreatedAt   string `json:"created_at"`
	}{
		ID:          r.ID,
		Scope:       r.Scope,
		TenantID:    r.TenantID,
		EntryID:     r.EntryID,
		Action:      string(r.Action),
		Actor:       r.Actor,
		BeforeValue: canonicalString(r.BeforeValue),
		AfterValue:  canonicalString(r.AfterValue),
		Reason:      r.Reason,
		ClientIP:    r.ClientIP,
		ClientAgent: r.ClientAgent,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	data, _ := json.Marshal(payload)

	h := sha256.New()
	h.Write([]byte(r.PrevHash))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Seal links the record to its predecessor and stores its hash
func (r *AuditRecord) Seal(prevHash string) {
	r.PrevHash = prevHash
	r.Hash = r.ComputeHash()
}

// canonicalString renders a JSON value in canonical form so that hashes survive
// storage engines that reformat JSON
func canonicalString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	canonical, err := CanonicalJSON(raw)
	if err != nil {
		return string(raw)
	}
	return string(canonical)
}
