package models

import (
	"encoding/json"
	"time"
)

// ChangeEvent is published to subscribers after a settings mutation
type ChangeEvent struct {
	AuditRecordID string          `json:"audit_record_id"`
	EntryID       string          `json:"entry_id"`
	Scope         Scope           `json:"scope"`
	TenantID      string          `json:"tenant_id,omitempty"`
	Category      string          `json:"category"`
	Key           string          `json:"key"`
	Action        AuditAction     `json:"action"`
	Actor         string          `json:"actor"`
	BeforeValue   json.RawMessage `json:"before_value,omitempty"`
	AfterValue    json.RawMessage `json:"after_value,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// PartitionKey keeps events for one setting on the same partition
func (e *ChangeEvent) PartitionKey() string {
	key := string(e.Scope) + "."
	if e.TenantID != "" {
		key += e.TenantID + "."
	}
	return key + e.Category + "." + e.Key
}
