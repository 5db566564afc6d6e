package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ConfigurationEntry is a single setting within a scope (and tenant, for tenant scope)
type ConfigurationEntry struct {
	ID             string            `json:"id"`
	Scope          Scope             `json:"scope"`
	TenantID       string            `json:"tenant_id,omitempty"`
	Category       string            `json:"category"`
	Key            string            `json:"key"`
	Value          json.RawMessage   `json:"value"`
	Schema         *ValidationSchema `json:"schema,omitempty"`
	Description    string            `json:"description,omitempty"`
	Active         bool              `json:"active"`
	LastModifiedBy string            `json:"last_modified_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateEntryForm carries the fields for creating an entry
type CreateEntryForm struct {
	Category    string            `json:"category"`
	Key         string            `json:"key"`
	Value       json.RawMessage   `json:"value"`
	Schema      *ValidationSchema `json:"schema,omitempty"`
	Description string            `json:"description,omitempty"`
	Reason      string            `json:"reason,omitempty"`
}

// Validate validates the create form data
func (f *CreateEntryForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Category) == "" {
		errors = append(errors, "category is required")
	}

	if strings.TrimSpace(f.Key) == "" {
		errors = append(errors, "key is required")
	}

	if len(f.Key) > 255 {
		errors = append(errors, "key must be less than 256 characters")
	}

	if len(f.Value) > 0 && !json.Valid(f.Value) {
		errors = append(errors, "value must be valid JSON")
	}

	return errors
}

// EntryUpdate is a partial update; nil fields are left unchanged
type EntryUpdate struct {
	Value       json.RawMessage   `json:"value,omitempty"`
	Schema      *ValidationSchema `json:"schema,omitempty"`
	Description *string           `json:"description,omitempty"`
	Reason      string            `json:"reason,omitempty"`
}

// Validate validates the update data
func (u *EntryUpdate) Validate() []string {
	var errors []string

	if u.Value == nil && u.Schema == nil && u.Description == nil {
		errors = append(errors, "update must change value, schema or description")
	}

	if len(u.Value) > 0 && !json.Valid(u.Value) {
		errors = append(errors, "value must be valid JSON")
	}

	return errors
}
