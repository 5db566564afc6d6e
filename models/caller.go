package models

import (
	"fmt"
	"strings"
)

// Scope identifies whether a setting applies platform-wide or to a single tenant
type Scope string

const (
	ScopePlatform Scope = "platform"
	ScopeTenant   Scope = "tenant"
)

// UnknownClient is recorded when the network context provider could not supply a value
const UnknownClient = "unknown"

// ParseScope converts a raw scope string into a Scope
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopePlatform:
		return ScopePlatform, nil
	case ScopeTenant:
		return ScopeTenant, nil
	default:
		return "", fmt.Errorf("unknown scope %q", s)
	}
}

// Valid reports whether the scope is one of the known values
func (s Scope) Valid() bool {
	return s == ScopePlatform || s == ScopeTenant
}

// Caller is the identity and request context threaded through every operation.
// It is supplied per call by the identity provider; nothing keeps a "current" caller around.
type Caller struct {
	Actor       string `json:"actor"`
	Scope       Scope  `json:"scope"`
	TenantID    string `json:"tenant_id,omitempty"`
	ClientIP    string `json:"client_ip,omitempty"`
	ClientAgent string `json:"client_agent,omitempty"`
}

// Validate checks that the caller is internally consistent
func (c Caller) Validate() []string {
	var errors []string

	if strings.TrimSpace(c.Actor) == "" {
		errors = append(errors, "actor is required")
	}

	switch c.Scope {
	case ScopeTenant:
		if strings.TrimSpace(c.TenantID) == "" {
			errors = append(errors, "tenant_id is required for tenant scope")
		}
	case ScopePlatform:
		if c.TenantID != "" {
			errors = append(errors, "tenant_id must be empty for platform scope")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown scope %q", c.Scope))
	}

	return errors
}

// WithClientDefaults substitutes UnknownClient for missing client context
func (c Caller) WithClientDefaults() Caller {
	if strings.TrimSpace(c.ClientIP) == "" {
		c.ClientIP = UnknownClient
	}
	if strings.TrimSpace(c.ClientAgent) == "" {
		c.ClientAgent = UnknownClient
	}
	return c
}

// Owns reports whether an entry belongs to the caller's scope and tenant
func (c Caller) Owns(entry *ConfigurationEntry) bool {
	if entry == nil || entry.Scope != c.Scope {
		return false
	}
	if c.Scope == ScopeTenant {
		return entry.TenantID == c.TenantID
	}
	return true
}
