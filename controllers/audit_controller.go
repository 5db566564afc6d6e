package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/config-store/services"
)

// AuditController handles audit trail requests
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// Index handles GET /audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	c.trail(w, r, r.URL.Query().Get("entry_id"))
}

// Entry handles GET /entries/{id}/audit
func (c *AuditController) Entry(w http.ResponseWriter, r *http.Request) {
	c.trail(w, r, chi.URLParam(r, "id"))
}

func (c *AuditController) trail(w http.ResponseWriter, r *http.Request, entryID string) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	records, err := c.services.Configuration.AuditTrail(r.Context(), caller, entryID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// Verify handles GET /audit/verify
func (c *AuditController) Verify(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	report, err := c.services.Configuration.VerifyAuditTrail(r.Context(), caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !report.Valid {
		status = http.StatusConflict
	}
	writeJSON(w, status, report)
}
