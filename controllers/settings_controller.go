package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/services"
)

// SettingsController handles configuration entry requests
type SettingsController struct {
	services *services.Services
}

// NewSettingsController creates a new settings controller
func NewSettingsController(services *services.Services) *SettingsController {
	return &SettingsController{
		services: services,
	}
}

// List handles GET /settings
func (c *SettingsController) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	entries, err := c.services.Configuration.List(r.Context(), caller, r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Get handles GET /settings/{category}/{key}
func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	entry, err := c.services.Configuration.Get(r.Context(), caller, chi.URLParam(r, "category"), chi.URLParam(r, "key"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Create handles POST /settings
func (c *SettingsController) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var form models.CreateEntryForm
	if !decodeBody(w, r, &form) {
		return
	}

	entry, err := c.services.Configuration.Create(r.Context(), caller, &form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Update handles PATCH /entries/{id}
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var update models.EntryUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	entry, err := c.services.Configuration.Update(r.Context(), caller, chi.URLParam(r, "id"), &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /entries/{id}; the optional reason comes from the query string
func (c *SettingsController) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := c.services.Configuration.Delete(r.Context(), caller, chi.URLParam(r, "id"), r.URL.Query().Get("reason")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
