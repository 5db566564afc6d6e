package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/services"
)

// CatalogController serves category registries and dry-run validation for form renderers
type CatalogController struct {
	services *services.Services
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(services *services.Services) *CatalogController {
	return &CatalogController{
		services: services,
	}
}

// Categories handles GET /categories?scope=
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	scope, err := models.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	categories, err := c.services.Configuration.Categories(scope)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"scope": scope, "categories": categories})
}

type validateRequest struct {
	Value  json.RawMessage          `json:"value"`
	Schema *models.ValidationSchema `json:"schema"`
}

// Validate handles POST /validate
func (c *CatalogController) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, c.services.Configuration.Validate(req.Value, req.Schema))
}
