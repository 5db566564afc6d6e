package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/services"
	"github.com/blogem/config-store/userctx"
)

const maxBodyBytes = 1 << 20

// Controllers holds all controller instances
type Controllers struct {
	Settings *SettingsController
	Audit    *AuditController
	Catalog  *CatalogController
	Health   *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, checks ...HealthCheck) *Controllers {
	return &Controllers{
		Settings: NewSettingsController(services),
		Audit:    NewAuditController(services),
		Catalog:  NewCatalogController(services),
		Health:   NewHealthController(checks...),
	}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Details: validationErr.Errors})
	case errors.Is(err, services.ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrCategoryInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "configuration store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody decodes a bounded JSON request body
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// callerFrom fetches the caller set by the identity middleware
func callerFrom(w http.ResponseWriter, r *http.Request) (models.Caller, bool) {
	caller, ok := userctx.GetCaller(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing caller identity")
		return models.Caller{}, false
	}
	return caller, true
}
