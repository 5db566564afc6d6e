package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/repositories/mocks"
)

func TestConfigurationFacade_Categories(t *testing.T) {
	facade := NewConfigurationFacade(nil, nil, false)

	tenant, err := facade.Categories(models.ScopeTenant)
	require.NoError(t, err)
	assert.Contains(t, tenant, "complaint-rules")
	assert.NotContains(t, tenant, "license-policy")

	platform, err := facade.Categories(models.ScopePlatform)
	require.NoError(t, err)
	assert.Contains(t, platform, "license-policy")

	_, err = facade.Categories(models.Scope("galaxy"))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestConfigurationFacade_Validate(t *testing.T) {
	facade := NewConfigurationFacade(nil, nil, false)
	max := 10.0

	result := facade.Validate(json.RawMessage(`11`), &models.ValidationSchema{Type: models.SchemaTypeNumber, Maximum: &max})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"value must be at most 10"}, result.Errors)

	result = facade.Validate(json.RawMessage(`"anything"`), nil)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestConfigurationFacade_GetWithoutViewAudit(t *testing.T) {
	settingsRepo := mocks.NewMockSettingsRepository(t)
	auditRepo := mocks.NewMockAuditRepository(t)
	audit := NewAuditService(auditRepo, nil, nil, 0)
	facade := NewConfigurationFacade(NewSettingsService(settingsRepo, audit, nil, nil, nil), audit, false)

	ctx := context.Background()
	settingsRepo.EXPECT().GetByKey(ctx, models.ScopeTenant, "acme", "complaint-rules", "auto-assignment").
		Return(tenantEntry(), nil)

	entry, err := facade.Get(ctx, tenantCaller, "complaint-rules", "auto-assignment")
	require.NoError(t, err)
	assert.Equal(t, "entry-1", entry.ID)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestConfigurationFacade_PassesClientDefaults(t *testing.T) {
	settingsRepo := mocks.NewMockSettingsRepository(t)
	auditRepo := mocks.NewMockAuditRepository(t)
	audit := NewAuditService(auditRepo, nil, nil, 0)
	facade := NewConfigurationFacade(NewSettingsService(settingsRepo, audit, nil, nil, nil), audit, false)

	ctx := context.Background()
	settingsRepo.EXPECT().GetByID(ctx, models.ScopeTenant, "entry-1").Return(tenantEntry(), nil)
	settingsRepo.EXPECT().SoftDelete(ctx, mock.Anything).Return(nil)
	auditRepo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(r *models.AuditRecord) bool {
		return r.ClientIP == models.UnknownClient && r.ClientAgent == models.UnknownClient
	})).Return(nil)

	caller := tenantCaller
	caller.ClientIP = ""
	caller.ClientAgent = " "
	require.NoError(t, facade.Delete(ctx, caller, "entry-1", ""))
}
