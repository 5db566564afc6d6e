package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/config-store/database"
	"github.com/blogem/config-store/metrics"
	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/repositories"
)

func setupStore(t *testing.T, opts Options) *Services {
	t.Helper()

	db, err := database.InitializeDatabase(database.DriverSQLite, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewServices(repositories.NewRepositories(db), opts)
}

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	value := json.RawMessage(`{"channels":["email","sms"],"quiet_hours":{"from":"22:00","to":"07:00"},"limit":2.5}`)
	created, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "notification-preferences",
		Key:      "defaults",
		Value:    value,
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, tenantCaller, "notification-preferences", "defaults")
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.JSONEq(t, string(value), string(got.Value))
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_ListIsOrderedAndStable(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	for _, item := range []struct{ category, key string }{
		{"product-defaults", "warranty_months"},
		{"complaint-rules", "sla_hours"},
		{"complaint-rules", "auto-assignment"},
	} {
		_, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{Category: item.category, Key: item.key, Value: json.RawMessage(`1`)})
		require.NoError(t, err)
	}

	first, err := store.List(ctx, tenantCaller, "")
	require.NoError(t, err)
	second, err := store.List(ctx, tenantCaller, "")
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "auto-assignment", first[0].Key)
	assert.Equal(t, "sla_hours", first[1].Key)
	assert.Equal(t, "warranty_months", first[2].Key)

	rules, err := store.List(ctx, tenantCaller, "complaint-rules")
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestStore_DuplicateLeavesOneActiveEntry(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()
	form := &models.CreateEntryForm{Category: "system-policies", Key: "password_min_length", Value: json.RawMessage(`12`)}

	_, err := store.Create(ctx, platformCaller, form)
	require.NoError(t, err)

	_, err = store.Create(ctx, platformCaller, form)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	entries, err := store.List(ctx, platformCaller, "system-policies")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_SoftDeleteKeepsHistory(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	entry, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "job-work-config", Key: "max_open_jobs", Value: json.RawMessage(`25`),
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, tenantCaller, entry.ID, "no longer used"))

	_, err = store.Get(ctx, tenantCaller, "job-work-config", "max_open_jobs")
	assert.ErrorIs(t, err, ErrNotFound)

	trail, err := store.AuditTrail(ctx, tenantCaller, entry.ID, 10)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, models.AuditActionDelete, trail[0].Action)
	assert.JSONEq(t, `25`, string(trail[0].BeforeValue))
	assert.Equal(t, "no longer used", trail[0].Reason)
	assert.Equal(t, models.AuditActionCreate, trail[1].Action)

	// Deleting twice finds nothing to delete
	assert.ErrorIs(t, store.Delete(ctx, tenantCaller, entry.ID, ""), ErrNotFound)

	// The key is free again
	_, err = store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "job-work-config", Key: "max_open_jobs", Value: json.RawMessage(`30`),
	})
	assert.NoError(t, err)
}

func TestStore_TenantIsolation(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	other := models.Caller{Actor: "bob@globex.test", Scope: models.ScopeTenant, TenantID: "globex"}

	entry, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "product-defaults", Key: "currency", Value: json.RawMessage(`"EUR"`),
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, other, "product-defaults", "currency")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := store.List(ctx, other, "")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.Update(ctx, other, entry.ID, &models.EntryUpdate{Value: json.RawMessage(`"USD"`)})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, store.Delete(ctx, other, entry.ID, ""), ErrForbidden)

	// A platform caller cannot reach tenant rows by id either
	_, err = store.Update(ctx, platformCaller, entry.ID, &models.EntryUpdate{Value: json.RawMessage(`"USD"`)})
	assert.ErrorIs(t, err, ErrNotFound)

	trail, err := store.AuditTrail(ctx, other, entry.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, trail)

	unchanged, err := store.Get(ctx, tenantCaller, "product-defaults", "currency")
	require.NoError(t, err)
	assert.JSONEq(t, `"EUR"`, string(unchanged.Value))
}

func TestStore_OneAuditRecordPerMutation(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	entry, err := store.Create(ctx, platformCaller, &models.CreateEntryForm{
		Category: "license-policy", Key: "seats", Value: json.RawMessage(`10`),
	})
	require.NoError(t, err)

	_, err = store.Update(ctx, platformCaller, entry.ID, &models.EntryUpdate{Value: json.RawMessage(`20`), Reason: "upgrade"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, platformCaller, entry.ID, ""))

	trail, err := store.AuditTrail(ctx, platformCaller, entry.ID, 0)
	require.NoError(t, err)
	require.Len(t, trail, 3)

	assert.Equal(t, models.AuditActionDelete, trail[0].Action)
	assert.JSONEq(t, `20`, string(trail[0].BeforeValue))
	assert.Nil(t, trail[0].AfterValue)

	assert.Equal(t, models.AuditActionUpdate, trail[1].Action)
	assert.JSONEq(t, `10`, string(trail[1].BeforeValue))
	assert.JSONEq(t, `20`, string(trail[1].AfterValue))
	assert.Equal(t, "upgrade", trail[1].Reason)

	assert.Equal(t, models.AuditActionCreate, trail[2].Action)
	assert.Nil(t, trail[2].BeforeValue)
	assert.JSONEq(t, `10`, string(trail[2].AfterValue))

	for _, record := range trail {
		assert.Equal(t, models.UnknownClient, record.ClientIP)
	}

	report, err := store.VerifyAuditTrail(ctx, platformCaller)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 3, report.Records)
}

func TestStore_ComplaintRulesExample(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	entry, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "complaint-rules",
		Key:      "auto-assignment",
		Value:    json.RawMessage(`{"enabled":true,"method":"round_robin"}`),
		Schema:   autoAssignmentSchema(),
	})
	require.NoError(t, err)

	_, err = store.Update(ctx, tenantCaller, entry.ID, &models.EntryUpdate{
		Value: json.RawMessage(`{"enabled":true,"method":"invalid_method"}`),
	})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0], "round_robin")

	trail, err := store.AuditTrail(ctx, tenantCaller, entry.ID, 0)
	require.NoError(t, err)
	assert.Len(t, trail, 1, "the rejected update must not be audited")

	current, err := store.Get(ctx, tenantCaller, "complaint-rules", "auto-assignment")
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":true,"method":"round_robin"}`, string(current.Value))
}

func TestStore_PaddedKeyRoundTrip(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	created, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: " complaint-rules ",
		Key:      " sla ",
		Value:    json.RawMessage(`24`),
	})
	require.NoError(t, err)
	assert.Equal(t, "sla", created.Key)

	got, err := store.Get(ctx, tenantCaller, " complaint-rules ", " sla ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	listed, err := store.List(ctx, tenantCaller, " complaint-rules ")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestStore_NumberSpellingKeepsChainValid(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	created, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "product-defaults",
		Key:      "warranty_days",
		Value:    json.RawMessage(`{"days":3.65e2,"grace":-0}`),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"days":365,"grace":0}`, string(created.Value))

	report, err := store.VerifyAuditTrail(ctx, tenantCaller)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 1, report.Records)
}

func TestStore_UnknownCategoryWritesNothing(t *testing.T) {
	store := setupStore(t, Options{}).Configuration
	ctx := context.Background()

	_, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "not_a_real_category", Key: "k", Value: json.RawMessage(`1`),
	})
	assert.ErrorIs(t, err, ErrCategoryInvalid)

	trail, err := store.AuditTrail(ctx, tenantCaller, "", 0)
	require.NoError(t, err)
	assert.Empty(t, trail)
}

func TestStore_RecordViews(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	store := setupStore(t, Options{RecordViews: true, Metrics: m}).Configuration
	ctx := context.Background()

	entry, err := store.Create(ctx, tenantCaller, &models.CreateEntryForm{
		Category: "document-templates", Key: "invoice", Value: json.RawMessage(`"tmpl-7"`),
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, tenantCaller, "document-templates", "invoice")
	require.NoError(t, err)

	trail, err := store.AuditTrail(ctx, tenantCaller, entry.ID, 0)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, models.AuditActionView, trail[0].Action)
	assert.Equal(t, "10.0.0.7", trail[0].ClientIP)
}

func TestStore_PublishesChangeEvents(t *testing.T) {
	publisher := &recordingPublisher{}
	store := setupStore(t, Options{Publisher: publisher}).Configuration
	ctx := context.Background()

	entry, err := store.Create(ctx, platformCaller, &models.CreateEntryForm{
		Category: "global-notification-config", Key: "sender", Value: json.RawMessage(`"noreply@example.com"`),
	})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, platformCaller, entry.ID, ""))

	require.Len(t, publisher.events, 2)
	assert.Equal(t, models.AuditActionCreate, publisher.events[0].Action)
	assert.Equal(t, models.AuditActionDelete, publisher.events[1].Action)
	assert.Equal(t, "platform.global-notification-config.sender", publisher.events[1].PartitionKey())
}
