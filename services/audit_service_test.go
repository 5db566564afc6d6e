package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/repositories"
	"github.com/blogem/config-store/repositories/mocks"
)

// AuditServiceTestSuite tests the audit logger against a mocked repository
type AuditServiceTestSuite struct {
	suite.Suite
	service    AuditService
	mockAudit  *mocks.MockAuditRepository
	restoreNow func() time.Time
}

// SetupTest sets up the test suite before each test
func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAudit = mocks.NewMockAuditRepository(suite.T())
	suite.restoreNow = timeNow
	timeNow = func() time.Time { return fixedNow }
	suite.service = NewAuditService(suite.mockAudit, nil, nil, 1)
}

func (suite *AuditServiceTestSuite) TearDownTest() {
	timeNow = suite.restoreNow
}

func (suite *AuditServiceTestSuite) TestRecord_SubstitutesUnknownClient() {
	var appended *models.AuditRecord
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.AuditRecord) { appended = record }).
		Return(nil)

	record, ok := suite.service.Record(context.Background(), platformCaller, models.AuditEvent{
		EntryID: "entry-9",
		Action:  models.AuditActionCreate,
		After:   json.RawMessage(`42`),
	})

	assert.True(suite.T(), ok)
	assert.Same(suite.T(), appended, record)
	assert.Equal(suite.T(), models.UnknownClient, record.ClientIP)
	assert.Equal(suite.T(), models.UnknownClient, record.ClientAgent)
	assert.Equal(suite.T(), "root@platform.test", record.Actor)
	assert.Equal(suite.T(), fixedNow, record.CreatedAt)
	assert.NotEmpty(suite.T(), record.ID)
}

func (suite *AuditServiceTestSuite) TestRecord_FailureIsPublishedNotReturned() {
	writeErr := errors.New("audit table locked")
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).Return(writeErr)

	_, ok := suite.service.Record(context.Background(), tenantCaller, models.AuditEvent{
		EntryID: "entry-1",
		Action:  models.AuditActionDelete,
	})
	assert.False(suite.T(), ok)

	select {
	case failure := <-suite.service.Failures():
		assert.ErrorIs(suite.T(), failure.Err, writeErr)
		assert.Equal(suite.T(), "entry-1", failure.Record.EntryID)
		assert.Equal(suite.T(), "acme", failure.Record.TenantID)
	default:
		suite.T().Fatal("expected an audit failure on the channel")
	}
}

func (suite *AuditServiceTestSuite) TestRecord_FullFailureChannelDoesNotBlock() {
	suite.mockAudit.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("down"))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			suite.service.Record(context.Background(), tenantCaller, models.AuditEvent{EntryID: "e", Action: models.AuditActionUpdate})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		suite.T().Fatal("Record blocked on a full failure channel")
	}
	assert.Len(suite.T(), suite.service.Failures(), 1)
}

func (suite *AuditServiceTestSuite) TestQuery_ClampsLimitAndScopes() {
	ctx := context.Background()
	suite.mockAudit.EXPECT().Query(ctx, repositories.AuditQuery{
		Scope:    models.ScopeTenant,
		TenantID: "acme",
		EntryID:  "entry-1",
		Limit:    maxAuditLimit,
	}).Return([]models.AuditRecord{{ID: "a"}}, nil)

	records, err := suite.service.Query(ctx, tenantCaller, "entry-1", 10000)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}

func (suite *AuditServiceTestSuite) TestQuery_DefaultLimit() {
	ctx := context.Background()
	suite.mockAudit.EXPECT().Query(ctx, repositories.AuditQuery{
		Scope: models.ScopePlatform,
		Limit: defaultAuditLimit,
	}).Return(nil, nil)

	_, err := suite.service.Query(ctx, platformCaller, "", 0)

	assert.NoError(suite.T(), err)
}

func (suite *AuditServiceTestSuite) TestQuery_StoreError() {
	ctx := context.Background()
	suite.mockAudit.EXPECT().Query(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := suite.service.Query(ctx, platformCaller, "", 0)

	assert.ErrorIs(suite.T(), err, ErrStoreUnavailable)
}

func sealedChain(n int) []models.AuditRecord {
	records := make([]models.AuditRecord, n)
	prev := ""
	for i := range records {
		records[i] = models.AuditRecord{
			ID:        string(rune('a' + i)),
			Seq:       int64(i + 1),
			Scope:     models.ScopeTenant,
			TenantID:  "acme",
			EntryID:   "entry-1",
			Action:    models.AuditActionUpdate,
			Actor:     "alice@acme.test",
			CreatedAt: fixedNow.Add(time.Duration(i) * time.Minute),
		}
		records[i].Seal(prev)
		prev = records[i].Hash
	}
	return records
}

func (suite *AuditServiceTestSuite) TestVerify_ValidChain() {
	ctx := context.Background()
	suite.mockAudit.EXPECT().Chain(ctx, models.ScopeTenant, "acme").Return(sealedChain(3), nil)

	report, err := suite.service.Verify(ctx, tenantCaller)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), report.Valid)
	assert.Equal(suite.T(), 3, report.Records)
	assert.Empty(suite.T(), report.BrokenAt)
}

func (suite *AuditServiceTestSuite) TestVerify_TamperedRecord() {
	ctx := context.Background()
	chain := sealedChain(3)
	chain[1].Actor = "mallory@acme.test"
	suite.mockAudit.EXPECT().Chain(ctx, models.ScopeTenant, "acme").Return(chain, nil)

	report, err := suite.service.Verify(ctx, tenantCaller)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), report.Valid)
	assert.Equal(suite.T(), "b", report.BrokenAt)
	assert.Equal(suite.T(), 2, report.Records)
}

func (suite *AuditServiceTestSuite) TestVerify_RemovedRecord() {
	ctx := context.Background()
	chain := sealedChain(3)
	suite.mockAudit.EXPECT().Chain(ctx, models.ScopeTenant, "acme").
		Return([]models.AuditRecord{chain[0], chain[2]}, nil)

	report, err := suite.service.Verify(ctx, tenantCaller)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), report.Valid)
	assert.Equal(suite.T(), "c", report.BrokenAt)
}

// TestAuditServiceTestSuite runs the test suite
func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
