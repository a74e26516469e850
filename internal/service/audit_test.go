package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuditService(t *testing.T) (*auditService, *mocks.MockAuditLogRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAuditLogRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAuditService(repoMock, usersMock, logger).(*auditService)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600)) }
	return svc, repoMock, usersMock
}

func TestLogAction_AppendsOneRecord(t *testing.T) {
	svc, repoMock, _ := newTestAuditService(t)
	ctx := context.Background()
	userID := uuid.New()
	entityID := uuid.New()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.NotEqual(t, uuid.Nil, entry.ID)
			assert.Equal(t, userID, entry.UserID)
			assert.Equal(t, &entityID, entry.EntityID)
			assert.Equal(t, time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC), entry.CreatedAt)
			assert.Equal(t, time.UTC, entry.CreatedAt.Location())
			return nil
		}).
		Times(1)

	err := svc.LogAction(ctx, AuditEntry{
		UserID:   userID,
		Action:   models.ActionUpdate,
		Entity:   models.EntityOccurrence,
		EntityID: &entityID,
	})
	require.NoError(t, err)
}

func TestLogAction_ErrorIsReturned(t *testing.T) {
	svc, repoMock, _ := newTestAuditService(t)
	dbErr := errors.New("insert failed")

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr).Times(1)

	err := svc.LogAction(context.Background(), AuditEntry{UserID: uuid.New(), Action: models.ActionLogin, Entity: models.EntityUser})
	assert.ErrorIs(t, err, dbErr)
}

func TestSearchAuditLogs_AdminOnly(t *testing.T) {
	svc, repoMock, usersMock := newTestAuditService(t)
	ctx := context.Background()
	supervisor := newUser(models.RoleSupervisor)

	usersMock.EXPECT().GetByID(ctx, supervisor.ID).Return(supervisor, nil).Times(1)
	repoMock.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SearchAuditLogs(ctx, models.AuditLogFilters{}, supervisor.ID)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestSearchAuditLogs_Success(t *testing.T) {
	svc, repoMock, usersMock := newTestAuditService(t)
	ctx := context.Background()
	admin := newUser(models.RoleAdmin)
	filters := models.AuditLogFilters{Action: models.ActionDownload, Page: 1, PageSize: 10}
	logs := []*models.AuditLog{{ID: uuid.New(), Action: models.ActionDownload}}

	usersMock.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)
	repoMock.EXPECT().Search(ctx, filters).Return(logs, 11, nil).Times(1)

	page, err := svc.SearchAuditLogs(ctx, filters, admin.ID)

	require.NoError(t, err)
	assert.Equal(t, logs, page.Items)
	assert.Equal(t, 11, page.Total)
}
