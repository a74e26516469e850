package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service/mocks"
	"github.com/shenikar/occurrence_reporting_system/internal/webhook"
	webhook_mocks "github.com/shenikar/occurrence_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

type occurrenceDeps struct {
	repo      *mocks.MockOccurrenceRepository
	users     *mocks.MockUserRepository
	vehicles  *mocks.MockVehicleRepository
	auditRepo *mocks.MockAuditLogRepository
	webhook   *webhook_mocks.MockWebhookPublisher
}

// newTestOccurrenceService - сервис с моками репозиториев и настоящим AuditRecorder поверх мока журнала
func newTestOccurrenceService(t *testing.T) (*occurrenceService, occurrenceDeps) {
	ctrl := gomock.NewController(t)
	deps := occurrenceDeps{
		repo:      mocks.NewMockOccurrenceRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		vehicles:  mocks.NewMockVehicleRepository(ctrl),
		auditRepo: mocks.NewMockAuditLogRepository(ctrl),
		webhook:   webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{CacheTTL: time.Minute}

	audit := NewAuditService(deps.auditRepo, deps.users, logger)
	svc := NewOccurrenceService(deps.repo, deps.users, deps.vehicles, audit, logger, cfg, deps.webhook).(*occurrenceService)
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

func ptr[T any](v T) *T {
	return &v
}

func newUser(role models.Role) *models.User {
	return &models.User{ID: uuid.New(), Name: "Test User", Email: "user@test.local", Role: role}
}

func newOccurrence(creatorID uuid.UUID) *models.Occurrence {
	return &models.Occurrence{
		ID:             uuid.New(),
		Type:           models.TypeAccident,
		Status:         models.StatusOpen,
		Municipality:   "Recife",
		Address:        "Rua da Aurora, 100",
		Description:    "Colisão entre dois veículos",
		VictimName:     "João",
		VehicleNumber:  "AR-973",
		OccurrenceDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		ActivationDate: time.Date(2024, 3, 10, 9, 5, 0, 0, time.UTC),
		CreatedByID:    creatorID,
		Images:         []models.OccurrenceImage{},
	}
}

func validCreateInput() CreateOccurrenceInput {
	return CreateOccurrenceInput{
		Type:           models.TypeFire,
		Municipality:   "Olinda",
		Address:        "Rua do Amparo, 12",
		Description:    "Incêndio em residência",
		OccurrenceDate: ptr(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
		ActivationDate: ptr(time.Date(2024, 3, 10, 9, 10, 0, 0, time.UTC)),
	}
}

func TestCreateOccurrence_MissingFieldsListedTogether(t *testing.T) {
	// Подготовка
	svc, _ := newTestOccurrenceService(t)
	input := validCreateInput()
	input.Description = ""
	input.Address = "   "

	// Действие
	occurrence, err := svc.CreateOccurrence(context.Background(), input, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, occurrence)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"address", "description"}, validationErr.Fields)
	assert.Contains(t, validationErr.Error(), "address")
	assert.Contains(t, validationErr.Error(), "description")
}

func TestCreateOccurrence_AllFieldsMissing(t *testing.T) {
	svc, _ := newTestOccurrenceService(t)

	_, err := svc.CreateOccurrence(context.Background(), CreateOccurrenceInput{}, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"type", "municipality", "address", "occurrence_date", "activation_date", "description"}, validationErr.Fields)
}

func TestCreateOccurrence_InvalidEnums(t *testing.T) {
	svc, _ := newTestOccurrenceService(t)

	input := validCreateInput()
	input.Type = "terremoto"
	_, err := svc.CreateOccurrence(context.Background(), input, uuid.New())
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "type", enumErr.Field)
	assert.Equal(t, []string{"acidente", "resgate", "incendio", "atropelamento", "outros"}, enumErr.Allowed)

	input = validCreateInput()
	input.Status = "fechado"
	_, err = svc.CreateOccurrence(context.Background(), input, uuid.New())
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "status", enumErr.Field)
	assert.Equal(t, []string{"aberto", "em_andamento", "finalizado", "alerta"}, enumErr.Allowed)
}

func TestCreateOccurrence_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	user := newUser(models.RoleOperator)
	createdID := uuid.New()

	// Ожидания
	deps.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Occurrence) error {
			assert.Equal(t, models.StatusOpen, o.Status)
			assert.Equal(t, user.ID, o.CreatedByID)
			o.ID = createdID
			return nil
		}).
		Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionCreate, entry.Action)
			assert.Equal(t, models.EntityOccurrence, entry.Entity)
			assert.Equal(t, user.ID, entry.UserID)
			require.NotNil(t, entry.EntityID)
			assert.Equal(t, createdID, *entry.EntityID)
			assert.Equal(t, map[string]any{
				"type":         models.TypeFire,
				"municipality": "Olinda",
				"status":       models.StatusOpen,
			}, entry.Details)
			assert.Empty(t, entry.Changes)
			return nil
		}).
		Times(1)
	deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
	deps.webhook.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventOccurrenceCreated, event.Event)
			assert.Equal(t, createdID, event.OccurrenceID)
			assert.Equal(t, fixedNow, event.Timestamp)
			return nil
		}).
		Times(1)

	// Действие
	occurrence, err := svc.CreateOccurrence(ctx, validCreateInput(), user.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, createdID, occurrence.ID)
	assert.Equal(t, user, occurrence.CreatedBy)
}

func TestCreateOccurrence_UserNotFound(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.users.EXPECT().GetByID(ctx, userID).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.CreateOccurrence(ctx, validCreateInput(), userID)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "user", notFoundErr.Entity)
}

func TestCreateOccurrence_VehicleNotFound(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	user := newUser(models.RoleAdmin)
	input := validCreateInput()
	input.VehicleID = ptr(uuid.New())

	deps.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	deps.vehicles.EXPECT().GetByID(ctx, *input.VehicleID).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.CreateOccurrence(ctx, input, user.ID)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "vehicle", notFoundErr.Entity)
	assert.Equal(t, input.VehicleID.String(), notFoundErr.ID)
}

func TestCreateOccurrence_AuditFailureFailsRequest(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	user := newUser(models.RoleAdmin)
	auditErr := errors.New("connection reset")

	deps.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	deps.auditRepo.EXPECT().Create(ctx, gomock.Any()).Return(auditErr).Times(1)

	occurrence, err := svc.CreateOccurrence(ctx, validCreateInput(), user.ID)

	require.Error(t, err)
	assert.Nil(t, occurrence)
	assert.ErrorIs(t, err, auditErr)
}

func TestUpdateOccurrence_SingleWatchedFieldProducesSingleKeyDiff(t *testing.T) {
	// Подготовка
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	existing := newOccurrence(operator.ID)
	oldDescription := existing.Description

	// Ожидания
	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionUpdate, entry.Action)
			require.Len(t, entry.Changes, 1)
			change, ok := entry.Changes["description"]
			require.True(t, ok)
			assert.Equal(t, oldDescription, change.From.String)
			assert.Equal(t, "Colisão com vítima", change.To.String)
			assert.Equal(t, map[string]any{"reason": "Atualização manual"}, entry.Details)
			return nil
		}).
		Times(1)
	deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)
	deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	updated, err := svc.UpdateOccurrence(ctx, existing.ID, UpdateOccurrenceInput{
		Description: ptr("Colisão com vítima"),
		Type:        ptr(models.TypeAccident),
	}, operator.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Colisão com vítima", updated.Description)
}

func TestUpdateOccurrence_UnwatchedFieldWritesNoAudit(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	admin := newUser(models.RoleAdmin)
	existing := newOccurrence(uuid.New())

	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	deps.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)
	deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	updated, err := svc.UpdateOccurrence(ctx, existing.ID, UpdateOccurrenceInput{
		Address:      ptr("Avenida Boa Viagem, 500"),
		Neighborhood: ptr("Boa Viagem"),
	}, admin.ID)

	require.NoError(t, err)
	assert.Equal(t, "Avenida Boa Viagem, 500", updated.Address)
}

func TestUpdateOccurrence_ClearVehicle(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	admin := newUser(models.RoleAdmin)
	existing := newOccurrence(uuid.New())
	vehicleID := uuid.New()
	existing.VehicleID = &vehicleID
	existing.Vehicle = &models.Vehicle{ID: vehicleID, Plate: "AR-973"}

	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)
	deps.vehicles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Occurrence) error {
			assert.Nil(t, o.VehicleID)
			return nil
		}).
		Times(1)
	deps.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)
	deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	updated, err := svc.UpdateOccurrence(ctx, existing.ID, UpdateOccurrenceInput{ClearVehicle: true}, admin.ID)

	require.NoError(t, err)
	assert.Nil(t, updated.Vehicle)
}

func TestUpdateOccurrence_ClearVehicleWithVehicleID(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateOccurrence(context.Background(), uuid.New(), UpdateOccurrenceInput{
		VehicleID:    ptr(uuid.New()),
		ClearVehicle: true,
	}, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"vehicle_id", "clear_vehicle"}, validationErr.Fields)
}

func TestUpdateOccurrence_PermissionDenied(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	existing := newOccurrence(uuid.New())

	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)

	_, err := svc.UpdateOccurrence(ctx, existing.ID, UpdateOccurrenceInput{Description: ptr("x")}, operator.ID)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestUpdateOccurrence_NotFound(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.UpdateOccurrence(ctx, id, UpdateOccurrenceInput{Description: ptr("x")}, uuid.New())

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "occurrence", notFoundErr.Entity)
}

func TestUpdateOccurrence_BlankRequiredField(t *testing.T) {
	svc, _ := newTestOccurrenceService(t)

	_, err := svc.UpdateOccurrence(context.Background(), uuid.New(), UpdateOccurrenceInput{Municipality: ptr("")}, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"municipality"}, validationErr.Fields)
}

func TestListOccurrences_OperatorForcedToOwnOccurrences(t *testing.T) {
	// Подготовка
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	page := &models.OccurrencePage{Items: []*models.Occurrence{newOccurrence(operator.ID)}, Total: 1}

	// Ожидания: переданный createdBy заменяется id оператора, аудита нет
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)
	deps.repo.EXPECT().
		FindWithFilters(ctx, models.OccurrenceFilters{
			Municipality: "recife",
			CreatedBy:    &operator.ID,
			Page:         1,
			Limit:        20,
		}).
		Return(page, nil).
		Times(1)
	deps.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.ListOccurrences(ctx, models.OccurrenceFilters{
		Municipality: "recife",
		CreatedBy:    ptr(uuid.New()),
	}, operator.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, page, result)
}

func TestListOccurrences_AdminSeesAllAndIsAudited(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	admin := newUser(models.RoleAdmin)
	page := &models.OccurrencePage{
		Items: []*models.Occurrence{newOccurrence(uuid.New()), newOccurrence(uuid.New())},
		Total: 42,
	}

	deps.users.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)
	deps.repo.EXPECT().
		FindWithFilters(ctx, models.OccurrenceFilters{Page: 1, Limit: 20}).
		Return(page, nil).
		Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionDownload, entry.Action)
			assert.Equal(t, models.EntityOccurrence, entry.Entity)
			assert.Nil(t, entry.EntityID)
			assert.Equal(t, 2, entry.Details["count"])
			assert.Equal(t, 42, entry.Details["total"])
			assert.Equal(t, models.OccurrenceFilters{Page: 1, Limit: 20}, entry.Details["filters"])
			return nil
		}).
		Times(1)

	result, err := svc.ListOccurrences(ctx, models.OccurrenceFilters{}, admin.ID)

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestListOccurrences_StartAfterEndRejected(t *testing.T) {
	svc, _ := newTestOccurrenceService(t)
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListOccurrences(context.Background(), models.OccurrenceFilters{StartDate: &start, EndDate: &end}, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"start_date", "end_date"}, validationErr.Fields)
}

func TestUpdateStatus_NotFoundWritesNoAudit(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	occurrence, err := svc.UpdateStatus(ctx, id, models.StatusClosed, uuid.New(), "")

	assert.Nil(t, occurrence)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, id.String(), notFoundErr.ID)
}

func TestUpdateStatus_AnyTransitionIsAudited(t *testing.T) {
	tests := []struct {
		name       string
		reason     string
		wantReason string
	}{
		{name: "default reason", reason: "", wantReason: "Atualização de status"},
		{name: "custom reason", reason: "Vítima removida", wantReason: "Vítima removida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestOccurrenceService(t)
			ctx := context.Background()
			actorID := uuid.New()
			existing := newOccurrence(uuid.New())
			existing.Status = models.StatusClosed

			deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
			deps.repo.EXPECT().UpdateStatus(ctx, existing.ID, models.StatusAlert).Return(nil).Times(1)
			deps.auditRepo.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
					assert.Equal(t, actorID, entry.UserID)
					assert.Equal(t, models.ActionUpdate, entry.Action)
					assert.Equal(t, map[string]models.FieldChange{
						"status": {From: models.StringValue("finalizado"), To: models.StringValue("alerta")},
					}, entry.Changes)
					assert.Equal(t, tt.wantReason, entry.Details["reason"])
					return nil
				}).
				Times(1)
			deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)
			deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
			deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

			updated, err := svc.UpdateStatus(ctx, existing.ID, models.StatusAlert, actorID, tt.reason)

			require.NoError(t, err)
			assert.Equal(t, models.StatusAlert, updated.Status)
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestOccurrenceService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "cancelado", uuid.New(), "")

	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "cancelado", enumErr.Value)
}

func TestGetOccurrence_FromCache(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	admin := newUser(models.RoleSupervisor)
	cached := newOccurrence(uuid.New())

	deps.repo.EXPECT().GetOccurrenceFromCache(ctx, cached.ID).Return(cached, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)

	occurrence, err := svc.GetOccurrence(ctx, cached.ID, admin.ID)

	require.NoError(t, err)
	assert.Equal(t, cached, occurrence)
}

func TestGetOccurrence_FromDBFillsCache(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	stored := newOccurrence(operator.ID)

	deps.repo.EXPECT().GetOccurrenceFromCache(ctx, stored.ID).Return(nil, errors.New("cache unavailable")).Times(1)
	deps.repo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Times(1)
	deps.repo.EXPECT().SetOccurrenceCache(ctx, stored).Return(nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)

	occurrence, err := svc.GetOccurrence(ctx, stored.ID, operator.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, occurrence)
}

func TestGetOccurrence_OperatorCannotReadOthers(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	cached := newOccurrence(uuid.New())

	deps.repo.EXPECT().GetOccurrenceFromCache(ctx, cached.ID).Return(cached, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)

	_, err := svc.GetOccurrence(ctx, cached.ID, operator.ID)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestDeleteOccurrence_OnlyAdmin(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	supervisor := newUser(models.RoleSupervisor)

	deps.users.EXPECT().GetByID(ctx, supervisor.ID).Return(supervisor, nil).Times(1)
	deps.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteOccurrence(ctx, uuid.New(), supervisor.ID)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestDeleteOccurrence_Success(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	admin := newUser(models.RoleAdmin)
	existing := newOccurrence(uuid.New())

	deps.users.EXPECT().GetByID(ctx, admin.ID).Return(admin, nil).Times(1)
	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.repo.EXPECT().Delete(ctx, existing.ID).Return(nil).Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionDelete, entry.Action)
			assert.Equal(t, existing.ID, *entry.EntityID)
			return nil
		}).
		Times(1)
	deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)
	deps.repo.EXPECT().InvalidateStatisticsCache(ctx).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.DeleteOccurrence(ctx, existing.ID, admin.ID))
}

func TestAddImage_AuditedAsUpdate(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)
	existing := newOccurrence(operator.ID)
	url := "https://cdn.local/img/1.jpg"

	deps.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)
	deps.repo.EXPECT().AddImage(ctx, gomock.Any()).Return(nil).Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionUpdate, entry.Action)
			assert.Equal(t, map[string]any{"image": url}, entry.Details)
			return nil
		}).
		Times(1)
	deps.repo.EXPECT().InvalidateOccurrenceCache(ctx, existing.ID).Return(nil).Times(1)

	img, err := svc.AddImage(ctx, existing.ID, url, "frente", operator.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, img.OccurrenceID)
	assert.Equal(t, url, img.URL)
}

func TestExportOccurrences_OperatorForbidden(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	operator := newUser(models.RoleOperator)

	deps.users.EXPECT().GetByID(ctx, operator.ID).Return(operator, nil).Times(1)

	_, err := svc.ExportOccurrences(ctx, models.OccurrenceFilters{}, operator.ID)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestExportOccurrences_AuditedAsReportDownload(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	supervisor := newUser(models.RoleSupervisor)
	items := []*models.Occurrence{newOccurrence(uuid.New())}

	deps.users.EXPECT().GetByID(ctx, supervisor.ID).Return(supervisor, nil).Times(1)
	deps.repo.EXPECT().
		FindAll(ctx, models.OccurrenceFilters{Type: models.TypeRescue}, ExportMaxRows).
		Return(items, nil).
		Times(1)
	deps.auditRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLog) error {
			assert.Equal(t, models.ActionDownload, entry.Action)
			assert.Equal(t, models.EntityReport, entry.Entity)
			assert.Equal(t, 1, entry.Details["count"])
			return nil
		}).
		Times(1)

	result, err := svc.ExportOccurrences(ctx, models.OccurrenceFilters{Type: models.TypeRescue, Page: 3, Limit: 10}, supervisor.ID)

	require.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestGetStatistics_MarchScenario(t *testing.T) {
	// Подготовка: одно происшествие "aberto" от 2024-03-10
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	filters := models.OccurrenceFilters{}

	// Ожидания
	deps.repo.EXPECT().GetStatisticsFromCache(ctx, filters).Return(nil, nil).Times(1)
	deps.repo.EXPECT().
		GetStatusCounts(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.OccurrenceFilters) (*models.StatusCounts, error) {
			if f.StartDate != nil {
				// подсчет за сегодня
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *f.StartDate)
				assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), *f.EndDate)
				return &models.StatusCounts{}, nil
			}
			return &models.StatusCounts{Total: 1, Open: 1}, nil
		}).
		Times(2)
	deps.repo.EXPECT().GetTypeCounts(ctx, filters).Return(map[models.OccurrenceType]int{models.TypeAccident: 1}, nil).Times(1)
	deps.repo.EXPECT().GetMunicipalityCounts(ctx, filters).Return([]models.MunicipalityCount{{Name: "Recife", Count: 1}}, nil).Times(1)
	deps.repo.EXPECT().GetMonthlyStats(ctx, filters).Return([]models.MonthlyCount{{Month: "Mar/24", Count: 1}}, nil).Times(1)
	deps.repo.EXPECT().SetStatisticsCache(ctx, filters, gomock.Any(), time.Minute).Return(nil).Times(1)

	// Действие
	stats := svc.GetStatistics(ctx, filters)

	// Проверки
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, models.StatusCounts{Total: 1, Open: 1}, stats.ByStatus)
	assert.Contains(t, stats.Monthly, models.MonthlyCount{Month: "Mar/24", Count: 1})
	assert.Equal(t, 1, stats.ByType[models.TypeAccident])
	assert.Equal(t, 0, stats.ByType[models.TypeFire])
	assert.Len(t, stats.ByType, len(models.OccurrenceTypes))
	assert.Equal(t, "0.00", stats.Summary.ResolutionRate)
	assert.Equal(t, "2.5h", stats.Summary.AverageResponseTime)
	assert.Equal(t, 0, stats.Summary.Today)
}

func TestGetStatistics_ZeroTotal(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetStatisticsFromCache(ctx, gomock.Any()).Return(nil, nil).Times(1)
	deps.repo.EXPECT().GetStatusCounts(ctx, gomock.Any()).Return(&models.StatusCounts{}, nil).Times(2)
	deps.repo.EXPECT().GetTypeCounts(ctx, gomock.Any()).Return(map[models.OccurrenceType]int{}, nil).Times(1)
	deps.repo.EXPECT().GetMunicipalityCounts(ctx, gomock.Any()).Return([]models.MunicipalityCount{}, nil).Times(1)
	deps.repo.EXPECT().GetMonthlyStats(ctx, gomock.Any()).Return([]models.MonthlyCount{}, nil).Times(1)
	deps.repo.EXPECT().SetStatisticsCache(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	stats := svc.GetStatistics(ctx, models.OccurrenceFilters{})

	assert.Equal(t, "0", stats.Summary.ResolutionRate)
	assert.Equal(t, 0, stats.Total)
}

func TestGetStatistics_FailureReturnsEmpty(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetStatisticsFromCache(ctx, gomock.Any()).Return(nil, nil).Times(1)
	deps.repo.EXPECT().GetStatusCounts(ctx, gomock.Any()).Return(&models.StatusCounts{Total: 3, Closed: 3}, nil).Times(1)
	deps.repo.EXPECT().GetTypeCounts(ctx, gomock.Any()).Return(nil, errors.New("db timeout")).Times(1)
	deps.repo.EXPECT().SetStatisticsCache(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	stats := svc.GetStatistics(ctx, models.OccurrenceFilters{})

	assert.Equal(t, models.EmptyStatistics(), stats)
	assert.Equal(t, "0h", stats.Summary.AverageResponseTime)
}

func TestGetStatistics_FromCache(t *testing.T) {
	svc, deps := newTestOccurrenceService(t)
	ctx := context.Background()
	cached := &models.Statistics{Total: 7}

	deps.repo.EXPECT().
		GetStatisticsFromCache(ctx, models.OccurrenceFilters{Municipality: "olinda"}).
		Return(cached, nil).
		Times(1)

	stats := svc.GetStatistics(ctx, models.OccurrenceFilters{Municipality: "olinda", Page: 2, Limit: 5})

	assert.Equal(t, cached, stats)
}

func TestResolutionRate(t *testing.T) {
	tests := []struct {
		closed, total int
		want          string
	}{
		{closed: 0, total: 0, want: "0"},
		{closed: 1, total: 3, want: "33.33"},
		{closed: 2, total: 3, want: "66.67"},
		{closed: 4, total: 4, want: "100.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolutionRate(tt.closed, tt.total))
	}
}
