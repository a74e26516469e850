package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks . AuditLogRepository,MunicipalityRepository,OccurrenceRepository,TokenRepository,UserRepository,VehicleRepository

const (
	// ExportMaxRows - верхняя граница строк в выгрузке отчета
	ExportMaxRows = 5000

	updateReasonManual  = "Atualização manual"
	updateReasonStatus  = "Atualização de status"
	averageResponseTime = "2.5h"
)

// OccurrenceRepository определяет контракт для работы с бд происшествий
type OccurrenceRepository interface {
	Create(ctx context.Context, o *models.Occurrence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	Update(ctx context.Context, o *models.Occurrence) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OccurrenceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddImage(ctx context.Context, img *models.OccurrenceImage) error
	FindWithFilters(ctx context.Context, filters models.OccurrenceFilters) (*models.OccurrencePage, error)
	FindAll(ctx context.Context, filters models.OccurrenceFilters, maxRows int) ([]*models.Occurrence, error)
	GetStatusCounts(ctx context.Context, filters models.OccurrenceFilters) (*models.StatusCounts, error)
	GetTypeCounts(ctx context.Context, filters models.OccurrenceFilters) (map[models.OccurrenceType]int, error)
	GetMunicipalityCounts(ctx context.Context, filters models.OccurrenceFilters) ([]models.MunicipalityCount, error)
	GetMonthlyStats(ctx context.Context, filters models.OccurrenceFilters) ([]models.MonthlyCount, error)
	GetOccurrenceFromCache(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	SetOccurrenceCache(ctx context.Context, o *models.Occurrence) error
	InvalidateOccurrenceCache(ctx context.Context, id uuid.UUID) error
	GetStatisticsFromCache(ctx context.Context, filters models.OccurrenceFilters) (*models.Statistics, error)
	SetStatisticsCache(ctx context.Context, filters models.OccurrenceFilters, stats *models.Statistics, ttl time.Duration) error
	InvalidateStatisticsCache(ctx context.Context) error
}

// OccurrenceService определяет контракт бизнес-логики происшествий
type OccurrenceService interface {
	CreateOccurrence(ctx context.Context, input CreateOccurrenceInput, actingUserID uuid.UUID) (*models.Occurrence, error)
	GetOccurrence(ctx context.Context, id, actingUserID uuid.UUID) (*models.Occurrence, error)
	UpdateOccurrence(ctx context.Context, id uuid.UUID, input UpdateOccurrenceInput, actingUserID uuid.UUID) (*models.Occurrence, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OccurrenceStatus, actingUserID uuid.UUID, reason string) (*models.Occurrence, error)
	DeleteOccurrence(ctx context.Context, id, actingUserID uuid.UUID) error
	AddImage(ctx context.Context, id uuid.UUID, url, description string, actingUserID uuid.UUID) (*models.OccurrenceImage, error)
	ListOccurrences(ctx context.Context, filters models.OccurrenceFilters, actingUserID uuid.UUID) (*models.OccurrencePage, error)
	ExportOccurrences(ctx context.Context, filters models.OccurrenceFilters, actingUserID uuid.UUID) ([]*models.Occurrence, error)
	GetStatistics(ctx context.Context, filters models.OccurrenceFilters) *models.Statistics
}

type occurrenceService struct {
	repo      OccurrenceRepository
	users     UserRepository
	vehicles  VehicleRepository
	audit     AuditRecorder
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewOccurrenceService(
	repo OccurrenceRepository,
	users UserRepository,
	vehicles VehicleRepository,
	audit AuditRecorder,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
) OccurrenceService {
	return &occurrenceService{
		repo:      repo,
		users:     users,
		vehicles:  vehicles,
		audit:     audit,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateOccurrence проверяет данные и создает происшествие от имени пользователя
func (s *occurrenceService) CreateOccurrence(ctx context.Context, input CreateOccurrenceInput, actingUserID uuid.UUID) (*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "occurrence",
		"method":  "CreateOccurrence",
		"user_id": actingUserID,
	})
	log.Info("Attempting to create a new occurrence")

	if missing := input.missingFields(); len(missing) > 0 {
		log.WithField("missing", missing).Warn("Occurrence validation failed")
		return nil, NewMissingFieldsError(missing)
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = models.StatusOpen
	}
	if err := validateStatus(input.Status); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}

	var vehicle *models.Vehicle
	if input.VehicleID != nil {
		vehicle, err = s.vehicles.GetByID(ctx, *input.VehicleID)
		if err != nil {
			log.WithError(err).Warn("Vehicle not found")
			return nil, notFound(err, "vehicle", input.VehicleID.String())
		}
	}

	occurrence := &models.Occurrence{
		Type:           input.Type,
		Status:         input.Status,
		Municipality:   strings.TrimSpace(input.Municipality),
		Neighborhood:   strings.TrimSpace(input.Neighborhood),
		Address:        strings.TrimSpace(input.Address),
		Description:    input.Description,
		VictimName:     input.VictimName,
		VehicleNumber:  input.VehicleNumber,
		OccurrenceDate: *input.OccurrenceDate,
		ActivationDate: *input.ActivationDate,
		VehicleID:      input.VehicleID,
		Vehicle:        vehicle,
		CreatedByID:    user.ID,
		CreatedBy:      user,
		Images:         []models.OccurrenceImage{},
	}
	if err := s.repo.Create(ctx, occurrence); err != nil {
		log.WithError(err).Error("Failed to create occurrence in repository")
		return nil, fmt.Errorf("service: could not create occurrence: %w", err)
	}

	err = s.audit.LogAction(ctx, AuditEntry{
		UserID:   user.ID,
		Action:   models.ActionCreate,
		Entity:   models.EntityOccurrence,
		EntityID: &occurrence.ID,
		Details: map[string]any{
			"type":         occurrence.Type,
			"municipality": occurrence.Municipality,
			"status":       occurrence.Status,
		},
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStatistics(ctx, log)
	s.publish(ctx, log, webhook.WebhookEvent{
		Event:        webhook.EventOccurrenceCreated,
		OccurrenceID: occurrence.ID,
		ActorID:      user.ID,
		Occurrence:   occurrence,
	})

	log.WithField("occurrence_id", occurrence.ID).Info("Occurrence created successfully")
	return occurrence, nil
}

// GetOccurrence возвращает происшествие. Оператор видит только свои.
func (s *occurrenceService) GetOccurrence(ctx context.Context, id, actingUserID uuid.UUID) (*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "GetOccurrence",
		"occurrence_id": id,
	})
	log.Info("Fetching occurrence by ID")

	occurrence, err := s.loadOccurrence(ctx, log, id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if !canModify(user, occurrence) {
		log.Warn("Operator attempted to read another user's occurrence")
		return nil, &PermissionError{Action: "read occurrence"}
	}

	log.Info("Occurrence fetched successfully")
	return occurrence, nil
}

// loadOccurrence сначала смотрит в кеш, при промахе идет в бд и заполняет кеш
func (s *occurrenceService) loadOccurrence(ctx context.Context, log *logrus.Entry, id uuid.UUID) (*models.Occurrence, error) {
	cached, err := s.repo.GetOccurrenceFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read occurrence from cache")
	}
	if cached != nil {
		log.Debug("Occurrence served from cache")
		return cached, nil
	}

	occurrence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get occurrence from repository")
		return nil, notFound(err, "occurrence", id.String())
	}
	if err := s.repo.SetOccurrenceCache(ctx, occurrence); err != nil {
		log.WithError(err).Warn("Failed to store occurrence in cache")
	}
	return occurrence, nil
}

// UpdateOccurrence применяет частичное обновление. Запись аудита пишется только
// если изменилось хотя бы одно отслеживаемое поле.
func (s *occurrenceService) UpdateOccurrence(ctx context.Context, id uuid.UUID, input UpdateOccurrenceInput, actingUserID uuid.UUID) (*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "UpdateOccurrence",
		"occurrence_id": id,
		"user_id":       actingUserID,
	})
	log.Info("Attempting to update occurrence")

	if blank := input.blankFields(); len(blank) > 0 {
		return nil, NewMissingFieldsError(blank)
	}
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
	}
	if input.ClearVehicle && input.VehicleID != nil {
		return nil, &ValidationError{
			Fields:  []string{"vehicle_id", "clear_vehicle"},
			Message: "vehicle_id and clear_vehicle cannot be used together",
		}
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent occurrence")
		return nil, notFound(err, "occurrence", id.String())
	}

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if !canModify(user, existing) {
		log.Warn("Permission denied for occurrence update")
		return nil, &PermissionError{Action: "update occurrence"}
	}

	if input.VehicleID != nil {
		vehicle, err := s.vehicles.GetByID(ctx, *input.VehicleID)
		if err != nil {
			log.WithError(err).Warn("Vehicle not found")
			return nil, notFound(err, "vehicle", input.VehicleID.String())
		}
		existing.Vehicle = vehicle
	}

	changes := diffWatchedFields(existing, input)
	applyUpdate(existing, input)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update occurrence in repository")
		return nil, fmt.Errorf("service: could not update occurrence: %w", notFound(err, "occurrence", id.String()))
	}

	if len(changes) > 0 {
		err := s.audit.LogAction(ctx, AuditEntry{
			UserID:   user.ID,
			Action:   models.ActionUpdate,
			Entity:   models.EntityOccurrence,
			EntityID: &existing.ID,
			Changes:  changes,
			Details:  map[string]any{"reason": updateReasonManual},
		})
		if err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, log, id)
	s.publish(ctx, log, webhook.WebhookEvent{
		Event:        webhook.EventOccurrenceUpdated,
		OccurrenceID: id,
		ActorID:      user.ID,
		Occurrence:   existing,
		Changes:      changes,
	})

	log.WithField("changed_fields", len(changes)).Info("Occurrence updated successfully")
	return existing, nil
}

// UpdateStatus меняет статус без проверки прав: достаточно существования происшествия.
// Допустим переход из любого статуса в любой.
func (s *occurrenceService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OccurrenceStatus, actingUserID uuid.UUID, reason string) (*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "UpdateStatus",
		"occurrence_id": id,
		"status":        status,
	})
	log.Info("Attempting to update occurrence status")

	if err := validateStatus(status); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent occurrence")
		return nil, notFound(err, "occurrence", id.String())
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update occurrence status in repository")
		return nil, fmt.Errorf("service: could not update occurrence status: %w", notFound(err, "occurrence", id.String()))
	}

	if strings.TrimSpace(reason) == "" {
		reason = updateReasonStatus
	}
	changes := map[string]models.FieldChange{
		fieldStatus: {From: models.StringValue(string(existing.Status)), To: models.StringValue(string(status))},
	}
	err = s.audit.LogAction(ctx, AuditEntry{
		UserID:   actingUserID,
		Action:   models.ActionUpdate,
		Entity:   models.EntityOccurrence,
		EntityID: &existing.ID,
		Changes:  changes,
		Details:  map[string]any{"reason": reason},
	})
	if err != nil {
		return nil, err
	}

	existing.Status = status
	s.invalidate(ctx, log, id)
	s.publish(ctx, log, webhook.WebhookEvent{
		Event:        webhook.EventOccurrenceStatusChanged,
		OccurrenceID: id,
		ActorID:      actingUserID,
		Occurrence:   existing,
		Changes:      changes,
	})

	log.Info("Occurrence status updated successfully")
	return existing, nil
}

// DeleteOccurrence доступно только администратору
func (s *occurrenceService) DeleteOccurrence(ctx context.Context, id, actingUserID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "DeleteOccurrence",
		"occurrence_id": id,
		"user_id":       actingUserID,
	})
	log.Info("Attempting to delete occurrence")

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return notFound(err, "user", actingUserID.String())
	}
	if user.Role != models.RoleAdmin {
		log.Warn("Permission denied for occurrence delete")
		return &PermissionError{Action: "delete occurrence"}
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent occurrence")
		return notFound(err, "occurrence", id.String())
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete occurrence in repository")
		return fmt.Errorf("service: could not delete occurrence: %w", notFound(err, "occurrence", id.String()))
	}

	err = s.audit.LogAction(ctx, AuditEntry{
		UserID:   user.ID,
		Action:   models.ActionDelete,
		Entity:   models.EntityOccurrence,
		EntityID: &existing.ID,
		Details: map[string]any{
			"type":         existing.Type,
			"municipality": existing.Municipality,
			"status":       existing.Status,
		},
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, log, id)
	s.publish(ctx, log, webhook.WebhookEvent{
		Event:        webhook.EventOccurrenceDeleted,
		OccurrenceID: id,
		ActorID:      user.ID,
	})

	log.Info("Occurrence deleted successfully")
	return nil
}

// AddImage прикрепляет изображение. Права те же, что и на редактирование.
func (s *occurrenceService) AddImage(ctx context.Context, id uuid.UUID, url, description string, actingUserID uuid.UUID) (*models.OccurrenceImage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "AddImage",
		"occurrence_id": id,
	})

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, NewMissingFieldsError([]string{"url"})
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to add image to a non-existent occurrence")
		return nil, notFound(err, "occurrence", id.String())
	}
	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if !canModify(user, existing) {
		return nil, &PermissionError{Action: "add occurrence image"}
	}

	img := &models.OccurrenceImage{
		OccurrenceID: id,
		URL:          url,
		Description:  description,
	}
	if err := s.repo.AddImage(ctx, img); err != nil {
		log.WithError(err).Error("Failed to add image in repository")
		return nil, fmt.Errorf("service: could not add occurrence image: %w", err)
	}

	err = s.audit.LogAction(ctx, AuditEntry{
		UserID:   user.ID,
		Action:   models.ActionUpdate,
		Entity:   models.EntityOccurrence,
		EntityID: &existing.ID,
		Details:  map[string]any{"image": url},
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.InvalidateOccurrenceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate occurrence cache")
	}

	log.WithField("image_id", img.ID).Info("Occurrence image added successfully")
	return img, nil
}

// ListOccurrences возвращает страницу происшествий. Для оператора фильтр по автору
// принудительно равен его id. Просмотр администратором или супервизором пишется в аудит.
func (s *occurrenceService) ListOccurrences(ctx context.Context, filters models.OccurrenceFilters, actingUserID uuid.UUID) (*models.OccurrencePage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "occurrence",
		"method":  "ListOccurrences",
		"user_id": actingUserID,
	})
	log.Info("Listing occurrences")

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if !user.Role.SeesAll() {
		ownerID := user.ID
		filters.CreatedBy = &ownerID
	}
	filters = filters.Normalize()

	page, err := s.repo.FindWithFilters(ctx, filters)
	if err != nil {
		log.WithError(err).Error("Failed to list occurrences from repository")
		return nil, fmt.Errorf("service: could not list occurrences: %w", err)
	}

	if user.Role.SeesAll() {
		err := s.audit.LogAction(ctx, AuditEntry{
			UserID: user.ID,
			Action: models.ActionDownload,
			Entity: models.EntityOccurrence,
			Details: map[string]any{
				"filters": filters,
				"count":   len(page.Items),
				"total":   page.Total,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	log.WithField("count", len(page.Items)).Info("Occurrences listed successfully")
	return page, nil
}

// ExportOccurrences возвращает все подходящие происшествия (не более ExportMaxRows) для отчета
func (s *occurrenceService) ExportOccurrences(ctx context.Context, filters models.OccurrenceFilters, actingUserID uuid.UUID) ([]*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "occurrence",
		"method":  "ExportOccurrences",
		"user_id": actingUserID,
	})
	log.Info("Exporting occurrences")

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if !user.Role.SeesAll() {
		return nil, &PermissionError{Action: "export occurrences"}
	}
	filters.Page, filters.Limit = 0, 0

	items, err := s.repo.FindAll(ctx, filters, ExportMaxRows)
	if err != nil {
		log.WithError(err).Error("Failed to export occurrences from repository")
		return nil, fmt.Errorf("service: could not export occurrences: %w", err)
	}

	err = s.audit.LogAction(ctx, AuditEntry{
		UserID: user.ID,
		Action: models.ActionDownload,
		Entity: models.EntityReport,
		Details: map[string]any{
			"filters": filters,
			"count":   len(items),
		},
	})
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(items)).Info("Occurrences exported successfully")
	return items, nil
}

// GetStatistics никогда не возвращает ошибку: при любом сбое отдается нулевая статистика
func (s *occurrenceService) GetStatistics(ctx context.Context, filters models.OccurrenceFilters) *models.Statistics {
	log := s.logger.WithFields(logrus.Fields{
		"service": "occurrence",
		"method":  "GetStatistics",
	})
	filters.Page, filters.Limit = 0, 0

	cached, err := s.repo.GetStatisticsFromCache(ctx, filters)
	if err != nil {
		log.WithError(err).Warn("Failed to read statistics from cache")
	}
	if cached != nil {
		log.Debug("Statistics served from cache")
		return cached
	}

	stats, err := s.computeStatistics(ctx, log, filters)
	if err != nil {
		log.WithError(err).Error("Failed to compute statistics, returning empty result")
		return models.EmptyStatistics()
	}

	if err := s.repo.SetStatisticsCache(ctx, filters, stats, s.cfg.CacheTTL); err != nil {
		log.WithError(err).Warn("Failed to store statistics in cache")
	}
	return stats
}

func (s *occurrenceService) computeStatistics(ctx context.Context, log *logrus.Entry, filters models.OccurrenceFilters) (*models.Statistics, error) {
	statusCounts, err := s.repo.GetStatusCounts(ctx, filters)
	if err != nil {
		return nil, err
	}
	typeCounts, err := s.repo.GetTypeCounts(ctx, filters)
	if err != nil {
		return nil, err
	}
	municipalityCounts, err := s.repo.GetMunicipalityCounts(ctx, filters)
	if err != nil {
		return nil, err
	}
	monthly, err := s.repo.GetMonthlyStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	byType := make(map[models.OccurrenceType]int, len(models.OccurrenceTypes))
	for _, t := range models.OccurrenceTypes {
		byType[t] = 0
	}
	for t, n := range typeCounts {
		byType[t] = n
	}

	return &models.Statistics{
		Total:          statusCounts.Total,
		ByStatus:       *statusCounts,
		ByType:         byType,
		ByMunicipality: municipalityCounts,
		Monthly:        monthly,
		Summary: models.StatisticsSummary{
			ResolutionRate:      resolutionRate(statusCounts.Closed, statusCounts.Total),
			AverageResponseTime: averageResponseTime,
			Today:               s.todayCount(ctx, log, filters),
		},
	}, nil
}

// todayCount повторяет подсчет по статусам с диапазоном дат [начало сегодня, начало завтра].
// Ошибка здесь не ломает статистику, возвращается 0.
func (s *occurrenceService) todayCount(ctx context.Context, log *logrus.Entry, filters models.OccurrenceFilters) int {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	filters.StartDate = &start
	filters.EndDate = &end

	counts, err := s.repo.GetStatusCounts(ctx, filters)
	if err != nil {
		log.WithError(err).Warn("Failed to count today's occurrences")
		return 0
	}
	return counts.Total
}

// resolutionRate - доля закрытых в процентах с двумя знаками, "0" при пустой выборке
func resolutionRate(closed, total int) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", float64(closed)/float64(total)*100)
}

// canModify - админ и супервизор могут все, остальные только свое
func canModify(user *models.User, o *models.Occurrence) bool {
	return user.Role.SeesAll() || o.CreatedByID == user.ID
}

// validateFilters проверяет перечисления и диапазон дат
func validateFilters(f models.OccurrenceFilters) error {
	if f.Type != "" {
		if err := validateType(f.Type); err != nil {
			return err
		}
	}
	if f.Status != "" {
		if err := validateStatus(f.Status); err != nil {
			return err
		}
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return &ValidationError{
			Fields:  []string{"start_date", "end_date"},
			Message: "start_date must not be after end_date",
		}
	}
	return nil
}

func (s *occurrenceService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateOccurrenceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate occurrence cache")
	}
	s.invalidateStatistics(ctx, log)
}

func (s *occurrenceService) invalidateStatistics(ctx context.Context, log *logrus.Entry) {
	if err := s.repo.InvalidateStatisticsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate statistics cache")
	}
}

// publish отправляет событие в очередь вебхуков. Ошибка только логируется.
func (s *occurrenceService) publish(ctx context.Context, log *logrus.Entry, event webhook.WebhookEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Event).Warn("Failed to publish webhook event")
	}
}
