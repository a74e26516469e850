package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AuditLogRepository определяет контракт для журнала аудита. Записи только добавляются.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	Search(ctx context.Context, filters models.AuditLogFilters) ([]*models.AuditLog, int, error)
}

// AuditEntry - событие для записи в журнал
type AuditEntry struct {
	UserID   uuid.UUID
	Action   models.AuditAction
	Entity   models.AuditEntity
	EntityID *uuid.UUID
	Changes  map[string]models.FieldChange
	Details  map[string]any
}

// AuditRecorder записывает одно событие аудита на каждый вызов
type AuditRecorder interface {
	LogAction(ctx context.Context, entry AuditEntry) error
}

// AuditService - запись и просмотр журнала аудита
type AuditService interface {
	AuditRecorder
	SearchAuditLogs(ctx context.Context, filters models.AuditLogFilters, actingUserID uuid.UUID) (*models.AuditLogPage, error)
}

type auditService struct {
	repo   AuditLogRepository
	users  UserRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAuditService(repo AuditLogRepository, users UserRepository, logger *logrus.Logger) AuditService {
	return &auditService{
		repo:   repo,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// LogAction добавляет одну запись. Повторных попыток нет, ошибка возвращается вызывающему.
func (s *auditService) LogAction(ctx context.Context, entry AuditEntry) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "audit",
		"method":  "LogAction",
		"user_id": entry.UserID,
		"action":  entry.Action,
		"entity":  entry.Entity,
	})

	record := &models.AuditLog{
		ID:        uuid.New(),
		UserID:    entry.UserID,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Changes:   entry.Changes,
		Details:   entry.Details,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		log.WithError(err).Error("Failed to write audit log")
		return fmt.Errorf("service: could not record audit log: %w", err)
	}

	log.WithField("audit_id", record.ID).Debug("Audit log recorded")
	return nil
}

// SearchAuditLogs доступен только администратору
func (s *auditService) SearchAuditLogs(ctx context.Context, filters models.AuditLogFilters, actingUserID uuid.UUID) (*models.AuditLogPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "audit",
		"method":  "SearchAuditLogs",
		"user_id": actingUserID,
	})

	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		log.WithError(err).Warn("Acting user not found")
		return nil, notFound(err, "user", actingUserID.String())
	}
	if user.Role != models.RoleAdmin {
		log.Warn("Non-admin attempted to read audit logs")
		return nil, &PermissionError{Action: "read audit logs"}
	}
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return nil, &ValidationError{Fields: []string{"from", "to"}, Message: "from must not be after to"}
	}

	items, total, err := s.repo.Search(ctx, filters)
	if err != nil {
		log.WithError(err).Error("Failed to search audit logs in repository")
		return nil, fmt.Errorf("service: could not search audit logs: %w", err)
	}

	log.WithField("total", total).Info("Audit logs listed successfully")
	return &models.AuditLogPage{Items: items, Total: total}, nil
}
