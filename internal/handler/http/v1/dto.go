package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

// LoginRequest DTO для входа в систему
// @Description DTO для входа в систему
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с выданным токеном
// @Description DTO с выданным токеном
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         models.Role `json:"role"`
	Registration string      `json:"registration,omitempty"`
	Unit         string      `json:"unit,omitempty"`
}

// CreateOccurrenceRequest DTO для регистрации происшествия.
// Обязательность полей проверяет сервис, чтобы вернуть их полный список.
// @Description DTO для регистрации происшествия
type CreateOccurrenceRequest struct {
	Type           string     `json:"type" validate:"omitempty,max=50"`
	Status         string     `json:"status,omitempty" validate:"omitempty,max=50"`
	Municipality   string     `json:"municipality" validate:"omitempty,max=100"`
	Neighborhood   string     `json:"neighborhood,omitempty" validate:"omitempty,max=100"`
	Address        string     `json:"address" validate:"omitempty,max=255"`
	Description    string     `json:"description" validate:"omitempty,max=5000"`
	VictimName     string     `json:"victim_name,omitempty" validate:"omitempty,max=255"`
	VehicleNumber  string     `json:"vehicle_number,omitempty" validate:"omitempty,max=50"`
	OccurrenceDate *time.Time `json:"occurrence_date"`
	ActivationDate *time.Time `json:"activation_date"`
	VehicleID      *uuid.UUID `json:"vehicle_id,omitempty"`
}

// UpdateOccurrenceRequest DTO для частичного обновления. Отсутствующие поля не меняются.
// @Description DTO для частичного обновления происшествия
type UpdateOccurrenceRequest struct {
	Type           *string    `json:"type,omitempty" validate:"omitempty,max=50"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,max=50"`
	Municipality   *string    `json:"municipality,omitempty" validate:"omitempty,max=100"`
	Neighborhood   *string    `json:"neighborhood,omitempty" validate:"omitempty,max=100"`
	Address        *string    `json:"address,omitempty" validate:"omitempty,max=255"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	VictimName     *string    `json:"victim_name,omitempty" validate:"omitempty,max=255"`
	VehicleNumber  *string    `json:"vehicle_number,omitempty" validate:"omitempty,max=50"`
	OccurrenceDate *time.Time `json:"occurrence_date,omitempty"`
	ActivationDate *time.Time `json:"activation_date,omitempty"`
	VehicleID      *uuid.UUID `json:"vehicle_id,omitempty"`
	ClearVehicle   bool       `json:"clear_vehicle,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// AddImageRequest DTO для прикрепления изображения
// @Description DTO для прикрепления изображения
type AddImageRequest struct {
	URL         string `json:"url" validate:"required,url,max=2048"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// ImageResponse DTO изображения происшествия
// @Description DTO изображения происшествия
type ImageResponse struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VehicleResponse DTO машины
// @Description DTO машины
type VehicleResponse struct {
	ID     uuid.UUID `json:"id"`
	Plate  string    `json:"plate"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// MunicipalityResponse DTO муниципалитета
// @Description DTO муниципалитета
type MunicipalityResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// OccurrenceResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type OccurrenceResponse struct {
	ID             uuid.UUID               `json:"id"`
	Type           models.OccurrenceType   `json:"type"`
	Status         models.OccurrenceStatus `json:"status"`
	Municipality   string                  `json:"municipality"`
	Neighborhood   string                  `json:"neighborhood,omitempty"`
	Address        string                  `json:"address"`
	Description    string                  `json:"description"`
	VictimName     string                  `json:"victim_name,omitempty"`
	VehicleNumber  string                  `json:"vehicle_number,omitempty"`
	OccurrenceDate time.Time               `json:"occurrence_date"`
	ActivationDate time.Time               `json:"activation_date"`
	Vehicle        *VehicleResponse        `json:"vehicle,omitempty"`
	CreatedBy      *UserResponse           `json:"created_by,omitempty"`
	Images         []ImageResponse         `json:"images"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// OccurrenceListResponse DTO страницы происшествий
// @Description DTO страницы происшествий
type OccurrenceListResponse struct {
	Occurrences []*OccurrenceResponse `json:"occurrences"`
	Total       int                   `json:"total"`
	Page        int                   `json:"page"`
	Limit       int                   `json:"limit"`
	TotalPages  int                   `json:"total_pages"`
	Counts      models.StatusCounts   `json:"counts"`
}

// AuditLogResponse DTO записи журнала аудита
// @Description DTO записи журнала аудита
type AuditLogResponse struct {
	ID        uuid.UUID                     `json:"id"`
	UserID    uuid.UUID                     `json:"user_id"`
	Action    models.AuditAction            `json:"action"`
	Entity    models.AuditEntity            `json:"entity"`
	EntityID  *uuid.UUID                    `json:"entity_id,omitempty"`
	Changes   map[string]models.FieldChange `json:"changes,omitempty"`
	Details   map[string]any                `json:"details,omitempty"`
	CreatedAt time.Time                     `json:"created_at"`
}

// AuditLogListResponse DTO страницы журнала аудита
// @Description DTO страницы журнала аудита
type AuditLogListResponse struct {
	Items    []*AuditLogResponse `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}
