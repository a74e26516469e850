package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

// ValidationError - отсутствуют обязательные поля или входные данные некорректны.
// Fields перечисляет все проблемные поля сразу.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
	}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Action)
}

// InvalidEnumError - значение не входит в перечисление
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q, allowed values: %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken - токен не прошел проверку или отозван
var ErrInvalidToken = errors.New("invalid token")

// notFound переводит models.ErrNotFound репозитория в NotFoundError
func notFound(err error, entity, id string) error {
	if errors.Is(err, models.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("service: could not load %s: %w", entity, err)
}

func allowedTypes() []string {
	out := make([]string, len(models.OccurrenceTypes))
	for i, t := range models.OccurrenceTypes {
		out[i] = string(t)
	}
	return out
}

func allowedStatuses() []string {
	out := make([]string, len(models.OccurrenceStatuses))
	for i, s := range models.OccurrenceStatuses {
		out[i] = string(s)
	}
	return out
}

func validateType(t models.OccurrenceType) error {
	if !t.Valid() {
		return &InvalidEnumError{Field: "type", Value: string(t), Allowed: allowedTypes()}
	}
	return nil
}

func validateStatus(s models.OccurrenceStatus) error {
	if !s.Valid() {
		return &InvalidEnumError{Field: "status", Value: string(s), Allowed: allowedStatuses()}
	}
	return nil
}
