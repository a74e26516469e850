package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

// Ключи отслеживаемых полей в журнале аудита
const (
	fieldType          = "type"
	fieldMunicipality  = "municipality"
	fieldStatus        = "status"
	fieldVictimName    = "victimName"
	fieldVehicleNumber = "vehicleNumber"
	fieldDescription   = "description"
)

// CreateOccurrenceInput - данные для создания происшествия
type CreateOccurrenceInput struct {
	Type           models.OccurrenceType
	Status         models.OccurrenceStatus
	Municipality   string
	Neighborhood   string
	Address        string
	Description    string
	VictimName     string
	VehicleNumber  string
	OccurrenceDate *time.Time
	ActivationDate *time.Time
	VehicleID      *uuid.UUID
}

// missingFields возвращает все незаполненные обязательные поля в фиксированном порядке
func (in CreateOccurrenceInput) missingFields() []string {
	var missing []string
	if strings.TrimSpace(string(in.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.Municipality) == "" {
		missing = append(missing, "municipality")
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if in.OccurrenceDate == nil || in.OccurrenceDate.IsZero() {
		missing = append(missing, "occurrence_date")
	}
	if in.ActivationDate == nil || in.ActivationDate.IsZero() {
		missing = append(missing, "activation_date")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}

// UpdateOccurrenceInput - частичное обновление. nil означает, что поле не передано.
type UpdateOccurrenceInput struct {
	Type           *models.OccurrenceType
	Status         *models.OccurrenceStatus
	Municipality   *string
	Neighborhood   *string
	Address        *string
	Description    *string
	VictimName     *string
	VehicleNumber  *string
	OccurrenceDate *time.Time
	ActivationDate *time.Time
	VehicleID      *uuid.UUID
	// ClearVehicle отвязывает машину. Не сочетается с VehicleID.
	ClearVehicle bool
}

// blankFields возвращает обязательные поля, переданные пустыми
func (in UpdateOccurrenceInput) blankFields() []string {
	var blank []string
	if in.Type != nil && strings.TrimSpace(string(*in.Type)) == "" {
		blank = append(blank, "type")
	}
	if in.Municipality != nil && strings.TrimSpace(*in.Municipality) == "" {
		blank = append(blank, "municipality")
	}
	if in.Address != nil && strings.TrimSpace(*in.Address) == "" {
		blank = append(blank, "address")
	}
	if in.OccurrenceDate != nil && in.OccurrenceDate.IsZero() {
		blank = append(blank, "occurrence_date")
	}
	if in.ActivationDate != nil && in.ActivationDate.IsZero() {
		blank = append(blank, "activation_date")
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		blank = append(blank, "description")
	}
	return blank
}

// diffWatchedFields сравнивает переданные отслеживаемые поля с текущими значениями.
// В результат попадают только переданные и отличающиеся поля.
func diffWatchedFields(current *models.Occurrence, in UpdateOccurrenceInput) map[string]models.FieldChange {
	changes := make(map[string]models.FieldChange)
	addString := func(key, from string, to *string) {
		if to != nil && *to != from {
			changes[key] = models.FieldChange{From: models.StringValue(from), To: models.StringValue(*to)}
		}
	}

	if in.Type != nil {
		addString(fieldType, string(current.Type), (*string)(in.Type))
	}
	addString(fieldMunicipality, current.Municipality, in.Municipality)
	if in.Status != nil {
		addString(fieldStatus, string(current.Status), (*string)(in.Status))
	}
	addString(fieldVictimName, current.VictimName, in.VictimName)
	addString(fieldVehicleNumber, current.VehicleNumber, in.VehicleNumber)
	addString(fieldDescription, current.Description, in.Description)
	return changes
}

// applyUpdate переносит переданные поля в происшествие
func applyUpdate(o *models.Occurrence, in UpdateOccurrenceInput) {
	if in.Type != nil {
		o.Type = *in.Type
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.Municipality != nil {
		o.Municipality = *in.Municipality
	}
	if in.Neighborhood != nil {
		o.Neighborhood = *in.Neighborhood
	}
	if in.Address != nil {
		o.Address = *in.Address
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.VictimName != nil {
		o.VictimName = *in.VictimName
	}
	if in.VehicleNumber != nil {
		o.VehicleNumber = *in.VehicleNumber
	}
	if in.OccurrenceDate != nil {
		o.OccurrenceDate = *in.OccurrenceDate
	}
	if in.ActivationDate != nil {
		o.ActivationDate = *in.ActivationDate
	}
	if in.VehicleID != nil {
		o.VehicleID = in.VehicleID
	}
	if in.ClearVehicle {
		o.VehicleID = nil
		o.Vehicle = nil
	}
}
