package models

import (
	"time"

	"github.com/google/uuid"
)

// OccurrenceType - тип происшествия
type OccurrenceType string

const (
	TypeAccident      OccurrenceType = "acidente"
	TypeRescue        OccurrenceType = "resgate"
	TypeFire          OccurrenceType = "incendio"
	TypePedestrianHit OccurrenceType = "atropelamento"
	TypeOther         OccurrenceType = "outros"
)

// OccurrenceTypes - все допустимые типы в порядке отображения
var OccurrenceTypes = []OccurrenceType{TypeAccident, TypeRescue, TypeFire, TypePedestrianHit, TypeOther}

func (t OccurrenceType) Valid() bool {
	for _, v := range OccurrenceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// OccurrenceStatus - статус происшествия. Переход возможен из любого статуса в любой.
type OccurrenceStatus string

const (
	StatusOpen       OccurrenceStatus = "aberto"
	StatusInProgress OccurrenceStatus = "em_andamento"
	StatusClosed     OccurrenceStatus = "finalizado"
	StatusAlert      OccurrenceStatus = "alerta"
)

var OccurrenceStatuses = []OccurrenceStatus{StatusOpen, StatusInProgress, StatusClosed, StatusAlert}

func (s OccurrenceStatus) Valid() bool {
	for _, v := range OccurrenceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Occurrence struct {
	ID             uuid.UUID         `json:"id"`
	Type           OccurrenceType    `json:"type"`
	Status         OccurrenceStatus  `json:"status"`
	Municipality   string            `json:"municipality"`
	Neighborhood   string            `json:"neighborhood"`
	Address        string            `json:"address"`
	Description    string            `json:"description"`
	VictimName     string            `json:"victim_name"`
	VehicleNumber  string            `json:"vehicle_number"`
	OccurrenceDate time.Time         `json:"occurrence_date"`
	ActivationDate time.Time         `json:"activation_date"`
	VehicleID      *uuid.UUID        `json:"vehicle_id,omitempty"`
	Vehicle        *Vehicle          `json:"vehicle,omitempty"`
	CreatedByID    uuid.UUID         `json:"created_by_id"`
	CreatedBy      *User             `json:"created_by,omitempty"`
	Images         []OccurrenceImage `json:"images"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// OccurrenceImage - изображение, прикрепленное к происшествию
type OccurrenceImage struct {
	ID           uuid.UUID `json:"id"`
	OccurrenceID uuid.UUID `json:"occurrence_id"`
	URL          string    `json:"url"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
