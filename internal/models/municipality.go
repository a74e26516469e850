package models

import "github.com/google/uuid"

// Municipality - справочник муниципалитетов, ядром не изменяется
type Municipality struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}
