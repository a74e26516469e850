package models

import "github.com/google/uuid"

type Vehicle struct {
	ID     uuid.UUID `json:"id"`
	Plate  string    `json:"plate"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}
