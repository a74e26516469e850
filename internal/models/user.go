package models

import (
	"time"

	"github.com/google/uuid"
)

// Role определяет область видимости пользователя над происшествиями
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleOperator   Role = "operator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleOperator:
		return true
	}
	return false
}

// SeesAll возвращает true для ролей, которым видны происшествия всех пользователей
func (r Role) SeesAll() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Registration string    `json:"registration,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
