package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя платформы
type Role string

const (
	RoleCitizen       Role = "citizen"
	RolePoliceOfficer Role = "police_officer"
	RoleAdmin         Role = "admin"
	RoleAnalyst       Role = "analyst"
	RoleDispatcher    Role = "dispatcher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RolePoliceOfficer, RoleAdmin, RoleAnalyst, RoleDispatcher:
		return true
	}
	return false
}

// User используется только для аналитики по сотрудникам и вовлеченности
type User struct {
	ID        uuid.UUID  `json:"id"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
