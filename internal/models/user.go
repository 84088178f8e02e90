package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role the admin panel knows.
const RoleAdmin = "admin"

// AdminUser is an account allowed to manage projects.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name" validate:"required"`
	Role         string    `gorm:"not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
