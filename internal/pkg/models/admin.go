package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator of the management console
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password"`
	IsSuperAdmin bool      `json:"isSuperAdmin" db:"is_super_admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// LoginRequest is the console login body; Identifier is an email or a name
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful admin login
type AuthResponse struct {
	Token        string `json:"token"`
	AdminID      string `json:"adminId"`
	Name         string `json:"name"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// CreateAdminRequest is gated by the admin secret
type CreateAdminRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	PhoneNumber  string `json:"phoneNumber"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	Secret       string `json:"secret" validate:"required"`
}

// UpdatePasswordRequest is gated by the admin secret
type UpdatePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
	Secret      string `json:"secret" validate:"required"`
}
