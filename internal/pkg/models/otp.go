package models

import (
	"time"
)

// OTP is a one-time login code issued to an admin phone
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPRequest asks for a login code
type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OTPVerifyRequest exchanges a code for a session
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,numeric"`
}

// OTPIssued tells the caller when the code stops working
type OTPIssued struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expiresAt"`
	ResendIn  int       `json:"resendIn"` // seconds
}
