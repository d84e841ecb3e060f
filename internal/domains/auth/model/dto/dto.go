package dto

import (
	"hostel/internal/domains/user/model"
	"strings"
)

const MinPasswordLength = 6

type RegisterRequest struct {
	Name     string `json:"name"     validate:"notblank"`
	Email    string `json:"email"    validate:"notblank"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the form and lowercases the email. The password is kept verbatim.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *RegisterRequest) ToModel(createdAt string) model.User {
	return model.User{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
		CreatedAt: createdAt,
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string        `json:"message"`
	User    model.Profile `json:"user"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
