package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// RegisterRequest is the payload for creating a staff user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin cashier"`
}

// SignupRequest is the public self-registration payload. The role is not
// client-controlled: signups become cashiers, except the very first account
// on a fresh install, which becomes the admin.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the external representation of a staff user.
type UserResponse struct {
	UserID   string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// LoginResponse carries the issued token and the signed-in user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse maps a domain user to its response form.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Username: u.Username,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
