package response

import (
	"time"

	"videogen-portal/internal/data/entity"
)

type RegisterResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

type AuthResponse struct {
	UserID      string    `json:"user_id"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"company_name,omitempty"`
	Role        *string   `json:"role,omitempty"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Role:        user.Role,
		IsConfirmed: user.IsConfirmed,
		CreatedAt:   user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		IsConfirmed: user.IsConfirmed,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
