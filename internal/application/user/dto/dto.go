package dto

import (
	"time"

	"github.com/ticketdesk/ticketdesk/internal/domain/user"
)

// EnsureUserRequest names the account to look up or create.
type EnsureUserRequest struct {
	Email    string
	Username string
}

type UserResponse struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID(),
		UUID:      u.UUID(),
		Email:     u.Email().String(),
		Username:  u.Username(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
