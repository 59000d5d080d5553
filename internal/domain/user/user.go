// Package user holds the owner of tickets and drafts. Only the default user
// exists today, so there is no authentication state on the aggregate.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/ticketdesk/ticketdesk/internal/domain/user/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
)

type User struct {
	id        uint
	uuid      string
	email     *vo.Email
	username  string
	isActive  bool
	createdAt time.Time
}

func NewUser(email *vo.Email, username string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		uuid:      id.New(),
		email:     email,
		username:  username,
		isActive:  true,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructUser(userID uint, uuid string, email *vo.Email, username string, isActive bool, createdAt time.Time) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:        userID,
		uuid:      uuid,
		email:     email,
		username:  username,
		isActive:  isActive,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) UUID() string {
	return u.uuid
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Username() string {
	return u.username
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}
