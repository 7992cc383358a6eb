// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrUsernameTaken = errors.New("username is already taken")
)

// Роли пользователей.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
