// Package services defines service interfaces for the notes service.
package services

import (
	"context"
	"errors"
	"time"
)

// Ошибки работы с токенами.
var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrExpiredJWTToken = errors.New("jwt token has expired")
)

// TokenService определяет интерфейс для выпуска и проверки токенов доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, time.Time, error)
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
