package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/services"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// DefaultRootFolderName - имя корневой папки, создаваемой при регистрации.
const DefaultRootFolderName = "My Library"

// TokenResult - результат успешного входа.
type TokenResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
}

// AuthUseCase реализует регистрацию и вход пользователей.
type AuthUseCase struct {
	userRepo        repositories.UserRepository
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordService services.PasswordService,
	tokenService services.TokenService,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Register регистрирует пользователя и сразу создает его активную
// корневую папку: после регистрации у пользователя никогда не бывает
// нуля папок.
func (uc *AuthUseCase) Register(ctx context.Context, username, password string) (*entities.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("validating username: %w", entities.ErrEmptyUsername)
	}

	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s: %w", username, entities.ErrUsernameTaken)
	}

	hash, err := uc.passwordService.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := uc.userRepo.CreateWithRootFolder(ctx, &entities.User{
		Username:     username,
		PasswordHash: hash,
		Role:         entities.RoleUser,
	}, DefaultRootFolderName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Log(ctx).Info(ctx, "user registered", zap.String("userID", created.ID))
	return created, nil
}

// Login проверяет учетные данные и выпускает токен доступа.
// Неизвестное имя и неверный пароль неразличимы для вызывающего.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("login failed: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := uc.passwordService.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("login failed: %w", ErrUnauthorized)
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &TokenResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}
