// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/httperr"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app/dto"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase *app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase *app.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); err != nil {
			return fmt.Errorf("error sending bad request response: %w", err)
		}
		return nil
	}

	if req.Username == "" || req.Password == "" {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		}); err != nil {
			return fmt.Errorf("error sending validation error response: %w", err)
		}
		return nil
	}

	user, err := h.authUseCase.Register(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Error(requestCtx, "failed to register user", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	response := dto.UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	if err := ctx.Status(http.StatusCreated).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); err != nil {
			return fmt.Errorf("error sending bad request response: %w", err)
		}
		return nil
	}

	if req.Username == "" || req.Password == "" {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		}); err != nil {
			return fmt.Errorf("error sending validation error response: %w", err)
		}
		return nil
	}

	result, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Error(requestCtx, "failed to login user", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	response := dto.TokenResponse{
		UserID:      result.UserID,
		Username:    result.Username,
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	}

	if err := ctx.JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
