// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/services"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// Ключи контекста запроса.
const (
	UserIDKey      = "userID"
	UserContextKey = "userContext"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware создает новое промежуточное ПО для проверки
// аутентификации. Идентификатор владельца кладется в Locals.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		ctx.Locals(UserIDKey, userID)
		ctx.Locals(UserContextKey, logger.NewRequestIDContext(requestCtx, logger.GenerateRequestID()))

		return ctx.Next()
	}
}
