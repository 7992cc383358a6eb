package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// UserContext возвращает контекст запроса, подготовленный auth middleware.
func UserContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// UserID возвращает идентификатор аутентифицированного пользователя.
func UserID(ctx fiber.Ctx) string {
	if userID, ok := ctx.Locals(UserIDKey).(string); ok {
		return userID
	}
	return ""
}
