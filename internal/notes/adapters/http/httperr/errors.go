// Package httperr отображает ошибки бизнес-логики в HTTP-статусы.
package httperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/services"
)

// ErrMsgInternal - текст ответа при неожиданных ошибках. Детали
// остаются в логах.
const ErrMsgInternal = "Internal server error"

// Handle отправляет JSON-ответ с кодом, соответствующим классу ошибки.
// Несуществующие и чужие ресурсы неразличимы для вызывающего.
func Handle(ctx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := ErrMsgInternal

	switch {
	case errors.Is(err, app.ErrValidation),
		errors.Is(err, entities.ErrEmptyUsername),
		errors.Is(err, services.ErrInvalidPassword):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app.ErrUnauthorized):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, app.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, app.ErrRootConflict),
		errors.Is(err, entities.ErrUsernameTaken):
		status = fiber.StatusConflict
		message = err.Error()
	}

	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
