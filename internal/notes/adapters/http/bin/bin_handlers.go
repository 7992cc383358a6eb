// Package bin содержит HTTP-обработчики для работы с корзиной.
package bin

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/httperr"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/middleware"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app/dto"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListBin = "handling list bin request"
)

// Handler обработчик HTTP-запросов для корзины.
type Handler struct {
	folderUseCase *app.FolderUseCase
	noteUseCase   *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика корзины.
func NewHandler(folderUseCase *app.FolderUseCase, noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		folderUseCase: folderUseCase,
		noteUseCase:   noteUseCase,
	}
}

// ListBin обрабатывает запрос на получение содержимого корзины.
func (h *Handler) ListBin(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListBin"))
	log.Debug(userCtx, LogHandlerListBin)

	ownerID := middleware.UserID(ctx)

	folders, err := h.folderUseCase.ListDeletedFolders(userCtx, ownerID)
	if err != nil {
		log.Error(userCtx, "failed to list deleted folders", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	notes, err := h.noteUseCase.ListDeletedNotes(userCtx, ownerID)
	if err != nil {
		log.Error(userCtx, "failed to list deleted notes", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	response := dto.BinResponse{
		Folders: folders,
		Notes:   notes,
	}

	if err := ctx.JSON(response); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
