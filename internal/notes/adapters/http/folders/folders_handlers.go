// Package folders содержит HTTP-обработчики для управления папками.
package folders

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

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateFolder  = "handling create folder request"
	LogHandlerGetTree       = "handling get tree request"
	LogHandlerUpdateFolder  = "handling update folder request"
	LogHandlerDeleteFolder  = "handling delete folder request"
	LogHandlerRestoreFolder = "handling restore folder request"

	ErrMsgInvalidFolderID    = "invalid folder id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов для работы с папками.
type Handler struct {
	folderUseCase *app.FolderUseCase
}

// NewHandler создает новый экземпляр обработчика папок.
func NewHandler(folderUseCase *app.FolderUseCase) *Handler {
	return &Handler{
		folderUseCase: folderUseCase,
	}
}

// CreateFolder обрабатывает запрос на создание папки.
func (h *Handler) CreateFolder(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateFolder"))
	log.Debug(userCtx, LogHandlerCreateFolder)

	var req dto.CreateFolderRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	folder, err := h.folderUseCase.CreateFolder(userCtx, middleware.UserID(ctx), req.Name, req.ParentID)
	if err != nil {
		log.Error(userCtx, "failed to create folder", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetTree обрабатывает запрос на получение активного дерева пользователя.
func (h *Handler) GetTree(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetTree"))
	log.Debug(userCtx, LogHandlerGetTree)

	tree, err := h.folderUseCase.GetTree(userCtx, middleware.UserID(ctx))
	if err != nil {
		log.Error(userCtx, "failed to get tree", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.JSON(tree); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateFolder обрабатывает запрос на переименование или перемещение папки.
func (h *Handler) UpdateFolder(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateFolder"))
	log.Debug(userCtx, LogHandlerUpdateFolder)

	folderID := ctx.Params("folder_id")
	if folderID == "" {
		log.Error(userCtx, ErrMsgInvalidFolderID)
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidFolderID,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	var req dto.UpdateFolderRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	folder, err := h.folderUseCase.UpdateFolder(userCtx, middleware.UserID(ctx), folderID, req.Name, req.ParentID)
	if err != nil {
		log.Error(userCtx, "failed to update folder", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteFolder обрабатывает запрос на перемещение папки в корзину.
func (h *Handler) DeleteFolder(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteFolder"))
	log.Debug(userCtx, LogHandlerDeleteFolder)

	folderID := ctx.Params("folder_id")
	if folderID == "" {
		log.Error(userCtx, ErrMsgInvalidFolderID)
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidFolderID,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	if err := h.folderUseCase.SoftDeleteFolder(userCtx, middleware.UserID(ctx), folderID); err != nil {
		log.Error(userCtx, "failed to delete folder", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RestoreFolder обрабатывает запрос на восстановление папки из корзины.
func (h *Handler) RestoreFolder(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.RestoreFolder"))
	log.Debug(userCtx, LogHandlerRestoreFolder)

	folderID := ctx.Params("folder_id")
	if folderID == "" {
		log.Error(userCtx, ErrMsgInvalidFolderID)
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidFolderID,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	if err := h.folderUseCase.RestoreFolder(userCtx, middleware.UserID(ctx), folderID); err != nil {
		log.Error(userCtx, "failed to restore folder", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// PurgeFolder обрабатывает запрос на безвозвратное удаление папки.
func (h *Handler) PurgeFolder(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.PurgeFolder"))
	log.Debug(userCtx, LogHandlerDeleteFolder)

	folderID := ctx.Params("folder_id")
	if folderID == "" {
		log.Error(userCtx, ErrMsgInvalidFolderID)
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidFolderID,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	if err := h.folderUseCase.HardDeleteFolder(userCtx, middleware.UserID(ctx), folderID); err != nil {
		log.Error(userCtx, "failed to purge folder", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
