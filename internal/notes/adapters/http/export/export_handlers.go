// Package export содержит HTTP-обработчик экспорта дерева в ZIP.
package export

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/archive"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/httperr"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/middleware"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// Константы для логирования и заголовков ответа.
const (
	LogHandlerExport = "handling export request"

	exportContentType = "application/zip"
	exportFilename    = `attachment; filename="notes-export.zip"`
)

// Handler обработчик HTTP-запросов экспорта.
type Handler struct {
	exportUseCase *app.ExportUseCase
	archiver      *archive.ZipArchiver
}

// NewHandler создает новый экземпляр обработчика экспорта.
func NewHandler(exportUseCase *app.ExportUseCase, archiver *archive.ZipArchiver) *Handler {
	return &Handler{
		exportUseCase: exportUseCase,
		archiver:      archiver,
	}
}

// Export обрабатывает запрос на выгрузку активного дерева в ZIP-архив.
func (h *Handler) Export(ctx fiber.Ctx) error {
	userCtx := middleware.UserContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Export"))
	log.Debug(userCtx, LogHandlerExport)

	entries, err := h.exportUseCase.ExportTree(userCtx, middleware.UserID(ctx))
	if err != nil {
		log.Error(userCtx, "failed to collect export entries", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	data, err := h.archiver.Archive(entries)
	if err != nil {
		log.Error(userCtx, "failed to build archive", zap.Error(err))
		return httperr.Handle(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, exportContentType)
	ctx.Set(fiber.HeaderContentDisposition, exportFilename)

	if err := ctx.Send(data); err != nil {
		return fmt.Errorf("error sending archive: %w", err)
	}
	return nil
}
