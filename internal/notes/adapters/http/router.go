// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/archive"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/auth"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/bin"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/export"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/folders"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/middleware"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http/notes"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/services"
)

// UseCases объединяет бизнес-логику, необходимую маршрутизатору.
type UseCases struct {
	Auth   *app.AuthUseCase
	Folder *app.FolderUseCase
	Note   *app.NoteUseCase
	Export *app.ExportUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases, tokenService services.TokenService) {
	authHandler := auth.NewHandler(useCases.Auth)
	foldersHandler := folders.NewHandler(useCases.Folder)
	notesHandler := notes.NewHandler(useCases.Note)
	binHandler := bin.NewHandler(useCases.Folder, useCases.Note)
	exportHandler := export.NewHandler(useCases.Export, archive.NewZipArchiver())

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Проверка доступности (публичная).
	apiV1.Get("/ping", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Маршруты папок (требуют авторизации).
	foldersRoutes := apiV1.Group("/folders")
	foldersRoutes.Use(authMiddleware)
	foldersRoutes.Post("/", foldersHandler.CreateFolder)
	foldersRoutes.Get("/tree", foldersHandler.GetTree)
	foldersRoutes.Patch("/:folder_id", foldersHandler.UpdateFolder)
	foldersRoutes.Put("/:folder_id", foldersHandler.UpdateFolder)
	foldersRoutes.Delete("/:folder_id", foldersHandler.DeleteFolder)
	foldersRoutes.Post("/:folder_id/restore", foldersHandler.RestoreFolder)
	foldersRoutes.Delete("/:folder_id/permanent", foldersHandler.PurgeFolder)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(authMiddleware)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListRootNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Patch("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)
	notesRoutes.Post("/:note_id/restore", notesHandler.RestoreNote)
	notesRoutes.Delete("/:note_id/permanent", notesHandler.PurgeNote)

	// Корзина и экспорт (требуют авторизации).
	binRoutes := apiV1.Group("/bin")
	binRoutes.Use(authMiddleware)
	binRoutes.Get("/", binHandler.ListBin)

	exportRoutes := apiV1.Group("/export")
	exportRoutes.Use(authMiddleware)
	exportRoutes.Get("/", exportHandler.Export)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
