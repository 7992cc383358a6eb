// Package main реализует точку входа службы заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/cache"
	httpserver "github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/postgres"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/services"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/config"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/db"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/purge"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize redis cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingPurger      = "stopping bin purger"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogInitCache           = "initializing redis cache"
	LogStartingHTTP        = "starting HTTP server"
	LogCacheDisabled       = "redis cache unavailable, tree caching disabled"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, "migrations/notes")
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitCache)
		treeCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			// Кэш не обязателен для работы сервиса.
			log.Warn(ctx, LogCacheDisabled, zap.Error(err))
			treeCache = nil
		}

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		folderRepo := repoFactory.FolderRepository()
		noteRepo := repoFactory.NoteRepository()

		log.Info(ctx, LogInitServices)
		tokenService := services.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL())
		passwordService := services.NewBcrypt(cfg.JWT.BCryptCost)

		log.Info(ctx, LogInitUseCases)
		useCases := httpserver.UseCases{
			Auth:   app.NewAuthUseCase(userRepo, passwordService, tokenService),
			Folder: app.NewFolderUseCase(folderRepo, noteRepo, treeCache),
			Note:   app.NewNoteUseCase(noteRepo, folderRepo, treeCache),
			Export: app.NewExportUseCase(folderRepo, noteRepo),
		}

		binUseCase := app.NewBinUseCase(noteRepo, folderRepo)

		var purger *purge.Purger
		if cfg.Purge.Enabled {
			purger = purge.New(binUseCase, cfg.Purge.RetentionDays, cfg.Purge.GetInterval())
			purger.Start(ctx)
		}

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpserver.SetupRouter(fiberApp, useCases, tokenService)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка фоновой очистки корзины.
			func(ctx context.Context) error {
				if purger != nil {
					log.Info(ctx, LogStoppingPurger)
					purger.Stop(ctx)
				}
				return nil
			},
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				if treeCache != nil {
					log.Info(ctx, LogClosingCache)
					return treeCache.Close()
				}
				return nil
			},
			// Закрытие базы данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
