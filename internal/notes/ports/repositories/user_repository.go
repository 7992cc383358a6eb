package repositories

import (
	"context"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

// UserRepository определяет интерфейс хранилища пользователей.
type UserRepository interface {
	// CreateWithRootFolder сохраняет пользователя и его корневую папку
	// в одной транзакции: либо созданы оба, либо ни один.
	CreateWithRootFolder(ctx context.Context, user *entities.User, rootFolderName string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
