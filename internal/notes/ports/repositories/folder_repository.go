// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"
	"time"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

// FolderRepository определяет интерфейс хранилища папок.
// Методы поиска с ownerID возвращают (nil, nil), если папка не найдена
// или принадлежит другому пользователю.
type FolderRepository interface {
	Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error)
	FindByID(ctx context.Context, folderID, ownerID string) (*entities.Folder, error)
	FindActiveRoot(ctx context.Context, ownerID string) (*entities.Folder, error)
	FindActiveChildren(ctx context.Context, parentID, ownerID string) ([]*entities.Folder, error)
	FindDeletedByOwner(ctx context.Context, ownerID string) ([]*entities.Folder, error)
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entities.Folder, error)
	Update(ctx context.Context, folder *entities.Folder) error
	SetDeleted(ctx context.Context, folderID, ownerID string, deleted bool, deletedAt *time.Time) error
	HardDelete(ctx context.Context, folderID, ownerID string) error
}
