package repositories

import (
	"context"
	"time"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс хранилища заметок.
// Методы поиска с ownerID возвращают (nil, nil), если заметка не найдена
// или принадлежит другому пользователю.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	FindByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error)
	FindActiveByFolder(ctx context.Context, folderID, ownerID string) ([]*entities.Note, error)
	FindActiveOrphans(ctx context.Context, ownerID string) ([]*entities.Note, error)
	FindDeletedByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) error
	SetDeleted(ctx context.Context, noteID, ownerID string, deleted bool, deletedAt *time.Time) error
	HardDelete(ctx context.Context, noteID, ownerID string) error
}
