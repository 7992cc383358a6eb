package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/cache"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// NoteUseCase реализует бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo   repositories.NoteRepository
	folderRepo repositories.FolderRepository
	treeCache  cache.Cache
	now        func() time.Time
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// treeCache может быть nil: инвалидация дерева тогда отключена.
func NewNoteUseCase(noteRepo repositories.NoteRepository, folderRepo repositories.FolderRepository, treeCache cache.Cache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:   noteRepo,
		folderRepo: folderRepo,
		treeCache:  treeCache,
		now:        time.Now,
	}
}

// CreateNote создает заметку в указанной папке или в активном корне.
// Отсутствие корня при создании без folderID - нарушение целостности
// данных (корень создается при регистрации), а не ситуация пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, ownerID, title, content string, folderID *string) (*entities.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("note title is blank: %w", ErrValidation)
	}

	var targetFolderID string
	if folderID != nil {
		folder, err := uc.folderRepo.FindByID(ctx, *folderID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", *folderID, ErrNotFound)
		}
		targetFolderID = folder.ID
	} else {
		root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to find active root: %w", err)
		}
		if root == nil {
			logger.Log(ctx).Error(ctx, "note creation without folder but no active root exists",
				zap.String("ownerID", ownerID))
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrMissingRoot)
		}
		targetFolderID = root.ID
	}

	created, err := uc.noteRepo.Create(ctx, entities.NewNote(ownerID, targetFolderID, title, content))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return created, nil
}

// UpdateNote обновляет заметку. Пустой заголовок означает "без изменения
// заголовка"; переданное содержимое (в том числе пустое) заменяет старое
// и синхронно пересчитывает метаданные.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, ownerID, noteID string, title, content *string) (*entities.Note, error) {
	note, err := uc.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
		note.ApplyMetadata(entities.CalculateMetadata(*content))
	}
	note.UpdatedAt = uc.now()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return note, nil
}

// GetNote возвращает заметку по ID с проверкой владельца.
func (uc *NoteUseCase) GetNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	return note, nil
}

// SoftDeleteNote перемещает заметку в корзину.
func (uc *NoteUseCase) SoftDeleteNote(ctx context.Context, ownerID, noteID string) error {
	note, err := uc.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	deletedAt := uc.now()
	if err := uc.noteRepo.SetDeleted(ctx, noteID, ownerID, true, &deletedAt); err != nil {
		return fmt.Errorf("failed to soft delete note: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// RestoreNote возвращает заметку из корзины.
func (uc *NoteUseCase) RestoreNote(ctx context.Context, ownerID, noteID string) error {
	note, err := uc.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	if err := uc.noteRepo.SetDeleted(ctx, noteID, ownerID, false, nil); err != nil {
		return fmt.Errorf("failed to restore note: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// HardDeleteNote безвозвратно удаляет заметку.
func (uc *NoteUseCase) HardDeleteNote(ctx context.Context, ownerID, noteID string) error {
	note, err := uc.noteRepo.FindByID(ctx, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	if err := uc.noteRepo.HardDelete(ctx, noteID, ownerID); err != nil {
		return fmt.Errorf("failed to hard delete note: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// ListDeletedNotes возвращает заметки в корзине.
func (uc *NoteUseCase) ListDeletedNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.FindDeletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted notes: %w", err)
	}
	return notes, nil
}

// ListRootNotes возвращает активные заметки активного корня.
// Без активного корня список пуст: операция чтения не фатальна.
func (uc *NoteUseCase) ListRootNotes(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active root: %w", err)
	}
	if root == nil {
		return []*entities.Note{}, nil
	}

	notes, err := uc.noteRepo.FindActiveByFolder(ctx, root.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list root notes: %w", err)
	}
	return notes, nil
}

func (uc *NoteUseCase) invalidateTree(ctx context.Context, ownerID string) {
	if uc.treeCache == nil {
		return
	}
	if err := uc.treeCache.Delete(ctx, treeCacheKeyPrefix+ownerID); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to invalidate tree cache", zap.Error(err))
	}
}
