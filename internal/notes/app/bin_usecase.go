package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// DefaultRetentionDays - срок хранения в корзине до безвозвратного удаления.
const DefaultRetentionDays = 30

// PurgeResult - итог одного прохода очистки корзины.
type PurgeResult struct {
	NotesPurged   int `json:"notes_purged"`
	FoldersPurged int `json:"folders_purged"`
}

// BinUseCase реализует очистку корзины: безвозвратное удаление
// элементов, помеченных удаленными дольше срока хранения.
type BinUseCase struct {
	noteRepo   repositories.NoteRepository
	folderRepo repositories.FolderRepository
	now        func() time.Time
}

// NewBinUseCase создает новый экземпляр BinUseCase.
func NewBinUseCase(noteRepo repositories.NoteRepository, folderRepo repositories.FolderRepository) *BinUseCase {
	return &BinUseCase{
		noteRepo:   noteRepo,
		folderRepo: folderRepo,
		now:        time.Now,
	}
}

// PurgeExpired безвозвратно удаляет просроченные элементы корзины:
// сначала заметки, затем папки. Идемпотентна: уже удаленные хранилищем
// (например, каскадом папки) записи пропускаются.
func (uc *BinUseCase) PurgeExpired(ctx context.Context, retentionDays int) (PurgeResult, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	cutoff := uc.now().AddDate(0, 0, -retentionDays)

	log := logger.Log(ctx).With(zap.String("method", "BinUseCase.PurgeExpired"))
	log.Info(ctx, "starting bin purge", zap.Time("cutoff", cutoff), zap.Int("retention_days", retentionDays))

	var result PurgeResult

	expiredNotes, err := uc.noteRepo.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to find expired notes: %w", err)
	}
	for _, note := range expiredNotes {
		if err := uc.noteRepo.HardDelete(ctx, note.ID, note.OwnerID); err != nil {
			if errors.Is(err, repositories.ErrNoteNotFound) {
				continue
			}
			return result, fmt.Errorf("failed to purge note %s: %w", note.ID, err)
		}
		result.NotesPurged++
	}

	expiredFolders, err := uc.folderRepo.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to find expired folders: %w", err)
	}
	for _, folder := range expiredFolders {
		if err := uc.folderRepo.HardDelete(ctx, folder.ID, folder.OwnerID); err != nil {
			if errors.Is(err, repositories.ErrFolderNotFound) {
				continue
			}
			return result, fmt.Errorf("failed to purge folder %s: %w", folder.ID, err)
		}
		result.FoldersPurged++
	}

	log.Info(ctx, "bin purge finished",
		zap.Int("notes_purged", result.NotesPurged),
		zap.Int("folders_purged", result.FoldersPurged))
	return result, nil
}
