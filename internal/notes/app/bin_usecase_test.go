package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
)

func TestPurgeExpired(t *testing.T) {
	ownerID := "owner-1"

	t.Run("success - purges expired notes before folders", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)

		expiredNote := &entities.Note{ID: "note-1", OwnerID: ownerID, Deleted: true}
		expiredFolder := &entities.Folder{ID: "folder-1", OwnerID: ownerID, Deleted: true}

		var notesDone bool
		noteRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).
			Return([]*entities.Note{expiredNote}, nil).Once()
		noteRepo.On("HardDelete", mock.Anything, "note-1", ownerID).
			Run(func(_ mock.Arguments) { notesDone = true }).Return(nil).Once()
		folderRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).
			Return([]*entities.Folder{expiredFolder}, nil).Once()
		folderRepo.On("HardDelete", mock.Anything, "folder-1", ownerID).
			Run(func(_ mock.Arguments) {
				assert.True(t, notesDone, "notes must be purged before folders")
			}).Return(nil).Once()

		uc := app.NewBinUseCase(noteRepo, folderRepo)
		result, err := uc.PurgeExpired(context.Background(), 30)

		require.NoError(t, err)
		assert.Equal(t, 1, result.NotesPurged)
		assert.Equal(t, 1, result.FoldersPurged)
		noteRepo.AssertExpectations(t)
		folderRepo.AssertExpectations(t)
	})

	t.Run("success - nothing expired", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)
		noteRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).Return([]*entities.Note{}, nil).Once()
		folderRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).Return([]*entities.Folder{}, nil).Once()

		uc := app.NewBinUseCase(noteRepo, folderRepo)
		result, err := uc.PurgeExpired(context.Background(), 30)

		require.NoError(t, err)
		assert.Zero(t, result.NotesPurged)
		assert.Zero(t, result.FoldersPurged)
	})

	t.Run("success - already cascaded entries are skipped", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)

		goneNote := &entities.Note{ID: "note-1", OwnerID: ownerID, Deleted: true}
		keptNote := &entities.Note{ID: "note-2", OwnerID: ownerID, Deleted: true}

		noteRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).
			Return([]*entities.Note{goneNote, keptNote}, nil).Once()
		noteRepo.On("HardDelete", mock.Anything, "note-1", ownerID).
			Return(repositories.ErrNoteNotFound).Once()
		noteRepo.On("HardDelete", mock.Anything, "note-2", ownerID).Return(nil).Once()
		folderRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).Return([]*entities.Folder{}, nil).Once()

		uc := app.NewBinUseCase(noteRepo, folderRepo)
		result, err := uc.PurgeExpired(context.Background(), 30)

		require.NoError(t, err)
		assert.Equal(t, 1, result.NotesPurged)
		noteRepo.AssertExpectations(t)
	})

	t.Run("success - non-positive retention falls back to default", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)
		noteRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).Return([]*entities.Note{}, nil).Once()
		folderRepo.On("FindDeletedBefore", mock.Anything, mock.Anything).Return([]*entities.Folder{}, nil).Once()

		uc := app.NewBinUseCase(noteRepo, folderRepo)
		_, err := uc.PurgeExpired(context.Background(), 0)

		require.NoError(t, err)
	})
}
