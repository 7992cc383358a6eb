package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

func TestCreateNote(t *testing.T) {
	ownerID := "owner-1"
	rootID := "root-1"
	folderID := "folder-1"

	root := &entities.Folder{ID: rootID, OwnerID: ownerID, Name: "My Library"}
	folder := &entities.Folder{ID: folderID, OwnerID: ownerID, Name: "Projects", ParentID: &rootID}

	tests := []struct {
		name        string
		title       string
		content     string
		folderID    *string
		setupMocks  func(noteRepo *mockNoteRepository, folderRepo *mockFolderRepository)
		expectedErr error
	}{
		{
			name:    "success - create in explicit folder",
			title:   "My Note",
			content: "Hi",
			folderID: func() *string {
				id := folderID
				return &id
			}(),
			setupMocks: func(noteRepo *mockNoteRepository, folderRepo *mockFolderRepository) {
				folderRepo.On("FindByID", mock.Anything, folderID, ownerID).Return(folder, nil).Once()
				noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.FolderID == folderID && n.Title == "My Note" && n.WordCount == 1
				})).Return(&entities.Note{ID: "note-1", OwnerID: ownerID, FolderID: folderID, Title: "My Note", Content: "Hi"}, nil).Once()
			},
		},
		{
			name:     "success - default to active root",
			title:    "My Note",
			content:  "Hi",
			folderID: nil,
			setupMocks: func(noteRepo *mockNoteRepository, folderRepo *mockFolderRepository) {
				folderRepo.On("FindActiveRoot", mock.Anything, ownerID).Return(root, nil).Once()
				noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.FolderID == rootID
				})).Return(&entities.Note{ID: "note-1", OwnerID: ownerID, FolderID: rootID, Title: "My Note"}, nil).Once()
			},
		},
		{
			name:     "error - no active root",
			title:    "My Note",
			folderID: nil,
			setupMocks: func(_ *mockNoteRepository, folderRepo *mockFolderRepository) {
				folderRepo.On("FindActiveRoot", mock.Anything, ownerID).Return(nil, nil).Once()
			},
			expectedErr: app.ErrMissingRoot,
		},
		{
			name:  "error - target folder not found",
			title: "My Note",
			folderID: func() *string {
				id := "missing"
				return &id
			}(),
			setupMocks: func(_ *mockNoteRepository, folderRepo *mockFolderRepository) {
				folderRepo.On("FindByID", mock.Anything, "missing", ownerID).Return(nil, nil).Once()
			},
			expectedErr: app.ErrNotFound,
		},
		{
			name:        "error - blank title",
			title:       "   ",
			setupMocks:  func(_ *mockNoteRepository, _ *mockFolderRepository) {},
			expectedErr: app.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := new(mockNoteRepository)
			folderRepo := new(mockFolderRepository)
			tt.setupMocks(noteRepo, folderRepo)

			uc := app.NewNoteUseCase(noteRepo, folderRepo, nil)
			note, err := uc.CreateNote(context.Background(), ownerID, tt.title, tt.content, tt.folderID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				require.NotNil(t, note)
			}
			noteRepo.AssertExpectations(t)
			folderRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateNote(t *testing.T) {
	ownerID := "owner-1"
	noteID := "note-1"

	existing := func() *entities.Note {
		return &entities.Note{
			ID:       noteID,
			OwnerID:  ownerID,
			FolderID: "root-1",
			Title:    "Old",
			Content:  "old content",
		}
	}

	t.Run("success - new content recalculates metadata", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		newContent := "un deux\ntrois"
		noteRepo.On("FindByID", mock.Anything, noteID, ownerID).Return(existing(), nil).Once()
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Content == newContent && n.WordCount == 3 && n.LineCount == 2 &&
				n.CharacterCount == 13 && n.SizeInBytes == 13
		})).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockFolderRepository), nil)
		note, err := uc.UpdateNote(context.Background(), ownerID, noteID, nil, &newContent)

		require.NoError(t, err)
		assert.Equal(t, 3, note.WordCount)
		noteRepo.AssertExpectations(t)
	})

	t.Run("success - empty content replaces and zeroes metadata", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		empty := ""
		noteRepo.On("FindByID", mock.Anything, noteID, ownerID).Return(existing(), nil).Once()
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Content == "" && n.WordCount == 0 && n.LineCount == 0 && n.SizeInBytes == 0
		})).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockFolderRepository), nil)
		_, err := uc.UpdateNote(context.Background(), ownerID, noteID, nil, &empty)

		require.NoError(t, err)
		noteRepo.AssertExpectations(t)
	})

	t.Run("success - blank title keeps current title", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		blank := " "
		noteRepo.On("FindByID", mock.Anything, noteID, ownerID).Return(existing(), nil).Once()
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Title == "Old"
		})).Return(nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockFolderRepository), nil)
		note, err := uc.UpdateNote(context.Background(), ownerID, noteID, &blank, nil)

		require.NoError(t, err)
		assert.Equal(t, "Old", note.Title)
		noteRepo.AssertExpectations(t)
	})

	t.Run("error - note of another user is not found", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, noteID, ownerID).Return(nil, nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockFolderRepository), nil)
		_, err := uc.UpdateNote(context.Background(), ownerID, noteID, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		noteRepo.AssertExpectations(t)
	})
}

func TestGetNote(t *testing.T) {
	ownerID := "owner-1"
	noteID := "note-1"

	t.Run("error - unknown and foreign notes are indistinguishable", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, noteID, ownerID).Return(nil, nil).Once()

		uc := app.NewNoteUseCase(noteRepo, new(mockFolderRepository), nil)
		note, err := uc.GetNote(context.Background(), ownerID, noteID)

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		assert.Nil(t, note)
		noteRepo.AssertExpectations(t)
	})
}

func TestListRootNotes(t *testing.T) {
	ownerID := "owner-1"
	rootID := "root-1"

	t.Run("success - returns notes of active root", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)
		folderRepo.On("FindActiveRoot", mock.Anything, ownerID).
			Return(&entities.Folder{ID: rootID, OwnerID: ownerID, Name: "My Library"}, nil).Once()
		noteRepo.On("FindActiveByFolder", mock.Anything, rootID, ownerID).
			Return([]*entities.Note{{ID: "note-1"}}, nil).Once()

		uc := app.NewNoteUseCase(noteRepo, folderRepo, nil)
		notes, err := uc.ListRootNotes(context.Background(), ownerID)

		require.NoError(t, err)
		assert.Len(t, notes, 1)
		folderRepo.AssertExpectations(t)
		noteRepo.AssertExpectations(t)
	})

	t.Run("success - empty list without active root", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		folderRepo.On("FindActiveRoot", mock.Anything, ownerID).Return(nil, nil).Once()

		uc := app.NewNoteUseCase(new(mockNoteRepository), folderRepo, nil)
		notes, err := uc.ListRootNotes(context.Background(), ownerID)

		require.NoError(t, err)
		assert.Empty(t, notes)
		folderRepo.AssertExpectations(t)
	})
}
