package postgres_test

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/postgres"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
)

var noteColumns = []string{
	"id", "owner_id", "folder_id", "title", "content",
	"word_count", "line_count", "character_count", "size_in_bytes",
	"deleted", "deleted_at", "created_at", "updated_at",
}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	input := &entities.Note{
		OwnerID:        "owner-1",
		FolderID:       "folder-1",
		Title:          "Shopping",
		Content:        "milk bread",
		WordCount:      2,
		LineCount:      1,
		CharacterCount: 10,
		SizeInBytes:    10,
	}

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO notes .+").
		WithArgs(
			input.OwnerID, input.FolderID, input.Title, input.Content,
			input.WordCount, input.LineCount, input.CharacterCount, input.SizeInBytes,
		).
		WillReturnRows(pgxmock.NewRows(noteColumns).
			AddRow("note-1", "owner-1", "folder-1", "Shopping", "milk bread",
				2, 1, 10, int64(10), false, nil, now, now))

	repo := postgres.NewNoteRepository(mock)
	created, err := repo.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "note-1", created.ID)
	assert.Equal(t, "folder-1", created.FolderID)
	assert.Equal(t, 2, created.WordCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Заметка найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, COALESCE").
			WithArgs("note-1", "owner-1").
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", "owner-1", "", "Loose", "hi",
					1, 1, 2, int64(2), false, nil, now, now))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.FindByID(ctx, "note-1", "owner-1")

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Empty(t, note.FolderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметки нет - (nil, nil)", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, owner_id, COALESCE").
			WithArgs("missing", "owner-1").
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.FindByID(ctx, "missing", "owner-1")

		require.NoError(t, err)
		assert.Nil(t, note)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_FindActiveOrphans(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, owner_id, COALESCE").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows(noteColumns).
			AddRow("note-1", "owner-1", "", "Loose", "hi",
				1, 1, 2, int64(2), false, nil, now, now))

	repo := postgres.NewNoteRepository(mock)
	notes, err := repo.FindActiveOrphans(ctx, "owner-1")

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Loose", notes[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	note := &entities.Note{
		ID:             "note-1",
		OwnerID:        "owner-1",
		Title:          "Updated",
		Content:        "new text",
		WordCount:      2,
		LineCount:      1,
		CharacterCount: 8,
		SizeInBytes:    8,
		UpdatedAt:      now,
	}

	t.Run("Успешное обновление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(
				note.Title, note.Content, note.WordCount, note.LineCount,
				note.CharacterCount, note.SizeInBytes, note.UpdatedAt, note.ID, note.OwnerID,
			).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, note)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена или чужая", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(
				note.Title, note.Content, note.WordCount, note.LineCount,
				note.CharacterCount, note.SizeInBytes, note.UpdatedAt, note.ID, note.OwnerID,
			).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Update(ctx, note)

		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_SetDeleted(t *testing.T) {
	ctx := testContext(t)

	t.Run("Восстановление заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE notes").
			WithArgs(false, (*time.Time)(nil), "note-1", "owner-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.SetDeleted(ctx, "note-1", "owner-1", false, nil)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		deletedAt := time.Now()
		mock.ExpectExec("UPDATE notes").
			WithArgs(true, &deletedAt, "note-1", "owner-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.SetDeleted(ctx, "note-1", "owner-1", true, &deletedAt)

		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_HardDelete(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("note-1", "owner-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := postgres.NewNoteRepository(mock)
	err = repo.HardDelete(ctx, "note-1", "owner-1")

	assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
