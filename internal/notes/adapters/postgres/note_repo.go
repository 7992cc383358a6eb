package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// noteColumns - список колонок заметки в порядке сканирования.
// folder_id приводится к пустой строке для заметок без папки.
const noteColumns = `id, owner_id, COALESCE(folder_id::text, ''), title, content,
        word_count, line_count, character_count, size_in_bytes,
        deleted, deleted_at, created_at, updated_at`

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку вместе с рассчитанными метаданными.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating note", zap.String("ownerID", note.OwnerID), zap.String("folderID", note.FolderID))

	row := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, folder_id, title, content, word_count, line_count, character_count, size_in_bytes)
         VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8)
         RETURNING `+noteColumns,
		note.OwnerID, note.FolderID, note.Title, note.Content,
		note.WordCount, note.LineCount, note.CharacterCount, note.SizeInBytes,
	)

	created, err := scanNote(row)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return created, nil
}

// FindByID получает заметку по ID и владельцу. Возвращает (nil, nil),
// если заметка не найдена или принадлежит другому пользователю.
func (r *NoteRepository) FindByID(ctx context.Context, noteID, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))

	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// FindActiveByFolder получает активные заметки папки.
func (r *NoteRepository) FindActiveByFolder(ctx context.Context, folderID, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindActiveByFolder"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE folder_id = $1 AND owner_id = $2 AND NOT deleted
         ORDER BY created_at`,
		folderID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list folder notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list folder notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// FindActiveOrphans получает активные заметки без папки.
func (r *NoteRepository) FindActiveOrphans(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindActiveOrphans"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE owner_id = $1 AND folder_id IS NULL AND NOT deleted
         ORDER BY created_at`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list orphan notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list orphan notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// FindDeletedByOwner получает заметки пользователя в корзине.
func (r *NoteRepository) FindDeletedByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindDeletedByOwner"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE owner_id = $1 AND deleted
         ORDER BY deleted_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list deleted notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list deleted notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// FindDeletedBefore получает заметки, удаленные раньше указанного момента.
func (r *NoteRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindDeletedBefore"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+`
         FROM notes
         WHERE deleted AND deleted_at < $1`,
		cutoff,
	)
	if err != nil {
		log.Error(ctx, "failed to list expired notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list expired notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// Update обновляет заголовок, содержимое и метаданные заметки.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes
         SET title = $1, content = $2, word_count = $3, line_count = $4,
             character_count = $5, size_in_bytes = $6, updated_at = $7
         WHERE id = $8 AND owner_id = $9`,
		note.Title, note.Content, note.WordCount, note.LineCount,
		note.CharacterCount, note.SizeInBytes, note.UpdatedAt, note.ID, note.OwnerID,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNoteNotFound
	}

	return nil
}

// SetDeleted переключает флаг мягкого удаления заметки.
func (r *NoteRepository) SetDeleted(ctx context.Context, noteID, ownerID string, deleted bool, deletedAt *time.Time) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "SetDeleted"))
	log.Debug(ctx, "setting note deleted flag", zap.String("noteID", noteID), zap.Bool("deleted", deleted))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes
         SET deleted = $1, deleted_at = $2, updated_at = now()
         WHERE id = $3 AND owner_id = $4`,
		deleted, deletedAt, noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to set deleted flag", zap.Error(err))
		return fmt.Errorf("failed to set deleted flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNoteNotFound
	}

	return nil
}

// HardDelete безвозвратно удаляет заметку.
func (r *NoteRepository) HardDelete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "HardDelete"))
	log.Debug(ctx, "hard deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to hard delete note", zap.Error(err))
		return fmt.Errorf("failed to hard delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNoteNotFound
	}

	return nil
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.FolderID,
		&note.Title,
		&note.Content,
		&note.WordCount,
		&note.LineCount,
		&note.CharacterCount,
		&note.SizeInBytes,
		&note.Deleted,
		&note.DeletedAt,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func collectNotes(rows pgx.Rows) ([]*entities.Note, error) {
	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return notes, nil
}
