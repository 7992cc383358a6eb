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

// folderColumns - список колонок папки в порядке сканирования.
const folderColumns = `id, owner_id, name, parent_id, deleted, deleted_at, created_at, updated_at`

// FolderRepository реализует интерфейс repositories.FolderRepository.
type FolderRepository struct {
	pool PgxPoolInterface
}

// NewFolderRepository создает новый репозиторий папок.
func NewFolderRepository(pool PgxPoolInterface) repositories.FolderRepository {
	return &FolderRepository{pool: pool}
}

// Create сохраняет новую папку. Нарушение частичного уникального индекса
// активного корня транслируется в repositories.ErrDuplicateRoot.
func (r *FolderRepository) Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Create"))
	log.Debug(ctx, "creating folder", zap.String("ownerID", folder.OwnerID))

	row := r.pool.QueryRow(ctx,
		`INSERT INTO folders (owner_id, name, parent_id)
         VALUES ($1, $2, $3)
         RETURNING `+folderColumns,
		folder.OwnerID, folder.Name, folder.ParentID,
	)

	created, err := scanFolder(row)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "active root already exists", zap.String("ownerID", folder.OwnerID))
			return nil, repositories.ErrDuplicateRoot
		}
		log.Error(ctx, "failed to create folder", zap.Error(err))
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return created, nil
}

// FindByID получает папку по ID и владельцу. Возвращает (nil, nil),
// если папка не найдена или принадлежит другому пользователю.
func (r *FolderRepository) FindByID(ctx context.Context, folderID, ownerID string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "FindByID"))

	row := r.pool.QueryRow(ctx,
		`SELECT `+folderColumns+`
         FROM folders
         WHERE id = $1 AND owner_id = $2`,
		folderID, ownerID,
	)

	folder, err := scanFolder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "folder not found", zap.String("folderID", folderID))
			return nil, nil
		}
		log.Error(ctx, "failed to get folder", zap.Error(err))
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}

	return folder, nil
}

// FindActiveRoot получает активный корень пользователя, если он есть.
func (r *FolderRepository) FindActiveRoot(ctx context.Context, ownerID string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "FindActiveRoot"))

	row := r.pool.QueryRow(ctx,
		`SELECT `+folderColumns+`
         FROM folders
         WHERE owner_id = $1 AND parent_id IS NULL AND NOT deleted`,
		ownerID,
	)

	folder, err := scanFolder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, "failed to get active root", zap.Error(err))
		return nil, fmt.Errorf("failed to get active root: %w", err)
	}

	return folder, nil
}

// FindActiveChildren получает активные подпапки указанной папки.
func (r *FolderRepository) FindActiveChildren(ctx context.Context, parentID, ownerID string) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "FindActiveChildren"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+folderColumns+`
         FROM folders
         WHERE parent_id = $1 AND owner_id = $2 AND NOT deleted
         ORDER BY created_at`,
		parentID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list children", zap.Error(err))
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

// FindDeletedByOwner получает папки пользователя в корзине.
func (r *FolderRepository) FindDeletedByOwner(ctx context.Context, ownerID string) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "FindDeletedByOwner"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+folderColumns+`
         FROM folders
         WHERE owner_id = $1 AND deleted
         ORDER BY deleted_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list deleted folders", zap.Error(err))
		return nil, fmt.Errorf("failed to list deleted folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

// FindDeletedBefore получает папки, удаленные раньше указанного момента.
func (r *FolderRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "FindDeletedBefore"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+folderColumns+`
         FROM folders
         WHERE deleted AND deleted_at < $1`,
		cutoff,
	)
	if err != nil {
		log.Error(ctx, "failed to list expired folders", zap.Error(err))
		return nil, fmt.Errorf("failed to list expired folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

// Update обновляет имя и родителя папки.
func (r *FolderRepository) Update(ctx context.Context, folder *entities.Folder) error {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Update"))
	log.Debug(ctx, "updating folder", zap.String("folderID", folder.ID))

	result, err := r.pool.Exec(ctx,
		`UPDATE folders
         SET name = $1, parent_id = $2, updated_at = $3
         WHERE id = $4 AND owner_id = $5`,
		folder.Name, folder.ParentID, folder.UpdatedAt, folder.ID, folder.OwnerID,
	)
	if err != nil {
		log.Error(ctx, "failed to update folder", zap.Error(err))
		return fmt.Errorf("failed to update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "folder not found or not owned by user")
		return repositories.ErrFolderNotFound
	}

	return nil
}

// SetDeleted переключает флаг мягкого удаления. Восстановление корня
// может нарушить индекс активного корня под гонкой.
func (r *FolderRepository) SetDeleted(ctx context.Context, folderID, ownerID string, deleted bool, deletedAt *time.Time) error {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "SetDeleted"))
	log.Debug(ctx, "setting folder deleted flag", zap.String("folderID", folderID), zap.Bool("deleted", deleted))

	result, err := r.pool.Exec(ctx,
		`UPDATE folders
         SET deleted = $1, deleted_at = $2, updated_at = now()
         WHERE id = $3 AND owner_id = $4`,
		deleted, deletedAt, folderID, ownerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicateRoot
		}
		log.Error(ctx, "failed to set deleted flag", zap.Error(err))
		return fmt.Errorf("failed to set deleted flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "folder not found or not owned by user")
		return repositories.ErrFolderNotFound
	}

	return nil
}

// HardDelete безвозвратно удаляет папку; потомки и заметки удаляются
// каскадом внешних ключей.
func (r *FolderRepository) HardDelete(ctx context.Context, folderID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "HardDelete"))
	log.Debug(ctx, "hard deleting folder", zap.String("folderID", folderID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM folders WHERE id = $1 AND owner_id = $2`,
		folderID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to hard delete folder", zap.Error(err))
		return fmt.Errorf("failed to hard delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "folder not found or not owned by user")
		return repositories.ErrFolderNotFound
	}

	return nil
}

func scanFolder(row pgx.Row) (*entities.Folder, error) {
	var folder entities.Folder
	err := row.Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.Name,
		&folder.ParentID,
		&folder.Deleted,
		&folder.DeletedAt,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func collectFolders(rows pgx.Rows) ([]*entities.Folder, error) {
	folders := make([]*entities.Folder, 0)
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return folders, nil
}
