package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// CreateWithRootFolder сохраняет пользователя и его корневую папку
// в одной транзакции, чтобы не оставить пользователя без папок.
func (r *UserRepository) CreateWithRootFolder(ctx context.Context, user *entities.User, rootFolderName string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "CreateWithRootFolder"))
	log.Debug(ctx, "creating user", zap.String("username", user.Username))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var created entities.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
         VALUES ($1, $2, $3)
         RETURNING id, username, password_hash, role, created_at`,
		user.Username, user.PasswordHash, user.Role,
	).Scan(&created.ID, &created.Username, &created.PasswordHash, &created.Role, &created.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "username already taken", zap.String("username", user.Username))
			return nil, entities.ErrUsernameTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO folders (owner_id, name, parent_id)
         VALUES ($1, $2, NULL)`,
		created.ID, rootFolderName,
	); err != nil {
		log.Error(ctx, "error creating root folder", zap.Error(err))
		return nil, fmt.Errorf("error creating root folder: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return &created, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at
         FROM users
         WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at
         FROM users
         WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, fmt.Errorf("error querying user by username: %w", err)
	}

	return &user, nil
}
