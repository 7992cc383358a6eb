package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/cache"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

// treeCacheKeyPrefix - префикс ключа кэша активного дерева.
const treeCacheKeyPrefix = "tree:"

// FolderUseCase реализует бизнес-логику работы с деревом папок:
// инвариант единственного активного корня, перемещение без циклов,
// мягкое удаление с фильтрацией при чтении.
type FolderUseCase struct {
	folderRepo repositories.FolderRepository
	noteRepo   repositories.NoteRepository
	treeCache  cache.Cache
	now        func() time.Time
}

// NewFolderUseCase создает новый экземпляр FolderUseCase.
// treeCache может быть nil: кэширование тогда отключено.
func NewFolderUseCase(folderRepo repositories.FolderRepository, noteRepo repositories.NoteRepository, treeCache cache.Cache) *FolderUseCase {
	return &FolderUseCase{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
		treeCache:  treeCache,
		now:        time.Now,
	}
}

// CreateFolder создает папку. Без parentID создается корень,
// что конфликтует с уже существующим активным корнем.
func (uc *FolderUseCase) CreateFolder(ctx context.Context, ownerID, name string, parentID *string) (*entities.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("folder name is blank: %w", ErrValidation)
	}

	if parentID == nil {
		root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check active root: %w", err)
		}
		if root != nil {
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrRootConflict)
		}
	} else {
		parent, err := uc.folderRepo.FindByID(ctx, *parentID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent folder: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent folder %s: %w", *parentID, ErrNotFound)
		}
	}

	created, err := uc.folderRepo.Create(ctx, entities.NewFolder(ownerID, name, parentID))
	if err != nil {
		// Частичный уникальный индекс закрывает гонку, которую проверка выше не видит.
		if errors.Is(err, repositories.ErrDuplicateRoot) {
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrRootConflict)
		}
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return created, nil
}

// UpdateFolder переименовывает и/или перемещает папку.
// Пустое имя означает "без изменения имени". Перемещение в собственное
// поддерево (включая прямую самоссылку) отклоняется.
func (uc *FolderUseCase) UpdateFolder(ctx context.Context, ownerID, folderID string, newName, newParentID *string) (*entities.Folder, error) {
	folder, err := uc.folderRepo.FindByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	if folder == nil {
		return nil, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}

	if newParentID != nil {
		if *newParentID == folderID {
			return nil, fmt.Errorf("folder cannot be its own parent: %w", ErrValidation)
		}
		parent, err := uc.folderRepo.FindByID(ctx, *newParentID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve new parent: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent folder %s: %w", *newParentID, ErrNotFound)
		}
		if err := uc.checkNoCycle(ctx, ownerID, folderID, parent); err != nil {
			return nil, err
		}
		folder.ParentID = newParentID
	}

	if newName != nil && strings.TrimSpace(*newName) != "" {
		folder.Name = *newName
	}

	folder.UpdatedAt = uc.now()
	if err := uc.folderRepo.Update(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return folder, nil
}

// checkNoCycle проходит от предполагаемого родителя вверх по предкам:
// перемещаемая папка не должна встретиться в цепочке.
func (uc *FolderUseCase) checkNoCycle(ctx context.Context, ownerID, folderID string, parent *entities.Folder) error {
	current := parent
	for current != nil {
		if current.ID == folderID {
			return fmt.Errorf("moving folder into its own subtree: %w", ErrValidation)
		}
		if current.ParentID == nil {
			return nil
		}
		next, err := uc.folderRepo.FindByID(ctx, *current.ParentID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to walk ancestors: %w", err)
		}
		current = next
	}
	return nil
}

// SoftDeleteFolder помечает папку удаленной. Потомки в хранилище не
// трогаются: их видимость отсекается фильтрацией при чтении.
func (uc *FolderUseCase) SoftDeleteFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := uc.folderRepo.FindByID(ctx, folderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get folder: %w", err)
	}
	if folder == nil {
		return fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}

	deletedAt := uc.now()
	if err := uc.folderRepo.SetDeleted(ctx, folderID, ownerID, true, &deletedAt); err != nil {
		return fmt.Errorf("failed to soft delete folder: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// RestoreFolder возвращает папку из корзины. Восстановление корня
// отклоняется, если другой активный корень уже существует.
func (uc *FolderUseCase) RestoreFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := uc.folderRepo.FindByID(ctx, folderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get folder: %w", err)
	}
	if folder == nil {
		return fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}

	if folder.IsRoot() {
		root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to check active root: %w", err)
		}
		if root != nil && root.ID != folderID {
			return fmt.Errorf("restoring root folder %s: %w", folderID, ErrRootConflict)
		}
	}

	if err := uc.folderRepo.SetDeleted(ctx, folderID, ownerID, false, nil); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRoot) {
			return fmt.Errorf("restoring root folder %s: %w", folderID, ErrRootConflict)
		}
		return fmt.Errorf("failed to restore folder: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// HardDeleteFolder безвозвратно удаляет папку; каскад на потомков и
// заметки выполняет хранилище.
func (uc *FolderUseCase) HardDeleteFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := uc.folderRepo.FindByID(ctx, folderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get folder: %w", err)
	}
	if folder == nil {
		return fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}

	if err := uc.folderRepo.HardDelete(ctx, folderID, ownerID); err != nil {
		return fmt.Errorf("failed to hard delete folder: %w", err)
	}

	uc.invalidateTree(ctx, ownerID)
	return nil
}

// GetTree возвращает активное дерево пользователя начиная с корня.
// Удаленные узлы отфильтрованы на каждом уровне.
func (uc *FolderUseCase) GetTree(ctx context.Context, ownerID string) (*entities.FolderNode, error) {
	if node, ok := uc.cachedTree(ctx, ownerID); ok {
		return node, nil
	}

	root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active root: %w", err)
	}
	if root == nil {
		logger.Log(ctx).Error(ctx, "user has no active root folder", zap.String("ownerID", ownerID))
		return nil, fmt.Errorf("owner %s: %w", ownerID, ErrMissingRoot)
	}

	node, err := uc.buildNode(ctx, ownerID, root)
	if err != nil {
		return nil, err
	}

	uc.storeTree(ctx, ownerID, node)
	return node, nil
}

// ListDeletedFolders возвращает плоский список папок в корзине.
func (uc *FolderUseCase) ListDeletedFolders(ctx context.Context, ownerID string) ([]*entities.Folder, error) {
	folders, err := uc.folderRepo.FindDeletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted folders: %w", err)
	}
	return folders, nil
}

func (uc *FolderUseCase) buildNode(ctx context.Context, ownerID string, folder *entities.Folder) (*entities.FolderNode, error) {
	notes, err := uc.noteRepo.FindActiveByFolder(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder notes: %w", err)
	}

	children, err := uc.folderRepo.FindActiveChildren(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder children: %w", err)
	}

	node := &entities.FolderNode{
		Folder:   folder,
		Children: make([]*entities.FolderNode, 0, len(children)),
		Notes:    notes,
	}
	for _, child := range children {
		childNode, err := uc.buildNode(ctx, ownerID, child)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// cachedTree пытается прочитать дерево из кэша. Ошибки кэша не
// всплывают к пользователю: читаем из хранилища напрямую.
func (uc *FolderUseCase) cachedTree(ctx context.Context, ownerID string) (*entities.FolderNode, bool) {
	if uc.treeCache == nil {
		return nil, false
	}

	raw, err := uc.treeCache.Get(ctx, treeCacheKeyPrefix+ownerID)
	if err != nil || raw == "" {
		return nil, false
	}

	var node entities.FolderNode
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to decode cached tree", zap.Error(err))
		return nil, false
	}
	return &node, true
}

func (uc *FolderUseCase) storeTree(ctx context.Context, ownerID string, node *entities.FolderNode) {
	if uc.treeCache == nil {
		return
	}

	raw, err := json.Marshal(node)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to encode tree for cache", zap.Error(err))
		return
	}
	if err := uc.treeCache.Set(ctx, treeCacheKeyPrefix+ownerID, string(raw), 0); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to cache tree", zap.Error(err))
	}
}

func (uc *FolderUseCase) invalidateTree(ctx context.Context, ownerID string) {
	if uc.treeCache == nil {
		return
	}
	if err := uc.treeCache.Delete(ctx, treeCacheKeyPrefix+ownerID); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to invalidate tree cache", zap.Error(err))
	}
}
