package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
)

// untitledName - замена пустого заголовка или имени папки в экспорте.
const untitledName = "Untitled"

// unsafeFilenameChars - все, что не попадает в имена файлов как есть.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9 \-_.]`)

// ArchiveEntry - одна запись будущего архива. У папок Path оканчивается
// на "/" и Content пуст.
type ArchiveEntry struct {
	Path    string
	Content []byte
}

// ExportUseCase обходит активное дерево пользователя и собирает
// плоский список записей для архиватора.
type ExportUseCase struct {
	folderRepo repositories.FolderRepository
	noteRepo   repositories.NoteRepository
}

// NewExportUseCase создает новый экземпляр ExportUseCase.
func NewExportUseCase(folderRepo repositories.FolderRepository, noteRepo repositories.NoteRepository) *ExportUseCase {
	return &ExportUseCase{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
	}
}

// ExportTree выполняет обход в глубину (pre-order) от активного корня,
// пропуская удаленные узлы, затем добавляет заметки без папки в корень
// архива. Порядок соседей - порядок выдачи хранилища.
func (uc *ExportUseCase) ExportTree(ctx context.Context, ownerID string) ([]ArchiveEntry, error) {
	entries := make([]ArchiveEntry, 0)

	root, err := uc.folderRepo.FindActiveRoot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active root: %w", err)
	}
	if root != nil {
		entries, err = uc.walkFolder(ctx, ownerID, root, "", entries)
		if err != nil {
			return nil, err
		}
	}

	orphans, err := uc.noteRepo.FindActiveOrphans(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphan notes: %w", err)
	}
	for _, note := range orphans {
		entries = append(entries, noteEntry("", note))
	}

	return entries, nil
}

func (uc *ExportUseCase) walkFolder(ctx context.Context, ownerID string, folder *entities.Folder, parentPath string, entries []ArchiveEntry) ([]ArchiveEntry, error) {
	if folder.Deleted {
		return entries, nil
	}

	currentPath := parentPath + sanitizeFilename(folder.Name) + "/"
	entries = append(entries, ArchiveEntry{Path: currentPath})

	notes, err := uc.noteRepo.FindActiveByFolder(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder notes: %w", err)
	}
	for _, note := range notes {
		entries = append(entries, noteEntry(currentPath, note))
	}

	children, err := uc.folderRepo.FindActiveChildren(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder children: %w", err)
	}
	for _, child := range children {
		entries, err = uc.walkFolder(ctx, ownerID, child, currentPath, entries)
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func noteEntry(parentPath string, note *entities.Note) ArchiveEntry {
	return ArchiveEntry{
		Path:    parentPath + sanitizeFilename(note.Title) + ".md",
		Content: []byte(note.Content),
	}
}

// sanitizeFilename заменяет недопустимые символы на "_".
func sanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return untitledName
	}
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
