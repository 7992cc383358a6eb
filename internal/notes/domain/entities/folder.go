package entities

import "time"

// Folder представляет собой папку в дереве пользователя.
// ParentID == nil означает корневую папку.
type Folder struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewFolder создает новую активную папку.
func NewFolder(ownerID, name string, parentID *string) *Folder {
	now := time.Now()
	return &Folder{
		OwnerID:   ownerID,
		Name:      name,
		ParentID:  parentID,
		Deleted:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsRoot сообщает, является ли папка корневой.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// FolderNode - узел активного дерева папок с вложенными подпапками и заметками.
// Удаленные узлы отфильтровываются при построении, не при хранении.
type FolderNode struct {
	Folder   *Folder       `json:"folder"`
	Children []*FolderNode `json:"children"`
	Notes    []*Note       `json:"notes"`
}
