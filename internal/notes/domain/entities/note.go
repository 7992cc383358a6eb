package entities

import "time"

// Note представляет собой заметку пользователя.
// Метаданные всегда пересчитываются при изменении содержимого.
type Note struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	FolderID       string     `json:"folder_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	WordCount      int        `json:"word_count"`
	LineCount      int        `json:"line_count"`
	CharacterCount int        `json:"character_count"`
	SizeInBytes    int64      `json:"size_in_bytes"`
	Deleted        bool       `json:"deleted"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewNote создает новую заметку с пересчитанными метаданными.
func NewNote(ownerID, folderID, title, content string) *Note {
	now := time.Now()
	note := &Note{
		OwnerID:   ownerID,
		FolderID:  folderID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	note.ApplyMetadata(CalculateMetadata(content))
	return note
}

// ApplyMetadata записывает рассчитанные метаданные в заметку.
func (n *Note) ApplyMetadata(m Metadata) {
	n.WordCount = m.WordCount
	n.LineCount = m.LineCount
	n.CharacterCount = m.CharacterCount
	n.SizeInBytes = m.SizeInBytes
}
