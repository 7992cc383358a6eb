package dto

// CreateNoteRequest содержит данные для создания заметки.
// Без folder_id заметка создается в активной корневой папке.
type CreateNoteRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content"`
	FolderID *string `json:"folder_id"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
// Отсутствующее поле означает "без изменения"; переданное содержимое
// (в том числе пустое) заменяет старое.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
