package dto

// CreateFolderRequest содержит данные для создания папки.
// Без parent_id создается корневая папка.
type CreateFolderRequest struct {
	Name     string  `json:"name" validate:"required"`
	ParentID *string `json:"parent_id"`
}

// UpdateFolderRequest содержит данные для переименования и/или
// перемещения папки. Отсутствующее поле означает "без изменения".
type UpdateFolderRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parent_id"`
}
