package dto

import (
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

// BinResponse содержит содержимое корзины пользователя.
type BinResponse struct {
	Folders []*entities.Folder `json:"folders"`
	Notes   []*entities.Note   `json:"notes"`
}
