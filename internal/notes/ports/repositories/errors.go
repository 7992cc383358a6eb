package repositories

import "errors"

// Ошибки уровня хранилища: запись не существует или принадлежит другому пользователю.
var (
	ErrFolderNotFound = errors.New("folder not found or not owned by user")
	ErrNoteNotFound   = errors.New("note not found or not owned by user")
)

// ErrDuplicateRoot возвращается, когда частичный уникальный индекс
// активного корня отклоняет запись: проверка "прочитал-записал" в
// бизнес-логике не закрывает гонку конкурентных запросов.
var ErrDuplicateRoot = errors.New("active root folder already exists in storage")
