// Package app implements application business logic for the notes service.
package app

import "errors"

// Ошибки уровня бизнес-логики.
// ErrNotFound намеренно покрывает и чужие ресурсы: для вызывающего
// "не существует" и "принадлежит другому пользователю" неразличимы.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrRootConflict = errors.New("active root folder already exists")
	ErrValidation   = errors.New("invalid request")
	ErrMissingRoot  = errors.New("no active root folder for user")
	ErrUnauthorized = errors.New("unauthorized access")
)
