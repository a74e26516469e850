package models

import "errors"

// ErrNotFound возвращается репозиториями, если запись не найдена
var ErrNotFound = errors.New("record not found")
