package todo

import "errors"

var (
	// ErrTodoNotFound covers both a missing todo and one owned by another
	// user, so existence never leaks across owners.
	ErrTodoNotFound = errors.New("todo not found")
	ErrTitleEmpty   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title is too long")
)
