package repository

import "errors"

var (
	ErrUserExists   = errors.New("username or email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrNoteNotFound = errors.New("note not found")
)
