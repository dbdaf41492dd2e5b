package service

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateParent    = errors.New("parent already registered for this roll number")
	ErrBadDate            = errors.New("invalid date")
)
