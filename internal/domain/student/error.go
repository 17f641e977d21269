package student

import "errors"

var (
	ErrNotFound       = errors.New("student not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrInvalidInput   = errors.New("invalid student input")
)
