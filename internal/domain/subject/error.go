package subject

import "errors"

var (
	ErrNotFound      = errors.New("subject not found")
	ErrDuplicateName = errors.New("subject name already exists")
	ErrInvalidInput  = errors.New("invalid subject input")
)
