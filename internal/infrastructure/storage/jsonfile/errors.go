package jsonfile

import "errors"

var (
	// ErrCorruptData means the collection file exists but cannot be parsed.
	// Callers must fail the request rather than proceed on a falsely-empty
	// collection.
	ErrCorruptData = errors.New("collection file is corrupt")

	// ErrLockTimeout means the file lock could not be acquired within the
	// configured wait. The operation is safe to retry.
	ErrLockTimeout = errors.New("file lock acquisition timed out")
)
