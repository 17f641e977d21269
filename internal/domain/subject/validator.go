package subject

import (
	"fmt"
	"strings"
)

const MaxNameLen = 100

// ValidateName checks a subject name before any storage access. The returned
// string is the trimmed value that should be persisted.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: subject_name is required", ErrInvalidInput)
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("%w: subject_name must be at most %d characters", ErrInvalidInput, MaxNameLen)
	}
	return name, nil
}
