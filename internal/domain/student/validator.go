package student

import (
	"fmt"
	"strings"
)

const (
	MaxNameLen  = 100
	MaxEmailLen = 100
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, MaxNameLen)
	}
	return name, nil
}

func validateAge(age int) error {
	if age <= 0 {
		return fmt.Errorf("%w: age must be a positive integer", ErrInvalidInput)
	}
	return nil
}

// validateEmail normalizes the address to lowercase; uniqueness is checked
// later, inside the storage critical section.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > MaxEmailLen {
		return "", fmt.Errorf("%w: email must be at most %d characters", ErrInvalidInput, MaxEmailLen)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	return strings.ToLower(email), nil
}
