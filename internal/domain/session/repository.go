package session

import "context"

// Repository persists the session mapping. Add runs inside the mapping's
// critical section and returns ErrDuplicateEmail if the email is already
// used, case-insensitively, by another session or by a student record.
type Repository interface {
	Add(ctx context.Context, id string, p Profile) error
	Get(ctx context.Context, id string) (Profile, bool, error)
}
