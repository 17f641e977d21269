package subject

import "context"

// Repository persists the subject collection. Create runs the whole
// load-check-append-save cycle inside the collection's critical section and
// returns ErrDuplicateName when the name is already taken case-insensitively.
type Repository interface {
	Create(ctx context.Context, s Subject) error
	List(ctx context.Context) ([]Subject, error)
	Exists(ctx context.Context, id string) (bool, error)
}
