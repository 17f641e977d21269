package student

import "context"

// Repository persists the student collection.
//
// Create and Update run their whole load-check-mutate-save cycle inside the
// collection's critical section. The email uniqueness check is evaluated
// there, against the freshest load, so two concurrent writers with the same
// email can never both succeed.
type Repository interface {
	// Create appends st. Returns ErrDuplicateEmail if the email is already
	// used, case-insensitively, by another student or a registered session.
	Create(ctx context.Context, st Student) error

	// Update locates the record by id, passes the current value to apply and
	// persists the result. The updated email is re-checked for uniqueness
	// excluding the record itself. Returns ErrNotFound for an unknown id and
	// any error produced by apply unchanged.
	Update(ctx context.Context, id string, apply func(current Student) (Student, error)) (Student, error)

	Get(ctx context.Context, id string) (Student, error)
	ListBySubject(ctx context.Context, subjectID string) ([]Student, error)
}
