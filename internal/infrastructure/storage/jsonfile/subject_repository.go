package jsonfile

import (
	"context"

	"classkeeper/internal/domain/subject"
)

type subjectRepository struct {
	path  string
	locks *LockRegistry
}

// Create appends s to the subject collection. Load, duplicate check and save
// form one critical section under the collection's file lock.
func (r *subjectRepository) Create(ctx context.Context, s subject.Subject) error {
	release, err := r.locks.Acquire(ctx, r.path)
	if err != nil {
		return err
	}
	defer release()

	subjects, err := Load[[]subject.Subject](r.path)
	if err != nil {
		return err
	}

	names := make([]string, len(subjects))
	for i, existing := range subjects {
		names[i] = existing.Name
	}
	if duplicate(names, s.Name) {
		return subject.ErrDuplicateName
	}

	return Save(r.path, append(subjects, s))
}

// List reads the collection without taking the lock: atomic replace
// guarantees a consistent snapshot.
func (r *subjectRepository) List(ctx context.Context) ([]subject.Subject, error) {
	return Load[[]subject.Subject](r.path)
}

func (r *subjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	subjects, err := Load[[]subject.Subject](r.path)
	if err != nil {
		return false, err
	}
	for _, s := range subjects {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}
