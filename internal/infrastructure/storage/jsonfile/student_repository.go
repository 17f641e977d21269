package jsonfile

import (
	"context"

	"classkeeper/internal/domain/session"
	"classkeeper/internal/domain/student"
)

type studentRepository struct {
	path         string
	sessionsPath string
	locks        *LockRegistry
}

// takenEmails collects every email the candidate must not collide with:
// all student records except the one with excludeID, plus every registered
// session profile. The session mapping is read without its lock; the student
// and session collections use independent locks, so a registration racing a
// student write is not serialized against it (accepted, same as any
// cross-collection access in this store).
func (r *studentRepository) takenEmails(students []student.Student, excludeID string) ([]string, error) {
	var emails []string
	for _, st := range students {
		if st.ID == excludeID {
			continue
		}
		emails = append(emails, st.Email)
	}

	sessions, err := Load[map[string]session.Profile](r.sessionsPath)
	if err != nil {
		return nil, err
	}
	for _, p := range sessions {
		emails = append(emails, p.Email)
	}
	return emails, nil
}

func (r *studentRepository) Create(ctx context.Context, st student.Student) error {
	release, err := r.locks.Acquire(ctx, r.path)
	if err != nil {
		return err
	}
	defer release()

	students, err := Load[[]student.Student](r.path)
	if err != nil {
		return err
	}

	emails, err := r.takenEmails(students, "")
	if err != nil {
		return err
	}
	if duplicate(emails, st.Email) {
		return student.ErrDuplicateEmail
	}

	return Save(r.path, append(students, st))
}

// Update runs the scan, the apply callback, the uniqueness re-check and the
// save as one atomic cycle under the collection lock. On any failure the file
// keeps its previous content.
func (r *studentRepository) Update(ctx context.Context, id string, apply func(current student.Student) (student.Student, error)) (student.Student, error) {
	release, err := r.locks.Acquire(ctx, r.path)
	if err != nil {
		return student.Student{}, err
	}
	defer release()

	students, err := Load[[]student.Student](r.path)
	if err != nil {
		return student.Student{}, err
	}

	idx := -1
	for i, st := range students {
		if st.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return student.Student{}, student.ErrNotFound
	}

	updated, err := apply(students[idx])
	if err != nil {
		return student.Student{}, err
	}

	emails, err := r.takenEmails(students, id)
	if err != nil {
		return student.Student{}, err
	}
	if duplicate(emails, updated.Email) {
		return student.Student{}, student.ErrDuplicateEmail
	}

	students[idx] = updated
	if err := Save(r.path, students); err != nil {
		return student.Student{}, err
	}
	return updated, nil
}

func (r *studentRepository) Get(ctx context.Context, id string) (student.Student, error) {
	students, err := Load[[]student.Student](r.path)
	if err != nil {
		return student.Student{}, err
	}
	for _, st := range students {
		if st.ID == id {
			return st, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (r *studentRepository) ListBySubject(ctx context.Context, subjectID string) ([]student.Student, error) {
	students, err := Load[[]student.Student](r.path)
	if err != nil {
		return nil, err
	}
	var out []student.Student
	for _, st := range students {
		if st.SubjectID == subjectID {
			out = append(out, st)
		}
	}
	return out, nil
}
