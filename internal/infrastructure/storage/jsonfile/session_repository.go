package jsonfile

import (
	"context"

	"classkeeper/internal/domain/session"
	"classkeeper/internal/domain/student"
)

type sessionRepository struct {
	path         string
	studentsPath string
	locks        *LockRegistry
}

// Add stores p under id. The email check spans the session mapping and the
// student collection; a corrupt mapping file is a hard error, never treated
// as an empty mapping.
func (r *sessionRepository) Add(ctx context.Context, id string, p session.Profile) error {
	release, err := r.locks.Acquire(ctx, r.path)
	if err != nil {
		return err
	}
	defer release()

	sessions, err := Load[map[string]session.Profile](r.path)
	if err != nil {
		return err
	}
	if sessions == nil {
		sessions = make(map[string]session.Profile)
	}

	var emails []string
	for _, existing := range sessions {
		emails = append(emails, existing.Email)
	}
	students, err := Load[[]student.Student](r.studentsPath)
	if err != nil {
		return err
	}
	for _, st := range students {
		emails = append(emails, st.Email)
	}
	if duplicate(emails, p.Email) {
		return session.ErrDuplicateEmail
	}

	sessions[id] = p
	return Save(r.path, sessions)
}

func (r *sessionRepository) Get(ctx context.Context, id string) (session.Profile, bool, error) {
	sessions, err := Load[map[string]session.Profile](r.path)
	if err != nil {
		return session.Profile{}, false, err
	}
	p, ok := sessions[id]
	return p, ok, nil
}
