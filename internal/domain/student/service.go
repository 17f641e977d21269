package student

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// NameUnavailable is shown in place of a name that failed to decrypt. One bad
// record must not fail a listing of many records.
const NameUnavailable = "[name unavailable]"

// Codec encrypts and decrypts the name field. Ciphertexts are hex strings.
type Codec interface {
	EncryptName(name string) (string, error)
	DecryptName(ciphertext string) (string, error)
}

// SubjectChecker reports whether a subject id references an existing subject.
type SubjectChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Servicer interface {
	Create(ctx context.Context, req CreateRequest) (View, error)
	Update(ctx context.Context, id string, req UpdateRequest) (View, error)
	Get(ctx context.Context, id string) (View, error)
	ListBySubject(ctx context.Context, subjectID string) ([]View, error)
}

type Service struct {
	repo     Repository
	subjects SubjectChecker
	codec    Codec
	log      *slog.Logger
}

func NewService(repo Repository, subjects SubjectChecker, codec Codec, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		subjects: subjects,
		codec:    codec,
		log:      log.With("component", "student_service"),
	}
}

// Create validates the input, verifies the referenced subject, encrypts the
// name and appends the record. The duplicate-email check runs inside the
// repository's critical section.
//
// The subject existence check is a plain read taken before the student
// collection lock; locks are never nested. A subject racing into existence
// concurrently is harmless, and subjects are never deleted.
func (s *Service) Create(ctx context.Context, req CreateRequest) (View, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return View{}, err
	}
	if err := validateAge(req.Age); err != nil {
		return View{}, err
	}
	email, err := validateEmail(req.Email)
	if err != nil {
		return View{}, err
	}
	if req.SubjectID == "" {
		return View{}, fmt.Errorf("%w: subject_id is required", ErrInvalidInput)
	}

	ok, err := s.subjects.Exists(ctx, req.SubjectID)
	if err != nil {
		return View{}, fmt.Errorf("verify subject: %w", err)
	}
	if !ok {
		return View{}, fmt.Errorf("%w: unknown subject %s", ErrNotFound, req.SubjectID)
	}

	encrypted, err := s.codec.EncryptName(name)
	if err != nil {
		s.log.Error("failed to encrypt student name", "error", err)
		return View{}, fmt.Errorf("encrypt name: %w", err)
	}

	st := Student{
		ID:            uuid.NewString(),
		EncryptedName: encrypted,
		Age:           req.Age,
		Email:         email,
		SubjectID:     req.SubjectID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, st); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return View{}, ErrDuplicateEmail
		}
		s.log.Error("failed to create student", "email", email, "error", err)
		return View{}, fmt.Errorf("create student: %w", err)
	}

	s.log.Info("student created", "student_id", st.ID, "subject_id", st.SubjectID)
	return s.view(st), nil
}

// Update overwrites every provided non-empty field. The merge, uniqueness
// re-check and persist all happen atomically under the collection lock: the
// repository loads the current record and calls back into the closure below.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (View, error) {
	if id == "" {
		return View{}, fmt.Errorf("%w: student_id is required", ErrInvalidInput)
	}

	var (
		name  string
		email string
		err   error
	)
	if req.Name != nil {
		if name, err = validateName(*req.Name); err != nil {
			return View{}, err
		}
	}
	if req.Age != nil {
		if err = validateAge(*req.Age); err != nil {
			return View{}, err
		}
	}
	if req.Email != nil {
		if email, err = validateEmail(*req.Email); err != nil {
			return View{}, err
		}
	}
	if req.SubjectID != nil {
		if *req.SubjectID == "" {
			return View{}, fmt.Errorf("%w: subject_id must not be empty", ErrInvalidInput)
		}
		ok, err := s.subjects.Exists(ctx, *req.SubjectID)
		if err != nil {
			return View{}, fmt.Errorf("verify subject: %w", err)
		}
		if !ok {
			return View{}, fmt.Errorf("%w: unknown subject %s", ErrNotFound, *req.SubjectID)
		}
	}

	updated, err := s.repo.Update(ctx, id, func(current Student) (Student, error) {
		if req.Name != nil {
			encrypted, err := s.codec.EncryptName(name)
			if err != nil {
				return Student{}, fmt.Errorf("encrypt name: %w", err)
			}
			current.EncryptedName = encrypted
		}
		if req.Age != nil {
			current.Age = *req.Age
		}
		if req.Email != nil {
			current.Email = email
		}
		if req.SubjectID != nil {
			current.SubjectID = *req.SubjectID
		}
		now := time.Now().UTC()
		current.UpdatedAt = &now
		return current, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateEmail) {
			return View{}, err
		}
		s.log.Error("failed to update student", "student_id", id, "error", err)
		return View{}, fmt.Errorf("update student: %w", err)
	}

	s.log.Info("student updated", "student_id", id)
	return s.view(updated), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, ErrNotFound
		}
		s.log.Error("failed to get student", "student_id", id, "error", err)
		return View{}, fmt.Errorf("get student: %w", err)
	}
	return s.view(st), nil
}

func (s *Service) ListBySubject(ctx context.Context, subjectID string) ([]View, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("%w: subject_id is required", ErrInvalidInput)
	}

	ok, err := s.subjects.Exists(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("verify subject: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown subject %s", ErrNotFound, subjectID)
	}

	students, err := s.repo.ListBySubject(ctx, subjectID)
	if err != nil {
		s.log.Error("failed to list students", "subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("list students: %w", err)
	}

	views := make([]View, len(students))
	for i, st := range students {
		views[i] = s.view(st)
	}
	return views, nil
}

// view decrypts the name for display. A per-record decryption failure is
// logged and replaced with a sentinel instead of failing the whole call.
func (s *Service) view(st Student) View {
	name, err := s.codec.DecryptName(st.EncryptedName)
	if err != nil {
		s.log.Warn("failed to decrypt student name", "student_id", st.ID, "error", err)
		name = NameUnavailable
	}
	return View{
		ID:        st.ID,
		Name:      name,
		Age:       st.Age,
		Email:     st.Email,
		SubjectID: st.SubjectID,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}
