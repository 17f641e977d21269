package subject

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, name string) (Subject, error)
	List(ctx context.Context) ([]Subject, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "subject_service"),
	}
}

// Create validates the name, assigns an identifier and appends the subject to
// the collection. The duplicate-name check happens inside the repository's
// critical section, against the freshest load.
func (s *Service) Create(ctx context.Context, name string) (Subject, error) {
	name, err := ValidateName(name)
	if err != nil {
		return Subject{}, err
	}

	sub := Subject{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return Subject{}, ErrDuplicateName
		}
		s.log.Error("failed to create subject", "name", name, "error", err)
		return Subject{}, fmt.Errorf("create subject: %w", err)
	}

	s.log.Info("subject created", "subject_id", sub.ID, "name", name)
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list subjects", "error", err)
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		s.log.Error("failed to check subject existence", "subject_id", id, "error", err)
		return false, fmt.Errorf("check subject: %w", err)
	}
	return ok, nil
}
