package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	maxNameLen  = 100
	maxEmailLen = 100
)

type Servicer interface {
	Register(ctx context.Context, p Profile) (string, error)
	Get(ctx context.Context, id string) (Profile, bool, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

// Register validates the profile, generates a session id and stores the
// profile under it. Email uniqueness is enforced inside the repository's
// critical section.
func (s *Service) Register(ctx context.Context, p Profile) (string, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || len(p.Name) > maxNameLen {
		return "", fmt.Errorf("%w: name is required and at most %d characters", ErrInvalidInput, maxNameLen)
	}
	if p.Age <= 0 {
		return "", fmt.Errorf("%w: age must be a positive integer", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Gender) == "" {
		return "", fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Email == "" || len(p.Email) > maxEmailLen || !strings.Contains(p.Email, "@") {
		return "", fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	id := uuid.NewString()
	if err := s.repo.Add(ctx, id, p); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		s.log.Error("failed to register session", "email", p.Email, "error", err)
		return "", fmt.Errorf("register session: %w", err)
	}

	s.log.Info("session registered", "session_id", id)
	return id, nil
}

func (s *Service) Get(ctx context.Context, id string) (Profile, bool, error) {
	return s.repo.Get(ctx, id)
}
