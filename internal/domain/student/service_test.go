package student

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeRepo mirrors the flat-file repository semantics in memory: the email
// uniqueness check runs inside Create/Update, the way the real store checks
// inside its critical section.
type fakeRepo struct {
	students []Student
}

func (r *fakeRepo) Create(_ context.Context, st Student) error {
	for _, existing := range r.students {
		if strings.EqualFold(existing.Email, st.Email) {
			return ErrDuplicateEmail
		}
	}
	r.students = append(r.students, st)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, id string, apply func(Student) (Student, error)) (Student, error) {
	for i, st := range r.students {
		if st.ID != id {
			continue
		}
		updated, err := apply(st)
		if err != nil {
			return Student{}, err
		}
		for _, other := range r.students {
			if other.ID != id && strings.EqualFold(other.Email, updated.Email) {
				return Student{}, ErrDuplicateEmail
			}
		}
		r.students[i] = updated
		return updated, nil
	}
	return Student{}, ErrNotFound
}

func (r *fakeRepo) Get(_ context.Context, id string) (Student, error) {
	for _, st := range r.students {
		if st.ID == id {
			return st, nil
		}
	}
	return Student{}, ErrNotFound
}

func (r *fakeRepo) ListBySubject(_ context.Context, subjectID string) ([]Student, error) {
	var out []Student
	for _, st := range r.students {
		if st.SubjectID == subjectID {
			out = append(out, st)
		}
	}
	return out, nil
}

// fakeCodec is an invertible stand-in for the RSA cipher.
type fakeCodec struct {
	failDecrypt bool
}

func (c *fakeCodec) EncryptName(name string) (string, error) {
	return "enc:" + name, nil
}

func (c *fakeCodec) DecryptName(ciphertext string) (string, error) {
	if c.failDecrypt || !strings.HasPrefix(ciphertext, "enc:") {
		return "", errors.New("decryption failed")
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

type fakeChecker struct {
	known map[string]bool
}

func (c *fakeChecker) Exists(_ context.Context, id string) (bool, error) {
	return c.known[id], nil
}

func newTestService(repo *fakeRepo, codec Codec) *Service {
	checker := &fakeChecker{known: map[string]bool{"s1": true, "s2": true}}
	return NewService(repo, checker, codec, slog.Default())
}

func validCreate() CreateRequest {
	return CreateRequest{Name: "Ann", Age: 20, Email: "A@X.com", SubjectID: "s1"}
}

func TestService_Create(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	view, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Ann", view.Name)
	assert.Equal(t, "a@x.com", view.Email, "email is normalized to lowercase")
	assert.Nil(t, view.UpdatedAt)

	require.Len(t, repo.students, 1)
	assert.Equal(t, "enc:Ann", repo.students[0].EncryptedName, "name is stored encrypted")
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "   " }},
		{"name too long", func(r *CreateRequest) { r.Name = strings.Repeat("x", MaxNameLen+1) }},
		{"zero age", func(r *CreateRequest) { r.Age = 0 }},
		{"negative age", func(r *CreateRequest) { r.Age = -3 }},
		{"empty email", func(r *CreateRequest) { r.Email = "" }},
		{"email too long", func(r *CreateRequest) { r.Email = strings.Repeat("x", MaxEmailLen) + "@x.com" }},
		{"email without at", func(r *CreateRequest) { r.Email = "not-an-email" }},
		{"missing subject", func(r *CreateRequest) { r.SubjectID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := newTestService(repo, &fakeCodec{})

			req := validCreate()
			tt.mutate(&req)

			_, err := service.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.students, "validation failures must not touch storage")
		})
	}
}

func TestService_Create_UnknownSubject(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	req := validCreate()
	req.SubjectID = "ghost"

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.students)
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	_, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	req := validCreate()
	req.Email = "a@x.COM"
	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestService_Update_PartialFields(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	created, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	newAge := 21
	view, err := service.Update(context.Background(), created.ID, UpdateRequest{Age: &newAge})
	require.NoError(t, err)

	assert.Equal(t, 21, view.Age)
	assert.Equal(t, "Ann", view.Name, "unset fields stay unchanged")
	assert.Equal(t, "a@x.com", view.Email)
	require.NotNil(t, view.UpdatedAt)
}

func TestService_Update_ReencryptsName(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	created, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	newName := "Beth"
	view, err := service.Update(context.Background(), created.ID, UpdateRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Beth", view.Name)
	assert.Equal(t, "enc:Beth", repo.students[0].EncryptedName)
}

func TestService_Update_UnknownStudent(t *testing.T) {
	service := newTestService(&fakeRepo{}, &fakeCodec{})

	newAge := 30
	_, err := service.Update(context.Background(), "ghost", UpdateRequest{Age: &newAge})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_UnknownSubject(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	created, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	ghost := "ghost"
	_, err = service.Update(context.Background(), created.ID, UpdateRequest{SubjectID: &ghost})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_EmailConflict(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	first, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	second := validCreate()
	second.Email = "b@x.com"
	_, err = service.Create(context.Background(), second)
	require.NoError(t, err)

	taken := "B@x.com"
	_, err = service.Update(context.Background(), first.ID, UpdateRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The stored email is unchanged after the conflict.
	got, err := service.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestService_Get_NotFound(t *testing.T) {
	service := newTestService(&fakeRepo{}, &fakeCodec{})

	_, err := service.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListBySubject(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, &fakeCodec{})

	_, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)
	second := validCreate()
	second.Name = "Beth"
	second.Email = "b@x.com"
	second.SubjectID = "s2"
	_, err = service.Create(context.Background(), second)
	require.NoError(t, err)

	views, err := service.ListBySubject(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ann", views[0].Name)
}

func TestService_ListBySubject_UnknownSubject(t *testing.T) {
	service := newTestService(&fakeRepo{}, &fakeCodec{})

	_, err := service.ListBySubject(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListBySubject_MissingSubjectID(t *testing.T) {
	service := newTestService(&fakeRepo{}, &fakeCodec{})

	_, err := service.ListBySubject(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DecryptFailureYieldsSentinel(t *testing.T) {
	repo := &fakeRepo{}
	codec := &fakeCodec{}
	service := newTestService(repo, codec)

	created, err := service.Create(context.Background(), validCreate())
	require.NoError(t, err)

	// Every later read hits a codec that can no longer decrypt.
	codec.failDecrypt = true

	view, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err, "a bad record must not fail the read")
	assert.Equal(t, NameUnavailable, view.Name)

	views, err := service.ListBySubject(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, NameUnavailable, views[0].Name)
}
