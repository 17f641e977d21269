package subject

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"classkeeper/internal/domain/subject"
	"classkeeper/internal/infrastructure/storage/jsonfile"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, name string) (subject.Subject, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(subject.Subject), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]subject.Subject, error) {
	args := m.Called(ctx)
	return args.Get(0).([]subject.Subject), args.Error(1)
}

func (m *MockService) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_create(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Create", mock.Anything, "Math").
		Return(subject.Subject{ID: "s1", Name: "Math"}, nil)

	output, err := handler.create(context.Background(), &createInput{
		Body: createRequest{Name: "Math"},
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", output.Body.ID)
	assert.Equal(t, "Ok", output.Body.Status)
}

func TestHandler_create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"validation", subject.ErrInvalidInput, http.StatusBadRequest},
		{"duplicate", subject.ErrDuplicateName, http.StatusConflict},
		{"lock timeout", jsonfile.ErrLockTimeout, http.StatusServiceUnavailable},
		{"storage failure", errors.New("disk gone"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			handler := NewHandler(service, slog.Default(), huma.Middlewares{})

			service.On("Create", mock.Anything, mock.Anything).
				Return(subject.Subject{}, tt.serviceErr)

			_, err := handler.create(context.Background(), &createInput{
				Body: createRequest{Name: "Math"},
			})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

func TestHandler_create_InternalErrorHidesDetails(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Create", mock.Anything, mock.Anything).
		Return(subject.Subject{}, errors.New("open /var/data/subjects.json: permission denied"))

	_, err := handler.create(context.Background(), &createInput{
		Body: createRequest{Name: "Math"},
	})
	assert.NotContains(t, err.Error(), "/var/data")
}

func TestHandler_list(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("List", mock.Anything).Return([]subject.Subject{
		{ID: "s1", Name: "Math"},
		{ID: "s2", Name: "History"},
	}, nil)

	output, err := handler.list(context.Background(), &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Body.Total)
	assert.Len(t, output.Body.Subjects, 2)
}
