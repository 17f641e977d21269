// Package api assembles the chi mux with every operation registered through
// huma.
//
// GET  /                    # Home (public)
// GET  /version             # Version info (public)
// GET  /api/v1/health       # Health check (public)
// POST /api/subjects        # Create subject (api key)
// GET  /api/subjects        # List subjects (api key)
// POST /api/students        # Create student (api key)
// GET  /api/students        # List students by subject (api key)
// GET  /api/students/{id}   # Get student (api key)
// PUT  /api/students/{id}   # Update student (api key)
// POST /api/register        # Register user session (api key)
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "classkeeper/internal/app/server/api/http/health"
	"classkeeper/internal/app/server/api/http/middleware/apikey"
	logMW "classkeeper/internal/app/server/api/http/middleware/logger"
	registerAPI "classkeeper/internal/app/server/api/http/register"
	studentAPI "classkeeper/internal/app/server/api/http/student"
	subjectAPI "classkeeper/internal/app/server/api/http/subject"
	"classkeeper/internal/app/server/config"
	"classkeeper/internal/app/server/crypto"
	"classkeeper/internal/domain/session"
	"classkeeper/internal/domain/student"
	"classkeeper/internal/domain/subject"
	"classkeeper/internal/infrastructure/storage/jsonfile"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Subject  *subjectAPI.Handler
	Student  *studentAPI.Handler
	Register *registerAPI.Handler
}

// New creates a *chi.Mux with all operations registered via huma.Register.
func New(cfg *config.Config, cipher *crypto.Cipher, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Classkeeper API", healthAPI.AppVersion)
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"apiKey": {Type: "apiKey", In: "header", Name: apikey.HeaderName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, cipher, log)
	h.Health.SetupRoutes(API)
	h.Subject.SetupRoutes(API)
	h.Student.SetupRoutes(API)
	h.Register.SetupRoutes(API)

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Home Route - Version " + healthAPI.AppVersion))
	})

	return mux
}

func handlers(cfg *config.Config, cipher *crypto.Cipher, log *slog.Logger) *Handlers {
	locks := jsonfile.NewLockRegistry(cfg.Storage.LockTimeout)
	repos := jsonfile.NewRepositories(cfg.Storage.DataDir, locks)

	subjectService := subject.NewService(repos.Subjects, log)
	studentService := student.NewService(repos.Students, subjectService, cipher, log)
	sessionService := session.NewService(repos.Sessions, log)

	requestLogger := logMW.New(log).Middleware()
	keyCheck := apikey.New(cfg.Auth.APIKey, log).Middleware()

	public := huma.Middlewares{requestLogger}
	protected := huma.Middlewares{requestLogger, keyCheck}

	return &Handlers{
		Health:   healthAPI.NewHandler(log, public),
		Subject:  subjectAPI.NewHandler(subjectService, log, protected),
		Student:  studentAPI.NewHandler(studentService, log, protected),
		Register: registerAPI.NewHandler(sessionService, log, protected),
	}
}
