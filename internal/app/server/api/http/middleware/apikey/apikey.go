package apikey

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// HeaderName carries the shared secret on every protected request.
const HeaderName = "X-API-Key"

type APIKey struct {
	key string
	log *slog.Logger
}

func New(key string, log *slog.Logger) *APIKey {
	return &APIKey{
		key: key,
		log: log.With("component", "apikey_middleware"),
	}
}

// Middleware rejects requests without the header (401) or with a wrong key
// (403). The comparison is constant-time.
func (a *APIKey) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		got := ctx.Header(HeaderName)

		if got == "" {
			a.log.Debug("missing api key", "path", ctx.URL().Path)
			writeError(ctx, http.StatusUnauthorized, "API key is missing")
			return
		}

		if subtle.ConstantTimeCompare([]byte(got), []byte(a.key)) != 1 {
			a.log.Debug("invalid api key", "path", ctx.URL().Path)
			writeError(ctx, http.StatusForbidden, "API key is invalid")
			return
		}

		next(ctx)
	}
}

func writeError(ctx huma.Context, status int, msg string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": msg,
	})
}
