package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/service"
)

// RouterConfig carries the dependencies of the HTTP API.
type RouterConfig struct {
	Evaluator      *service.EvaluatorService
	Generator      *service.GeneratorService
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy honours X-Forwarded-For / X-Real-IP for the client address.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy     bool
}

// NewRouter wires the HTTP API. ctx bounds background work such as
// rate-limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	evalHandler := NewEvaluatorHandler(cfg.Evaluator)
	genHandler := NewGeneratorHandler(cfg.Generator)

	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/evaluate", evalHandler.HandleEvaluate)
		r.Post("/generate", genHandler.HandleGenerate)
	})

	return r
}
