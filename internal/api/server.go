// Package api serves the kanji catalog and quiz engine over JSON HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/kanjiz/internal/kanji"
)

// Config configures the HTTP server.
type Config struct {
	Addr string

	// AllowedOrigins for CORS. Empty allows any origin without credentials.
	AllowedOrigins []string

	// RequestTimeout is applied to every request through middleware.Timeout.
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown once ctx is done.
	ShutdownTimeout time.Duration

	// Quiet drops the per-request access log.
	Quiet bool
}

// DefaultConfig listens on :8080 with a 30s request timeout.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// NewRouter mounts every route over catalog.
func NewRouter(catalog kanji.Catalog, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	if !cfg.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: len(cfg.AllowedOrigins) > 0,
		MaxAge:           300,
	}))

	r.Get("/healthz", HealthHandler())
	r.Get("/modes", ModesHandler())
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", ListLessonsHandler(catalog))
		r.Get("/{lessonID}", GetLessonHandler(catalog))
	})
	r.Get("/kanji", SearchKanjiHandler(catalog))
	r.Get("/kanji/{kanjiID}", GetKanjiHandler(catalog))
	r.Route("/quizzes", func(r chi.Router) {
		r.Post("/", CreateQuizHandler(catalog))
		r.Post("/score", ScoreQuizHandler())
	})
	return r
}

// Serve runs the server until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, catalog kanji.Catalog, cfg Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(catalog, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
