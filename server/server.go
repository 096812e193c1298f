// Package server provides the HTTP JSON API: resolution and progress-log
// CRUD, user settings, weekly summary listing, and secret-guarded endpoints
// triggering the digest jobs on demand. Authentication lives outside, the
// API trusts the user identity it is handed.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/resolved/pkg/domain"
	"github.com/umputun/resolved/pkg/llm"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/stores.go -pkg mocks -skip-ensure -fmt goimports . UserStore ResolutionStore LogStore SummaryStore
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester

// UserStore interface for user operations
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID int64, settings domain.Settings) error
}

// ResolutionStore interface for resolution operations
type ResolutionStore interface {
	Create(ctx context.Context, res *domain.Resolution) error
	Get(ctx context.Context, userID, id int64) (*domain.Resolution, error)
	ListByUser(ctx context.Context, userID int64, status domain.Status) ([]domain.Resolution, error)
	UpdateStatus(ctx context.Context, userID, id int64, status domain.Status) error
	Update(ctx context.Context, userID, id int64, title, description string, targetDate *time.Time) error
}

// LogStore interface for progress-log operations
type LogStore interface {
	Create(ctx context.Context, plog *domain.ProgressLog) error
	ListByResolution(ctx context.Context, resolutionID int64, limit int) ([]domain.ProgressLog, error)
}

// SummaryStore interface for weekly summary operations
type SummaryStore interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.WeeklySummary, error)
}

// Enricher interface for best-effort AI annotation
type Enricher interface {
	SuggestCategory(ctx context.Context, title, description string) (domain.CategoryResult, error)
	EnrichLog(ctx context.Context, req llm.EnrichRequest) (domain.EnrichmentResult, error)
}

// Digester interface for on-demand digest runs
type Digester interface {
	CheckIn(ctx context.Context) (int, error)
	WeeklySummary(ctx context.Context) (int, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetCronSecret() string
}

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	users       UserStore
	resolutions ResolutionStore
	logs        LogStore
	summaries   SummaryStore
	enricher    Enricher
	digester    Digester
	version     string
	debug       bool

	sanitizer *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds all dependencies for the server
type Params struct {
	Config      ConfigProvider
	Users       UserStore
	Resolutions ResolutionStore
	Logs        LogStore
	Summaries   SummaryStore
	Enricher    Enricher
	Digester    Digester
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:      p.Config,
		users:       p.Users,
		resolutions: p.Resolutions,
		logs:        p.Logs,
		summaries:   p.Summaries,
		enricher:    p.Enricher,
		digester:    p.Digester,
		version:     p.Version,
		debug:       p.Debug,
		sanitizer:   bluemonday.StrictPolicy(),
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("resolved", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /resolutions", s.createResolutionHandler)
		r.HandleFunc("GET /resolutions", s.listResolutionsHandler)
		r.HandleFunc("GET /resolutions/{id}", s.getResolutionHandler)
		r.HandleFunc("PUT /resolutions/{id}", s.updateResolutionHandler)
		r.HandleFunc("PUT /resolutions/{id}/status", s.updateStatusHandler)
		r.HandleFunc("POST /resolutions/{id}/logs", s.createLogHandler)

		r.HandleFunc("POST /users", s.createUserHandler)
		r.HandleFunc("GET /users/{id}", s.getUserHandler)
		r.HandleFunc("GET /users/{id}/summaries", s.listSummariesHandler)
		r.HandleFunc("PUT /users/{id}/settings", s.updateSettingsHandler)

		// digest triggers for an external cron, guarded by a shared secret
		r.HandleFunc("POST /cron/check-in", s.cronCheckinHandler)
		r.HandleFunc("POST /cron/weekly-summary", s.cronSummaryHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
