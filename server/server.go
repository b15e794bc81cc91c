// Package server implements the HTTP API: token endpoint, gated news routes and service endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsgate/pkg/auth"
	"github.com/umputun/newsgate/pkg/domain"
	"github.com/umputun/newsgate/pkg/newsapi"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsService

const (
	msgInternalError = "Internal server error"
	maxBodySize      = 64 * 1024
	shutdownTimeout  = 10 * time.Second
)

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	auth    Authenticator
	news    NewsService
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// Authenticator issues and verifies access tokens
type Authenticator interface {
	Issue(clientID, clientSecret string) (auth.Token, error)
	Verify(token string) (string, error)
	TTL() time.Duration
}

// NewsService provides news operations
type NewsService interface {
	FetchAndSaveLatest(ctx context.Context, countryCode string) ([]domain.Article, error)
	Search(ctx context.Context, page, pageSize int) ([]newsapi.Record, error)
	HeadlinesByCountry(ctx context.Context, country string) ([]newsapi.Record, error)
	HeadlinesBySource(ctx context.Context, source string) ([]newsapi.Record, error)
	HeadlinesFiltered(ctx context.Context, country, source string) ([]newsapi.Record, error)
	SavedArticles(ctx context.Context, limit, offset int) ([]domain.Article, error)
	SavedCount(ctx context.Context) (int, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, authenticator Authenticator, news NewsService, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		auth:    authenticator,
		news:    news,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsgate", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.SizeLimit(maxBodySize))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("POST /token", s.tokenHandler)
	s.router.HandleFunc("GET /status", s.statusHandler)

	// everything under /news requires a valid token
	s.router.Mount("/news").Route(func(r *routegroup.Bundle) {
		r.Use(s.authMiddleware)
		r.HandleFunc("GET /{$}", s.searchHandler)
		r.HandleFunc("POST /save-latest", s.saveLatestHandler)
		r.HandleFunc("GET /headlines/country/{country_code}", s.headlinesByCountryHandler)
		r.HandleFunc("GET /headlines/source/{source_id}", s.headlinesBySourceHandler)
		r.HandleFunc("GET /headlines/filter", s.headlinesFilteredHandler)
		r.HandleFunc("GET /saved", s.savedHandler)
		r.HandleFunc("GET /saved/rss", s.savedRSSHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	count, err := s.news.SavedCount(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to count saved articles: %v", err)
		status["status"] = "degraded"
	} else {
		status["saved"] = count
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON with the message as detail
func renderError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	renderJSON(w, r, code, rest.JSON{"detail": msg})
}

// renderInternalError logs the detail and sends the generic message only
func renderInternalError(w http.ResponseWriter, r *http.Request, err error) {
	lgr.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
	renderError(w, r, http.StatusInternalServerError, msgInternalError)
}
