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

	"github.com/vibpath/vibot/pkg/config"
	"github.com/vibpath/vibot/pkg/domain"
	"github.com/vibpath/vibot/pkg/line"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/events.go -pkg mocks -skip-ensure -fmt goimports . EventHandler

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	prefs   Preferences
	events  EventHandler
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// EventHandler processes parsed webhook events
type EventHandler interface {
	HandleEvent(ctx context.Context, ev line.Event) error
}

// Preferences is the management API view of the preference service
type Preferences interface {
	Enabled(ctx context.Context, userID string) bool
	Set(ctx context.Context, userID string, enabled bool) error
	Delete(ctx context.Context, userID string) (int64, error)
	List(ctx context.Context) ([]domain.Preference, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetLineConfig() config.LineConfig
	GetStaticDir() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, prefs Preferences, events EventHandler, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		prefs:   prefs,
		events:  events,
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
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("vibot", "vibpath", s.version))
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
	s.router.HandleFunc("POST /webhook", s.webhookHandler)
	s.router.HandleFunc("GET /health", s.healthHandler)
	s.router.HandleFunc("GET /{$}", s.rootHandler)
	s.router.HandleFunc("POST /callback", s.callbackHandler)
	s.router.HandleFunc("GET /callback", s.callbackInfoHandler)

	// preference management API
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /users", s.listUsersHandler)
		r.HandleFunc("GET /users/{id}/preferences", s.getPreferenceHandler)
		r.HandleFunc("PUT /users/{id}/preferences", s.setPreferenceHandler)
		r.HandleFunc("DELETE /users/{id}/preferences", s.deletePreferenceHandler)
	})

	// images referenced by flex messages
	if dir := s.config.GetStaticDir(); dir != "" {
		s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
	}
}

// healthHandler reports service health for deployment probes
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{
		"status":  "healthy",
		"service": "vibot",
		"version": s.version,
	}
	renderJSON(w, r, http.StatusOK, health)
}

// rootHandler confirms the service is up
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "active",
		"service": "vibot",
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderSuccess sends data wrapped in the success envelope
func renderSuccess(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	renderJSON(w, r, code, map[string]interface{}{"status": "success", "data": data})
}

// renderError sends error response in the error envelope
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"status": "error", "error": errMsg})
}
