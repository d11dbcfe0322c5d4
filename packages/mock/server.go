// Package mock provides a development HTTP server with httpbin-style routes
// for exercising the reqtools commands against predictable responses.
package mock

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Server is the mock HTTP server. It always carries the built-in routes and
// can overlay static routes loaded from a YAML file.
type Server struct {
	mu         sync.RWMutex
	router     *Router
	port       int
	delay      time.Duration
	verbose    bool
	limiter    *rate.Limiter
	routesFile string
	watch      bool
}

// Option is a functional option for Server
type Option func(*Server)

// WithPort sets the server port
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithDelay adds a delay to all responses
func WithDelay(delay time.Duration) Option {
	return func(s *Server) {
		s.delay = delay
	}
}

// WithVerbose enables verbose logging
func WithVerbose(verbose bool) Option {
	return func(s *Server) {
		s.verbose = verbose
	}
}

// WithRateLimit caps requests per second; 0 means unlimited.
func WithRateLimit(rps float64) Option {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
		}
	}
}

// WithRoutesFile overlays static routes from a YAML file.
func WithRoutesFile(path string) Option {
	return func(s *Server) {
		s.routesFile = path
	}
}

// WithWatch reloads the routes file when it changes on disk.
func WithWatch(watch bool) Option {
	return func(s *Server) {
		s.watch = watch
	}
}

// NewServer creates a mock server with the built-in routes registered.
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{
		port: 8000,
	}
	for _, opt := range opts {
		opt(s)
	}

	router := NewRouter()
	registerBuiltinRoutes(router)
	s.router = router

	if s.routesFile != "" {
		if err := s.reloadRoutes(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// reloadRoutes rebuilds the router from scratch so removed file routes
// actually disappear.
func (s *Server) reloadRoutes() error {
	router := NewRouter()
	registerBuiltinRoutes(router)

	routes, err := LoadRoutesFile(s.routesFile)
	if err != nil {
		return err
	}
	for _, route := range routes {
		router.AddRoute(route)
	}

	s.mu.Lock()
	s.router = router
	s.mu.Unlock()

	if s.verbose {
		log.Printf("Routes loaded from %s: %d", s.routesFile, len(routes))
	}
	return nil
}

// Routes returns all registered routes.
func (s *Server) Routes() []*Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.router.Routes()
}

// ServeHTTP dispatches a request through the router. Exported so tests can
// mount the server on httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if s.limiter != nil && !s.limiter.Allow() {
		http.Error(w, `{"error": "rate limit exceeded"}`, http.StatusTooManyRequests)
		return
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.RLock()
	route, params := s.router.Match(r.Method, r.URL.Path)
	s.mu.RUnlock()

	if route == nil {
		if s.verbose {
			log.Printf("%s %s -> 404 Not Found (%s)", r.Method, r.URL.Path, time.Since(start))
		}
		http.NotFound(w, r)
		return
	}

	route.Handler(w, r, params)

	if s.verbose {
		log.Printf("%s %s -> %s (%s)", r.Method, r.URL.Path, route.PathPattern, time.Since(start))
	}
}

// StartWithContext runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) StartWithContext(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)

	server := &http.Server{
		Addr:    addr,
		Handler: s,
	}

	if s.watch && s.routesFile != "" {
		go s.watchRoutesFile(ctx)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("Mock server starting on http://localhost:%d", s.port)
	log.Printf("Routes loaded: %d", len(s.Routes()))

	if s.verbose {
		for _, route := range s.Routes() {
			log.Printf("  %s %s", route.Method, route.PathPattern)
		}
	}

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
