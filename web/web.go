// Package web serves the geometry builders over HTTP: registered names,
// command directories, constructed volume trees and vertex samples.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/run"
)

var log = config.NamedLogger("web")

const shutdownTimeout = 5 * time.Second

// Server keeps the default geometry, built from the configured geometry and
// macros, next to the per request builds.
type Server struct {
	conf   *config.Config
	router http.Handler

	mu         sync.RWMutex
	current    *run.Construction
	currentErr error

	watcher *macroWatcher
}

// NewServer creates the server. Call Reload to build the default geometry.
func NewServer(conf *config.Config) *Server {
	s := &Server{conf: conf}
	s.router = setupRoutes(&handler{server: s})
	return s
}

// NewRouter creates a server, builds the default geometry once and returns
// its routes.
func NewRouter(conf *config.Config) (http.Handler, error) {
	s := NewServer(conf)
	if err := s.Reload(); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return s.Router(), nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.router }

// Reload rebuilds the default geometry. On failure the previous build is
// kept and the error is reported by /default until the next success.
func (s *Server) Reload() error {
	if s.conf.Geometry == "" {
		return nil
	}
	c, err := s.buildDefault()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentErr = err
	if err != nil {
		return err
	}
	s.current = c
	log.Infof("Default geometry %s rebuilt", s.conf.Geometry)
	return nil
}

func (s *Server) buildDefault() (*run.Construction, error) {
	m, err := run.NewManagerFor(s.conf.Geometry)
	if err != nil {
		return nil, err
	}
	for _, path := range s.conf.Macros {
		if err := m.ExecuteMacroFile(path); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := m.Seed(s.conf.Seed); err != nil {
		return nil, err
	}
	if err := m.Initialize(); err != nil {
		return nil, err
	}
	return m.Export(s.conf.Geometry), nil
}

// Default returns the last successful default build.
func (s *Server) Default() (*run.Construction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		if s.currentErr != nil {
			return nil, fmt.Errorf("%w: %v", errNotReady, s.currentErr)
		}
		return nil, errNotReady
	}
	return s.current, nil
}

// Watch rebuilds the default geometry whenever one of the macros changes.
func (s *Server) Watch() error {
	if len(s.conf.Macros) == 0 {
		return nil
	}
	if s.watcher != nil {
		return errors.New("macros are already watched")
	}
	w, err := newMacroWatcher(s.conf.Macros, func(path string) {
		log.Infof("Macro %s changed", path)
		if err := s.Reload(); err != nil {
			log.Warnf("Rebuilding default geometry failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.watcher = w
	return nil
}

// Close stops watching macros.
func (s *Server) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// Start serves on the configured address until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.conf.Address, Handler: s.router}
	go func() {
		<-ctx.Done()
		ctxTo, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxTo); err != nil {
			log.Warnf("Shutdown: %v", err)
		}
	}()
	log.Infof("Listening on %s", s.conf.Address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
