package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/tnl-dmg-calc/internal/platform/timeouts"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage/sqlite"
)

// Config defines the inputs for the calculator HTTP boundary.
type Config struct {
	HTTPAddr          string
	BaseURL           string
	DBPath            string
	MaxBodyBytes      int64
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server hosts the calculator HTTP process.
type Server struct {
	httpAddr        string
	shutdownTimeout time.Duration
	httpServer      *http.Server
	store           storage.Store
}

// NewServer builds a configured calculator server. A non-empty DBPath opens
// the saved-session store; without it the session routes are not served.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = timeouts.ReadHeader
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}

	var store storage.Store
	opts := Options{BaseURL: config.BaseURL, MaxBodyBytes: config.MaxBodyBytes}
	if dbPath := strings.TrimSpace(config.DBPath); dbPath != "" {
		sqliteStore, err := sqlite.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		store = sqliteStore
		opts.Sessions = sqliteStore
	}

	return &Server{
		httpAddr:        httpAddr,
		shutdownTimeout: config.ShutdownTimeout,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(opts),
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
		store: store,
	}, nil
}

// Run creates and serves a calculator server until the context ends.
func Run(ctx context.Context, config Config) error {
	server, err := NewServer(config)
	if err != nil {
		return fmt.Errorf("init calc server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve calc: %w", err)
	}
	return nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("calc server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("calc server listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close session store: %v", err)
	}
}
