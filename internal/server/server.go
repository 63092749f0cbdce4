package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"attnview/internal/config"
	"attnview/internal/logging"
	"attnview/internal/playback"
	"attnview/internal/review"
)

const (
	mediaPrefix    = "/media/"
	longPollWait   = 25 * time.Second
	maxRequestBody = 4 << 10
)

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces the timer source used by sessions.
func WithClock(clock playback.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithLongPollWait overrides how long /api/state?wait=1 blocks.
func WithLongPollWait(d time.Duration) Option {
	return func(s *Server) {
		s.pollWait = d
	}
}

// Server is the web render surface.
type Server struct {
	bind     string
	root     string
	logger   *slog.Logger
	clock    playback.Clock
	pollWait time.Duration
	library  *review.Library
	sessions *sessionStore
	media    fs.FS
	handler  http.Handler

	listener net.Listener
	server   *http.Server
}

// New wires a Server from cfg.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server requires config")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server.bind is empty")
	}

	s := &Server{
		bind:     bind,
		root:     cfg.Paths.DataRoot,
		logger:   logging.NewComponentLogger(logger, "server"),
		clock:    playback.SystemClock{},
		pollWait: longPollWait,
		media:    os.DirFS(cfg.Paths.DataRoot),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.library = review.NewLibrary(cfg.Paths.DataRoot, cfg.Titles, logger)
	s.sessions = newSessionStore(s.library, cfg.InitialState(), cfg.SessionIdle(), s.clock, logger)
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the bound address once Start succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      s.pollWait + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", logging.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("review server listening",
		logging.String("url", "http://"+listener.Addr().String()+"/"),
		logging.String("data_root", s.root),
	)
	return nil
}

// Stop shuts the HTTP server down and closes every session.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	s.sessions.closeAll()
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/task", s.handleTask)
	mux.HandleFunc("POST /api/select", s.handleSelect)
	mux.HandleFunc("POST /api/start", s.handleStart)
	mux.HandleFunc("POST /api/stop", s.handleStop)
	mux.HandleFunc("POST /api/reload", s.handleReload)
	mux.HandleFunc("POST /api/interval", s.handleInterval)
	mux.HandleFunc("GET "+mediaPrefix+"{path...}", s.handleMedia)
	return requestIDMiddleware(mux, s.logger)
}
