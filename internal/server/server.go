// Package server serves the rendered evaluation matrix over HTTP. The
// document is reloaded on every request; a load failure renders the static
// failure notice instead of the table.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mwiater/evalgrid/internal/logging"
	"github.com/mwiater/evalgrid/internal/report"
	"github.com/mwiater/evalgrid/internal/results"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr     = "127.0.0.1:8080"
	shutdownTimeout = 5 * time.Second
)

// Config holds the HTTP server configuration.
type Config struct {
	Addr    string
	Input   string
	Title   string
	Timeout time.Duration
	Strict  bool
}

// Server wraps the HTTP server with its configuration.
type Server struct {
	cfg Config
	srv *http.Server
}

// New creates a server; routes are registered immediately.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	s := &Server{cfg: cfg}
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed, request-logging handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /result.json", s.handleDocument)
	mux.HandleFunc("GET /{$}", s.handleReport)
	return logRequests(mux)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.LogEvent("[SERVE] Listening on %s (input=%s)", ln.Addr(), s.cfg.Input)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.LogEvent("[SERVE] Shutting down")
		return s.srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := report.Load(r.Context(), report.LoadOptions{
		Input:   s.cfg.Input,
		Timeout: s.cfg.Timeout,
		Strict:  s.cfg.Strict,
	})
	if err != nil {
		logging.LogEvent("[SERVE] Unable to build report: %v", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, results.ErrLoadFailure) {
			status = http.StatusBadGateway
		}
		s.writeFailure(w, status, err)
		return
	}

	var buf bytes.Buffer
	if err := report.RenderHTML(&buf, rep, report.HTMLOptions{Title: s.cfg.Title, GeneratedAt: time.Now()}); err != nil {
		s.writeFailure(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	data, err := results.Fetch(r.Context(), results.NewSource(s.cfg.Input), s.cfg.Timeout)
	if err != nil {
		logging.LogEvent("[SERVE] Unable to fetch document: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) writeFailure(w http.ResponseWriter, status int, cause error) {
	var buf bytes.Buffer
	if err := report.RenderFailure(&buf, s.cfg.Title, cause); err != nil {
		http.Error(w, "Error loading evaluation results.", status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
