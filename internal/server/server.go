// Package server exposes the people-in-space page over HTTP. The page
// starts with a load button; submitting it runs the pipeline once and
// answers with the rendered profiles and no button.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ppiankov/astros/internal/pipeline"
	"github.com/ppiankov/astros/internal/render"
)

// Runner executes one pipeline run against a sink
type Runner interface {
	Run(ctx context.Context, sink pipeline.Sink, onFinish func()) error
}

// Server serves the page and its load action
type Server struct {
	runner         Runner
	defaultVehicle string
	logger         *slog.Logger
}

// New creates a server backed by runner
func New(runner Runner, defaultVehicle string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{runner: runner, defaultVehicle: defaultVehicle, logger: logger}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /load", s.handleLoad)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.WritePage(&buf, render.Page{Trigger: true, Action: "/load"}); err != nil {
		s.logger.Error("render index", "error", err)
		http.Error(w, render.FailureMessage, http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	start := time.Now()

	status := http.StatusOK
	err := s.runner.Run(r.Context(), render.NewHTMLSink(&buf, s.defaultVehicle), func() {
		s.logger.Info("load finished", "elapsed", time.Since(start), "remote", r.RemoteAddr)
	})
	if err != nil {
		status = http.StatusBadGateway
	}

	writeHTML(w, status, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
