// Package site serves the generated output directory for local preview.
package site

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/naveenpatil1/learning/internal/render"
)

// Server is a read-only HTTP server over a generated site directory.
type Server struct {
	router chi.Router
	dir    string
	log    *slog.Logger
}

func NewServer(dir string, log *slog.Logger) *Server {
	s := &Server{dir: dir, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/api/manifest", s.handleManifest)
	r.Handle("/*", http.FileServer(http.Dir(s.dir)))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleManifest reports what has been generated so far.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	m, err := render.LoadManifest(s.dir)
	if err != nil {
		s.log.Error("manifest read failed", "error", err)
		http.Error(w, `{"error":"manifest unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// CheckDir verifies the site directory exists before serving it.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "serve", Path: filepath.Clean(dir), Err: os.ErrInvalid}
	}
	return nil
}
