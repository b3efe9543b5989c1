package rest

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"thermo-agent/internal/api/httputil"
	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// Analyzer интерфейс анализа сессий для HTTP-слоя
type Analyzer interface {
	ListSessions(ctx context.Context) ([]string, error)
	AnalyzeSession(ctx context.Context, sessionID string) (*entity.SessionReport, error)
}

// Options параметры HTTP-сервера.
type Options struct {
	Addr        string
	DataDir     string
	FrontendDir string
}

// Server HTTP API отчётов: список сессий, анализ, тепловые карты и фронтенд.
type Server struct {
	analyzer Analyzer
	sessions port.SessionSource
	renderer port.HeatmapRenderer
	opts     Options
}

// NewServer создаёт HTTP-сервер.
func NewServer(analyzer Analyzer, sessions port.SessionSource, renderer port.HeatmapRenderer, opts Options) *Server {
	return &Server{
		analyzer: analyzer,
		sessions: sessions,
		renderer: renderer,
		opts:     opts,
	}
}

// Handler собирает маршруты. Маршруты API регистрируются раньше фронтенда на "/".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", s.handleSessions)
	mux.HandleFunc("GET /analyze/{session_id}", s.handleAnalyze)
	mux.HandleFunc("GET /images/{session_id}/{file}", s.handleImage)

	if dir := s.opts.FrontendDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			mux.Handle("GET /", http.FileServer(http.Dir(dir)))
		}
	}

	return withRequestLog(withCORS(mux))
}

// Run запускает сервер и останавливает его при отмене ctx.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API listening on %s", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.analyzer.ListSessions(r.Context())
	if err != nil {
		log.Printf("[%s] list sessions: %v", RequestID(r.Context()), err)
		httputil.InternalServerError(w, "failed to list sessions")
		return
	}
	httputil.WriteJSONOK(w, map[string][]string{"sessions": sessions})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	report, err := s.analyzer.AnalyzeSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, entity.ErrSessionNotFound) {
			httputil.NotFound(w, "session not found")
			return
		}
		log.Printf("[%s] analyze session %s: %v", RequestID(r.Context()), sessionID, err)
		httputil.InternalServerError(w, "analysis failed")
		return
	}
	httputil.WriteJSONOK(w, report)
}

// handleImage отдаёт готовый PNG из каталога сессии или рисует его по сетке
// и кладёт рядом для следующих запросов.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	file := r.PathValue("file")
	capture, ok := strings.CutSuffix(file, ".png")
	if !ok || !validName(sessionID) || !validName(capture) {
		httputil.NotFound(w, "image not found")
		return
	}

	path := filepath.Join(s.opts.DataDir, sessionID, file)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	grid, err := s.sessions.LoadCapture(r.Context(), sessionID, capture)
	if err != nil {
		if errors.Is(err, entity.ErrSessionNotFound) || errors.Is(err, entity.ErrCaptureNotFound) {
			httputil.NotFound(w, "image not found")
			return
		}
		log.Printf("[%s] load capture %s/%s: %v", RequestID(r.Context()), sessionID, capture, err)
		httputil.InternalServerError(w, "failed to load capture")
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPNG(&buf, grid); err != nil {
		log.Printf("[%s] render %s/%s: %v", RequestID(r.Context()), sessionID, capture, err)
		httputil.InternalServerError(w, "failed to render image")
		return
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		log.Printf("[%s] cache heatmap %s: %v", RequestID(r.Context()), path, err)
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] write image: %v", RequestID(r.Context()), err)
	}
}

// writeFileAtomic пишет во временный файл того же каталога и переименовывает его,
// чтобы параллельный запрос не отдал недописанный PNG.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
