// Package devserver provides a development HTTP server that previews
// templates through a templaro.Loader: URL paths map to template
// names, resolutions go through the loader's cache and security
// checks, and template edits trigger a websocket live reload.
package devserver

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/templaro-dev/templaro"
	"github.com/templaro-dev/templaro/internal/dev"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address for ListenAndServe.
	// Default: ":8080".
	Addr string

	// WatchInterval is the template directory polling interval.
	// Default: 500ms.
	WatchInterval time.Duration

	// MetricsGatherer backs the /metrics endpoint. Pair it with the
	// registry passed to the loader's Config.MetricsRegistry.
	// If nil, prometheus.DefaultGatherer is used.
	MetricsGatherer prometheus.Gatherer

	// Logger is the structured logger for the server.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server previews templates resolved through a Loader.
type Server struct {
	loader  *templaro.Loader
	router  chi.Router
	reload  *dev.ReloadServer
	watcher *dev.Watcher
	logger  *slog.Logger

	addr    string
	httpSrv *http.Server
}

// New creates a preview server over the given loader.
func New(loader *templaro.Loader, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := cfg.MetricsGatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		loader: loader,
		reload: dev.NewReloadServer(),
		logger: logger,
		addr:   cfg.Addr,
	}
	s.watcher = dev.NewWatcher(s.templateDirs, cfg.WatchInterval, s.onTemplateChange, logger)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/_templaro/reload", s.reload.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/*", s.serveTemplate)
	s.router = r

	return s
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts watching template directories and serves HTTP
// until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.watcher.Start()
	defer s.watcher.Stop()
	defer s.reload.Close()

	s.httpSrv = &http.Server{Addr: s.addr, Handler: s.router}

	errc := make(chan error, 1)
	go func() {
		errc <- s.httpSrv.ListenAndServe()
	}()

	s.logger.Info("template preview server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// serveTemplate maps the request path to a template name and serves
// the resolved bytes. Names the loader rejects, traversal attempts
// included, come back as plain 404s.
func (s *Server) serveTemplate(w http.ResponseWriter, r *http.Request) {
	name := s.templateName(r.URL.Path)
	if name == "" {
		http.NotFound(w, r)
		return
	}

	tpl, err := s.loader.Load(r.Context(), name)
	if err != nil {
		s.logger.Debug("preview lookup failed", "name", name, "error", err)
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, tpl.Name, tpl.ModTime, bytes.NewReader(tpl.Code))
}

// templateName converts a URL path into a loader name: the leading
// slash goes, and requests without a file extension get the loader's
// default one appended.
func (s *Server) templateName(urlPath string) string {
	name := strings.TrimPrefix(urlPath, "/")
	if name == "" {
		return ""
	}
	if path.Ext(name) == "" {
		name += "." + s.loader.DefaultExtension()
	}
	return name
}

// templateDirs snapshots every registered directory across namespaces
// for the watcher.
func (s *Server) templateDirs() []string {
	var dirs []string
	for _, ns := range s.loader.Namespaces() {
		dirs = append(dirs, s.loader.Paths(ns)...)
	}
	return dirs
}

// onTemplateChange invalidates the resolution cache and tells
// connected browsers to reload.
func (s *Server) onTemplateChange(file string) {
	s.logger.Debug("template changed", "file", file)
	s.loader.Invalidate()
	s.reload.NotifyTemplate(file)
}
