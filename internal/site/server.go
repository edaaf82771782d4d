// Package site serves the content collections as a website.
package site

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/awc-hub/awchub/internal/assets"
	"github.com/awc-hub/awchub/internal/cache"
	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/parser"
)

// Source supplies loaded collections by kind. Both *cache.Cache and
// cache.LoaderFunc over a Repository satisfy it.
type Source = cache.Getter[content.Kind, content.Result[content.Entity]]

// DefaultSiteTitle is used when Options.SiteTitle is empty.
const DefaultSiteTitle = "AWC 정보 허브"

// Options configures a Server.
type Options struct {
	SiteTitle string

	// Assets resolves record images. Nil resolves every image to the placeholder.
	Assets *assets.Resolver

	// Renderer renders tournament descriptions.
	Renderer *parser.Renderer

	// Hub receives live-reload connections on /ws. Nil disables live reload.
	Hub *Hub

	Logger *slog.Logger
}

// Server renders the site's pages.
type Server struct {
	source    Source
	title     string
	assets    *assets.Resolver
	renderer  *parser.Renderer
	hub       *Hub
	logger    *slog.Logger
	templates *templates
	router    *mux.Router
}

// New creates a Server reading collections from source.
func New(source Source, opts Options) (*Server, error) {
	if source == nil {
		return nil, errors.New("site: content source is required")
	}

	tmpl, err := loadTemplates(opts.Assets.ImageURL)
	if err != nil {
		return nil, err
	}

	s := &Server{
		source:    source,
		title:     opts.SiteTitle,
		assets:    opts.Assets,
		renderer:  opts.Renderer,
		hub:       opts.Hub,
		logger:    opts.Logger,
		templates: tmpl,
	}
	if s.title == "" {
		s.title = DefaultSiteTitle
	}
	if s.renderer == nil {
		s.renderer = parser.NewRenderer()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the site.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, securityHeaders)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet, http.MethodHead)
	for _, sec := range sections {
		r.HandleFunc(sec.Path, s.sectionHandler(sec)).Methods(http.MethodGet, http.MethodHead)
	}
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	r.PathPrefix(assets.BundledPrefix).Handler(
		http.StripPrefix(assets.BundledPrefix, http.FileServer(http.FS(assets.FS()))))
	if s.assets != nil && s.assets.StaticDir() != "" {
		r.PathPrefix(assets.StaticPrefix).Handler(
			http.StripPrefix(assets.StaticPrefix, noDirListing(http.FileServer(http.Dir(s.assets.StaticDir())))))
	}
	if s.hub != nil {
		r.Handle("/ws", s.hub)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.renderError(w, req, http.StatusNotFound, "페이지를 찾을 수 없습니다.", "/", "◀ 메인으로 돌아가기")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving site", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.hub != nil {
		s.hub.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrade through the logging middleware.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
