// Package web serves MindGym to browsers: server-rendered pages driven by
// plain HTML forms, a JSON API and a websocket action channel.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/abhisek/mindgym/internal/store"
)

const (
	timeout         = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP front end over a session store.
type Server struct {
	cfg    Config
	store  *store.Store
	logger *slog.Logger
	tmpl   *template.Template
	router *httprouter.Router
}

// New builds a server and registers its routes.
func New(cfg Config, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		store:  st,
		logger: logger,
		tmpl:   parseTemplates(),
		router: httprouter.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	mux := s.router
	prefix := s.cfg.prefix()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		s.logger.Error("panic serving request", "path", r.URL.Path, "panic", v)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(&s.cfg, w)
		w.WriteHeader(http.StatusInternalServerError)

		_, _ = io.WriteString(w, newPage(prefix, "Server Error", "An error has occurred. Please try again."))
	}

	if prefix != "" {
		mux.GET(prefix, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			http.Redirect(w, r, prefix+"/", http.StatusMovedPermanently)
		})
	}

	mux.GET(prefix+"/", s.servePage())
	mux.POST(prefix+"/action", s.serveAction())

	mux.GET(prefix+"/api/session", s.serveSessionJSON())
	mux.POST(prefix+"/api/action", s.serveActionJSON())

	mux.GET(prefix+"/ws", s.serveSocket())
	mux.GET(prefix+"/qr", s.serveQR())

	mux.GET(prefix+"/healthz", s.serveHealthCheck())
	mux.GET(prefix+"/robots.txt", s.serveRobots())
	mux.GET(prefix+"/version", s.serveVersion())
	mux.GET(prefix+"/static/*filepath", s.serveStatic())

	if s.cfg.Profile {
		registerProfileHandlers(prefix, mux)
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return requestLogger(s.logger, s.router)
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port)),
		Handler:           s.Handler(),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	s.logger.Info("listening",
		"url", fmt.Sprintf("%s://%s%s/", s.cfg.scheme(), ln.Addr(), s.cfg.prefix()),
		"version", s.cfg.Version,
	)

	errc := make(chan error, 1)
	go func() {
		if s.cfg.TLSCert != "" && s.cfg.TLSKey != "" {
			errc <- srv.ServeTLS(ln, s.cfg.TLSCert, s.cfg.TLSKey)
		} else {
			errc <- srv.Serve(ln)
		}
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
