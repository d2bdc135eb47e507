package http

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	applog "foodlog/internal/log"
	"foodlog/internal/middleware/security"
	"foodlog/internal/middleware/trace"
	"foodlog/internal/services"
	appweb "foodlog/web"
)

// Server renders the single food log session and accepts its UI events.
type Server struct {
	http.Server
	templates *template.Template
	session   *services.Session
	logger    *applog.Logger
	started   time.Time

	shutdownOnce sync.Once
}

// NewServer wires routes, middleware and the embedded templates.
func NewServer(addr string, session *services.Session, logger *applog.Logger) (*Server, error) {
	logger = logger.WithComponent(applog.ComponentHTTP)

	t, err := template.New("").Funcs(template.FuncMap{
		"kcal": formatCalories,
	}).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	mux := http.NewServeMux()
	s := &Server{
		templates: t,
		session:   session,
		logger:    logger,
		started:   time.Now(),
	}

	sub, err := fs.Sub(appweb.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}
	static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	// UI events
	mux.HandleFunc("/menu/open", s.handleOpenMenu)
	mux.HandleFunc("/menu/close", s.handleCloseMenu)
	mux.HandleFunc("/navigate", s.handleNavigate)
	mux.HandleFunc("/staging/food", s.handleStageFood)
	mux.HandleFunc("/staging/calories", s.handleStageCalories)
	mux.HandleFunc("/entries", s.handleSubmit)

	// JSON API
	mux.HandleFunc("/api/entries", s.handleAPIEntries)
	mux.HandleFunc("/api/totals", s.handleAPITotals)
	mux.HandleFunc("/api/calendar", s.handleAPICalendar)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracing := trace.NewMiddleware(logger)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           tracing.Middleware(headers.Middleware(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Shutdown gracefully stops the server. Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
