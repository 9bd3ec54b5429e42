package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/config"
	"github.com/prawat/portfolio/internal/logging"
	"github.com/prawat/portfolio/internal/nav"
	"github.com/prawat/portfolio/internal/session"
	"github.com/prawat/portfolio/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the portfolio page and the contact form endpoints.
type Server struct {
	cfg      *config.Config
	page     *site.Page
	sessions *session.Registry
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds the gin engine with every route registered.
func New(cfg *config.Config, page *site.Page, sessions *session.Registry, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		page:     page,
		sessions: sessions,
		logger:   logger,
	}

	r := gin.New()
	r.Use(logging.Gin(logger), logging.Recovery(logger))
	r.SetHTMLTemplate(tmpl)
	if cfg.Server.StaticDir != "" {
		r.Static("/static", cfg.Server.StaticDir)
	}
	s.routes(r)
	s.engine = r
	return s, nil
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	// HTMX fragment for the contact form
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)
	r.GET("/contact/status", s.handleContactStatus)

	r.POST("/theme", s.handleThemeToggle)
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) menu() []nav.Item {
	sections := s.cfg.Nav.Sections
	if len(sections) == 0 {
		return nil
	}
	return nav.Items(sections, sections[0].ID)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}
