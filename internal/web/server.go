// Package web serves the portfolio: the full page, the htmx fragments behind
// the interactive sections, static files and operational endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saifidev/portfolio/internal/config"
	"github.com/saifidev/portfolio/internal/contact"
	"github.com/saifidev/portfolio/internal/content"
	"github.com/saifidev/portfolio/internal/metrics"
	"github.com/saifidev/portfolio/internal/projects"
)

// Server wires content, section logic and the gin router together.
type Server struct {
	cfg     *config.Config
	store   *content.Store
	grid    *projects.Grid
	desk    *contact.Desk
	metrics *metrics.Metrics
	logger  *slog.Logger
	tmpl    *template.Template
	engine  *gin.Engine

	// now is the clock used for the copyright year and banner expiry.
	now func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithSubmitter replaces the simulated contact submitter.
func WithSubmitter(sub contact.Submitter) Option {
	return func(s *Server) {
		s.desk = s.newDesk(sub)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
		s.desk.Now = now
	}
}

// New builds a server. The content store may be swapped underneath it at
// any time; every request reads the current document once.
func New(cfg *config.Config, store *content.Store, m *metrics.Metrics, logger *slog.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		store:   store,
		grid:    projects.NewGrid(cfg.Projects.InitialVisible, cfg.Projects.BatchSize),
		metrics: m,
		logger:  logger,
		tmpl:    tmpl,
		now:     time.Now,
	}
	s.desk = s.newDesk(contact.SimulatedSubmitter{Delay: cfg.Contact.Delay})
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) newDesk(sub contact.Submitter) *contact.Desk {
	d := contact.NewDesk(sub, func() contact.Options {
		c := s.store.Load()
		return contact.Options{Services: c.Contact.Services, Budgets: c.Contact.Budgets}
	}, s.cfg.Contact.StatusTTL, s.logger)
	d.OnOutcome = func(st contact.Status) {
		s.metrics.Contact.WithLabelValues(string(st)).Inc()
	}
	if s.now != nil {
		d.Now = s.now
	}
	return d
}

// ContentReloaded is the content watcher's reload hook.
func (s *Server) ContentReloaded(c *content.Content) {
	s.metrics.ContentReloads.Inc()
	s.logger.Debug("serving reloaded content", "owner", c.Site.Owner)
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(s.cfg.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(pageViews(s.metrics))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.index)

	sections := r.Group("/sections")
	sections.GET("/projects", s.projectGrid)
	sections.GET("/projects/more", s.projectGridMore)
	sections.GET("/services/:id", s.serviceToggle)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/contact/status", s.contactStatus)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	static, _ := fs.Sub(files, "static")
	r.StaticFS("/static", http.FS(static))
	if s.cfg.AssetsDir != "" {
		r.Static(content.AssetPrefix, s.cfg.AssetsDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
