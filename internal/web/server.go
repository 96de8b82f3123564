// Package web serves the board as a single HTML page. Completion state is
// held in process memory for the lifetime of the server.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/alexanderramin/studyboard/internal/config"
	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/board.html
var boardHTML string

const shutdownTimeout = 5 * time.Second

// Server renders one shared board session over HTTP.
type Server struct {
	board   domain.Board
	tracker *domain.CompletionTracker
	cfg     config.Config
	logger  *zap.Logger
	engine  *gin.Engine
}

// NewServer builds the router for b. The board's completion tracker starts
// empty and lives as long as the Server.
func NewServer(b domain.Board, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		board:   b,
		tracker: domain.NewCompletionTracker(b.Schedule),
		cfg:     cfg,
		logger:  logger.With(zap.String("session", uuid.NewString())),
	}

	r := gin.New()
	r.Use(recoverWithLog(s.logger))
	r.Use(requestLog(s.logger))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	r.SetHTMLTemplate(template.Must(template.New("board").Parse(boardHTML)))

	limit := rateLimit(newLimiterStore(cfg.RatePerMin, cfg.RateBurst), s.logger)

	r.GET("/", s.handleBoard)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/toggle/:day/:task", limit, s.handleToggleForm)

	api := r.Group("/api")
	{
		api.GET("/schedule", s.handleSchedule)
		api.GET("/completions", s.handleCompletions)
		api.POST("/toggle/:day/:task", limit, s.handleToggleJSON)
	}

	s.engine = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving board", zap.String("addr", s.cfg.Addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("board server stopped", zap.Int("done", s.tracker.DoneCount()))
	return nil
}

// toggle flips one task; unknown keys are ignored.
func (s *Server) toggle(k domain.CompletionKey) (done, changed bool) {
	task, ok := s.board.Schedule.Task(k)
	if !ok {
		s.logger.Debug("toggle ignored", zap.Int("day", k.Day), zap.Int("task", k.Task))
		return false, false
	}
	done, changed = s.tracker.Toggle(k.Day, k.Task)
	s.logger.Debug("task toggled",
		zap.Int("day", k.Day),
		zap.Int("task", k.Task),
		zap.String("title", task.Title),
		zap.Bool("done", done),
	)
	return done, changed
}
