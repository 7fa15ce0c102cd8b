// Package server exposes stories, rooms and ambient audio control over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storyroom/state"
)

type Server struct {
	env    *state.LocalEnv
	log    *zap.Logger
	tr     *translator
	router *gin.Engine
}

// New builds router over assembled environment.
func New(env *state.LocalEnv) (*Server, error) {
	cfg := &env.Cfg.Server

	tr, err := newTranslator(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	s := &Server{
		env:    env,
		log:    env.Log.Named("http"),
		tr:     tr,
		router: gin.New(),
	}

	s.router.Use(RequestID(), s.Recovery(), s.AccessLog(), CORS(cfg.AllowOrigins), tr.Language())
	if len(cfg.MetricsPath) > 0 {
		s.router.Use(Metrics())
		s.router.GET(cfg.MetricsPath, gin.WrapH(promhttp.Handler()))
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.GET("/stories", s.listStories)
		api.GET("/stories/:id", s.getStory)
		api.GET("/rooms", s.listRooms)
		api.GET("/rooms/:id/stories", s.roomStories)
		api.GET("/emotions", s.listEmotions)
		api.GET("/ambient", s.ambientState)
		api.POST("/ambient/:command", s.ambientCommand)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run loads stories, serves requests and drives ambient engine until context
// is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	cfg := &s.env.Cfg.Server

	if rpt := s.env.Library.Report(); rpt.Err != nil {
		s.log.Warn("Some stories were not loaded", zap.Int("skipped", rpt.Skipped), zap.Error(rpt.Err))
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.env.Ambient.Run(gctx)
	})
	g.Go(func() error {
		s.log.Info("Serving", zap.String("address", cfg.Listen))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("unable to shut down http server: %w", err)
		}
		s.log.Info("Server stopped")
		return nil
	})
	return g.Wait()
}
