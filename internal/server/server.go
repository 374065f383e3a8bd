// Package server exposes the BoM and the prediction engine over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	DB           *gorm.DB
	Port         int
	Out          io.Writer
	Logger       *zap.Logger
	HRMultiplier float64
	Workers      int
	Limits       milhdbk217f.StressLimitTable
	// CalcLock serializes recalculations; share it with the scheduler.
	CalcLock sync.Locker
}

// Server serves the JSON API. Recalculations are serialized so two
// requests never write metrics for the same tree at once.
type Server struct {
	db           *gorm.DB
	logger       *zap.Logger
	hrMultiplier float64
	workers      int
	limits       milhdbk217f.StressLimitTable
	dispatcher   *milhdbk217f.Dispatcher

	calcMu sync.Locker
}

// New validates opts and returns a Server.
func New(opts StartOpts) (*Server, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("server: db is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Limits.Len() == 0 {
		opts.Limits = milhdbk217f.DefaultStressLimits()
	}
	if opts.CalcLock == nil {
		opts.CalcLock = &sync.Mutex{}
	}
	return &Server{
		db:           opts.DB,
		logger:       opts.Logger,
		hrMultiplier: opts.HRMultiplier,
		workers:      opts.Workers,
		limits:       opts.Limits,
		dispatcher:   milhdbk217f.NewDispatcher(opts.Limits),
		calcMu:       opts.CalcLock,
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.logRequests())
	registerRoutes(router, s)
	return router
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	s, err := New(opts)
	if err != nil {
		return err
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "API running at http://localhost:%d\n", opts.Port)
	}
	s.logger.Info("api server started", zap.Int("port", opts.Port))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
