// Package api serves the read-only query/reporting surface over the
// transaction store.
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/store"
)

// Server exposes the transaction store over HTTP.
type Server struct {
	store  *store.Store
	logger logging.Logger
	engine *gin.Engine
	now    func() time.Time
}

// NewServer builds the gin engine and registers all routes.
func NewServer(st *store.Store, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		store:  st,
		logger: logger,
		engine: gin.New(),
		now:    time.Now,
	}
	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.root)
	s.engine.GET("/health", s.health)
	s.engine.GET("/transactions", s.listTransactions)
	s.engine.GET("/transactions/:id", s.getTransaction)
	s.engine.GET("/analytics", s.analytics)
	s.engine.GET("/categories", s.categories)
	s.engine.GET("/networks", s.networks)
	s.engine.GET("/stats", s.stats)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	s.logger.Info("Starting API server", logging.Field{Key: "addr", Value: addr})
	return s.engine.Run(addr)
}
