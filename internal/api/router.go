package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vesper-eve/token-pulse/internal/api/handlers"
	"github.com/vesper-eve/token-pulse/internal/api/middleware"
	"github.com/vesper-eve/token-pulse/internal/observability"
	"github.com/vesper-eve/token-pulse/internal/pulse"
)

// cacheHintSeconds is the public cache lifetime advertised on responses.
const cacheHintSeconds = 30

// Router wraps the Gin router with handlers
type Router struct {
	engine       *gin.Engine
	pulseHandler *handlers.PulseHandler
	metrics      *observability.Metrics
}

// NewRouter creates a new Router. metrics may be nil.
func NewRouter(service *pulse.Service, metrics *observability.Metrics) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:       gin.New(),
		pulseHandler: handlers.NewPulseHandler(service),
		metrics:      metrics,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// setupMiddleware configures middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.Metrics(r.metrics))
	r.engine.Use(middleware.CacheHint(cacheHintSeconds))
	r.engine.Use(middleware.CORS())
}

// setupRoutes configures API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/pulse", r.pulseHandler.Get)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
