package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vitalkey/vitalkey-api/internal/handler"
	authHandler "github.com/vitalkey/vitalkey-api/internal/handler/auth"
	medicoHandler "github.com/vitalkey/vitalkey-api/internal/handler/medico"
	pacienteHandler "github.com/vitalkey/vitalkey-api/internal/handler/paciente"
	"github.com/vitalkey/vitalkey-api/internal/middleware"
	"github.com/vitalkey/vitalkey-api/internal/validation"
	"github.com/vitalkey/vitalkey-api/pkg/metrics"
)

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	TimeoutSeconds int
	CORS           middleware.CORSConfig
}

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	authH     *authHandler.Handler
	medicoH   *medicoHandler.Handler
	pacienteH *pacienteHandler.Handler
	healthH   *handler.HealthHandler
	metrics   *metrics.Metrics
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	medicoH *medicoHandler.Handler,
	pacienteH *pacienteHandler.Handler,
	healthH *handler.HealthHandler,
	m *metrics.Metrics,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:    engine,
		auth:      auth,
		authH:     authH,
		medicoH:   medicoH,
		pacienteH: pacienteH,
		healthH:   healthH,
		metrics:   m,
	}

	validation.Register()

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: timeout}),
	)

	engine.Use(middleware.CORS(cfg.CORS))

	if cfg.RateLimitRPS > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.setupHealthCheck(root)

	// Public routes
	r.authH.RegisterRoutes(root)
	r.medicoH.RegisterRoutes(root)
	r.pacienteH.RegisterRoutes(root)

	// Protected routes
	protected := root.Group("")
	protected.Use(r.auth.Authenticate())
	r.medicoH.RegisterProtectedRoutes(protected)
	r.pacienteH.RegisterProtectedRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.healthH.Liveness)
		health.GET("/ready", r.healthH.Readiness)
	}
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
