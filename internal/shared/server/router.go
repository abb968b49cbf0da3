package server

import (
	"github.com/gin-gonic/gin"

	"water-backend/internal/assessments"
	"water-backend/internal/labreports"
	"water-backend/internal/reference"
	"water-backend/internal/services/health"
	"water-backend/internal/shared/config"
	"water-backend/internal/shared/metrics"
	"water-backend/internal/shared/server/middleware"
	"water-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	AssessmentHandler *assessments.Handler
	LabReportsHandler *labreports.Handler
	ReferenceHandler  *reference.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.RegisterRoutes(api)
	}
	if deps.LabReportsHandler != nil {
		deps.LabReportsHandler.RegisterRoutes(api)
	}
	if deps.ReferenceHandler != nil {
		deps.ReferenceHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
