package api

import (
	"net/http"
	"path"
	"time"

	"github.com/Aidin1998/goodbye/common/apiutil"
	_ "github.com/Aidin1998/goodbye/docs"
	"github.com/Aidin1998/goodbye/internal/infrastructure/config"
	"github.com/Aidin1998/goodbye/internal/infrastructure/server"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	logger *zap.Logger
	config *config.Config
}

// NewServer creates the API server. The route table is fixed: GET /,
// GET /goodbye and a JSON 404 for everything else.
func NewServer(logger *zap.Logger, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	server := &Server{
		logger: logger,
		config: cfg,
	}

	router := gin.New()

	// Unmatched method/path pairs must reach NoRoute untouched: no 301 to a
	// slash variant and no 405 for a known path.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	router.Use(apiutil.RequestID())
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String("request_id", apiutil.GetRequestID(c))}
		},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(otelgin.Middleware(cfg.Otel.ServiceName))
	router.Use(apiutil.SecurityHeaders())

	if cfg.Metrics.Enabled {
		router.Use(apiutil.MetricsMiddleware())
	}

	if cfg.CORS.Enabled {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORS.AllowOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", apiutil.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", apiutil.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	server.router = router
	server.registerRoutes()
	return server
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.GET("/", s.root)
	s.router.GET("/goodbye", s.goodbye)
	s.router.NoRoute(s.notFound)
}

// NewAdminRouter serves the Prometheus exposition, health and Swagger UI
// endpoints. It runs on its own listener so the API route table stays
// untouched.
func NewAdminRouter(logger *zap.Logger, cfg config.MetricsConfig, health *server.HealthChecker) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.GET(cfg.Path, gin.WrapH(promhttp.Handler()))
	if health != nil {
		router.GET(cfg.HealthPath, gin.WrapF(health.HealthHandler()))
	}
	if cfg.DocsPath != "" {
		router.GET(path.Join(cfg.DocsPath, "*any"), ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return router
}
