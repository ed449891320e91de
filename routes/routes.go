package routes

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"reclaimme/config"
	"reclaimme/controllers"
	middlewares "reclaimme/middleware"
)

// SetupRoutes installs the middleware chain and every route.
func SetupRoutes(r *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(logger))
	if cfg.Metrics.Enabled {
		r.Use(middlewares.Metrics())
	}
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	SetupServiceRoutes(r, cfg)
	SetupDocumentRoutes(r)
}

func SetupServiceRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/", controllers.ServiceInfo(cfg.App.Name, cfg.App.Version))
	r.GET("/health", controllers.Health)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

func SetupDocumentRoutes(r *gin.Engine) {
	// gin redirects /generate-documents here with a 307
	r.POST("/generate-documents/", controllers.GenerateDocuments)
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader}
	c.ExposeHeaders = []string{middlewares.RequestIDHeader}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
