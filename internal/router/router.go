package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aulaview/aulaview-backend/internal/config"
	"github.com/aulaview/aulaview-backend/internal/handler"
	"github.com/aulaview/aulaview-backend/internal/middleware"
	"github.com/aulaview/aulaview-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Lesson *handler.LessonHandler
	System *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// ─── Static UI ─────────────────────────────────────────────────────
	// The display front-end is a static bundle placed under ./web at
	// deploy time. Assets get aggressive caching (1 day).
	ui := router.Group("/")
	ui.Use(middleware.CacheControl(86400))
	{
		ui.StaticFile("/classroom_view.html", "./web/classroom_view.html")
		ui.StaticFile("/floor_view.html", "./web/floor_view.html")
		ui.Static("/static", "./web/static")
		ui.Static("/assets", "./web/assets")
		ui.StaticFile("/favicon.ico", "./web/assets/favicon.ico")
	}

	// Health check.
	router.GET("/health", handlers.System.Health)

	// Rate limiter for the lesson API (60 requests per minute per IP):
	// every cache miss fans out to the upstream scheduling API, so inbound
	// traffic is capped before it amplifies.
	apiLimiter := middleware.NewRateLimiter(60, time.Minute)

	// ─── Lesson API ────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(apiLimiter.Middleware())
	{
		api.POST("/lessons", handlers.Lesson.GetLessons)
		api.GET("/floor/:building/:floor", handlers.Lesson.GetFloor)
		api.GET("/buildings", handlers.Lesson.GetBuildings)
	}

	return router
}
