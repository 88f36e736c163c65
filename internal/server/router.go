package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coursespeak/coursespeak/internal/auth"
	"github.com/coursespeak/coursespeak/internal/handlers"
	"github.com/coursespeak/coursespeak/internal/middleware"
)

// RouterConfig wires the handlers into the route table.
type RouterConfig struct {
	Gate           *auth.Gate
	Deals          *handlers.DealsHandler
	Admin          *handlers.AdminHandler
	Session        *handlers.SessionHandler
	Health         *handlers.HealthHandler
	AllowedOrigins []string
}

// NewRouter assembles the gin engine: public read API, session endpoints, and
// the gated admin CRUD routes, plus health and metrics.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Admin-Token", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/health", cfg.Health.Health)
	router.GET("/health/db", cfg.Health.HealthDB)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/deals", cfg.Deals.List)
		api.GET("/deals/:id", cfg.Deals.Get)

		api.GET("/admin/session", cfg.Session.Status)
		api.POST("/admin/session", cfg.Session.Login)
		api.DELETE("/admin/session", cfg.Session.Logout)
		api.POST("/admin/verify-token", cfg.Session.VerifyToken)
	}

	adminDeals := api.Group("/admin/deals")
	adminDeals.Use(middleware.RequireAdmin(cfg.Gate))
	{
		adminDeals.GET("", cfg.Admin.List)
		adminDeals.POST("", cfg.Admin.Create)
		adminDeals.GET("/:id", cfg.Admin.Get)
		adminDeals.PATCH("/:id", cfg.Admin.Patch)
		adminDeals.DELETE("/:id", cfg.Admin.Delete)
	}

	return router
}
