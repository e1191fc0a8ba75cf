package router

import (
	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/interfaces/http/handler"
	"github.com/bizdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	System  *handler.SystemHandler
	Auth    *handler.AuthHandler
	Client  *handler.ClientHandler
	Quote   *handler.QuoteHandler
	Catalog *handler.CatalogHandler
	Report  *handler.ReportHandler
}

// New builds the gin engine with the full middleware chain and all
// routes mounted under /api/v1
func New(cfg *config.Config, jwtService *auth.JWTService, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	authCfg := middleware.DefaultAuthConfig(jwtService)
	authCfg.Logger = log

	engine.Use(
		otelgin.Middleware(cfg.App.Name),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.Auth(authCfg),
	)

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	{
		api.GET("/health", h.System.Health)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.GET("/profile", h.Auth.Profile)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", h.Client.Create)
			clients.GET("", h.Client.List)
			clients.GET("/search", h.Client.Search)
			clients.GET("/export", h.Client.Export)
			clients.GET("/:id", h.Client.Get)
			clients.PUT("/:id", h.Client.Update)
			clients.POST("/:id/delete", h.Client.Delete)
			clients.POST("/:id/restore", h.Client.Restore)
		}

		quotes := api.Group("/quotes")
		{
			quotes.POST("", h.Quote.Create)
			quotes.GET("", h.Quote.List)
			quotes.GET("/:id", h.Quote.Get)
			quotes.PUT("/:id", h.Quote.Update)
			quotes.POST("/:id/delete", h.Quote.Delete)
		}

		services := api.Group("/services")
		{
			services.POST("", h.Catalog.Create)
			services.GET("", h.Catalog.List)
			services.GET("/:id", h.Catalog.Get)
			services.PUT("/:id", h.Catalog.Update)
			services.DELETE("/:id", h.Catalog.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/quotes/user-status", h.Report.UserStatus)
			admin.GET("/quotes/daily", h.Report.DailyTotals)
			admin.GET("/quotes/user-amounts", h.Report.UserAmounts)
		}
	}

	return engine
}
