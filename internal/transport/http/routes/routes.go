package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/infra/config"
	"github.com/abh6007/job-board-app/internal/transport/http/handlers"
	"github.com/abh6007/job-board-app/internal/transport/http/middleware"
	"github.com/abh6007/job-board-app/internal/usecase"
)

// ServiceSet groups the services the HTTP layer depends on.
type ServiceSet struct {
	Auth     *usecase.AuthService
	Sessions *usecase.SessionService
	Recovery *usecase.RecoveryService
	Jobs     *usecase.JobService
	Content  *usecase.ContentService
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Metrics  *middleware.HTTPMetrics
	Services ServiceSet
	Database DatabaseChecker
	Cache    CacheChecker
}

// DatabaseChecker exposes readiness behaviour for database connections.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// CacheChecker exposes readiness behaviour for cache backends.
type CacheChecker interface {
	HealthCheck(ctx context.Context) error
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.EnrichContext())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS([]string{"*"}))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}

	healthOptions := make([]handlers.HealthOption, 0, 2)
	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("database", deps.Database.Ping))
	}
	if deps.Cache != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("redis", deps.Cache.HealthCheck))
	}

	healthHandler := handlers.NewHealthHandler(healthOptions...)
	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cookieName := deps.Config.Session.CookieName
	authHandler := handlers.NewAuthHandler(deps.Services.Auth, deps.Services.Sessions, handlers.SessionCookie{
		Name:   cookieName,
		Domain: deps.Config.Session.CookieDomain,
		Secure: deps.Config.App.IsProduction(),
		MaxAge: deps.Config.Session.TTL,
	})
	recoveryHandler := handlers.NewRecoveryHandler(deps.Services.Recovery)
	jobHandler := handlers.NewJobHandler(deps.Services.Jobs)
	contentHandler := handlers.NewContentHandler(deps.Services.Content)

	requireSession := middleware.RequireSession(deps.Services.Auth, cookieName)
	requireAdmin := middleware.RequireAdmin()
	optionalSession := middleware.OptionalSession(deps.Services.Auth, cookieName)

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/user", requireSession, authHandler.CurrentUser)
		api.POST("/change-password", requireSession, authHandler.ChangePassword)

		api.GET("/recovery-code", requireSession, requireAdmin, recoveryHandler.GetRecoveryCode)
		api.POST("/reset-password", recoveryHandler.ResetPassword)

		api.GET("/jobs", optionalSession, jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.POST("/jobs/:id/click", jobHandler.RecordClick)
		api.POST("/jobs", requireSession, requireAdmin, jobHandler.Create)
		api.PUT("/jobs/:id", requireSession, requireAdmin, jobHandler.Update)
		api.DELETE("/jobs/:id", requireSession, requireAdmin, jobHandler.Delete)
		api.GET("/admin/stats", requireSession, requireAdmin, jobHandler.Stats)

		api.GET("/social-links", optionalSession, contentHandler.ListSocialLinks)
		api.POST("/social-links", requireSession, requireAdmin, contentHandler.CreateSocialLink)
		api.PUT("/social-links/:id", requireSession, requireAdmin, contentHandler.UpdateSocialLink)
		api.DELETE("/social-links/:id", requireSession, requireAdmin, contentHandler.DeleteSocialLink)

		api.GET("/automation-links", requireSession, requireAdmin, contentHandler.ListAutomationLinks)
		api.POST("/automation-links", requireSession, requireAdmin, contentHandler.CreateAutomationLink)
		api.PUT("/automation-links/:id", requireSession, requireAdmin, contentHandler.UpdateAutomationLink)
		api.DELETE("/automation-links/:id", requireSession, requireAdmin, contentHandler.DeleteAutomationLink)

		api.GET("/about-me", contentHandler.GetAboutMe)
		api.POST("/about-me", requireSession, requireAdmin, contentHandler.UpdateAboutMe)

		api.GET("/design-settings", contentHandler.GetDesignSettings)
		api.PUT("/design-settings", requireSession, requireAdmin, contentHandler.UpdateDesignSettings)
	}

	return r
}
