package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"backoffice/internal/auth"
	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
	"backoffice/internal/resource"
	"backoffice/internal/session"
	"backoffice/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs; nothing is reached through
// package globals, so tests can wire their own stores and fake upstreams.
type Deps struct {
	Env       intconfig.Env
	API       *resource.API
	Sessions  *session.Store
	Validator *token.Validator
	Auth      *auth.Service
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(d.Env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// public entry point; unauthenticated navigation lands here
	r.GET("/admin", h.Entry)

	api := r.Group("/admin/api")
	api.GET("/health", h.Health)

	authHandler := h.AuthHandler{Auth: d.Auth}
	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/session", authHandler.Session)

	protected := api.Group("", middleware.Guard(d.Sessions, d.Validator, d.Env.EntryRoute))

	h.Resource(protected.Group("/branches"), resource.NewClient[models.Branch](d.API, "branches"))
	h.Resource(protected.Group("/districts"), resource.NewClient[models.District](d.API, "districts"))
	h.Resource(protected.Group("/cities"), resource.NewClient[models.City](d.API, "cities"))
	h.Resource(protected.Group("/account-types"), resource.NewClient[models.AccountType](d.API, "account-types"))
	h.Resource(protected.Group("/users"), resource.NewClient[models.User](d.API, "users"))
	h.Resource(protected.Group("/roles"), resource.NewClient[models.Role](d.API, "roles"))
	h.Resource(protected.Group("/permissions"), resource.NewClient[models.Permission](d.API, "permissions"))
	h.Resource(protected.Group("/settings"), resource.NewClient[models.Setting](d.API, "settings"))
	h.Resource(protected.Group("/online-account-requests"),
		resource.NewClient[models.OnlineAccountRequest](d.API, "online-account-requests"))

	// logs are view-only
	activityLogs := resource.NewClient[models.ActivityLog](d.API, "logs/activity")
	h.ReadOnlyResource(protected.Group("/logs/activity"), activityLogs)
	h.ReadOnlyResource(protected.Group("/logs/scanned"), resource.NewClient[models.ScannedLog](d.API, "logs/scanned"))

	logsHandler := h.LogsHandler{Activity: activityLogs}
	protected.GET("/reports/activity-logs.pdf", logsHandler.ExportActivityPDF)

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	origins := env.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:5173", "http://127.0.0.1:5173",
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
