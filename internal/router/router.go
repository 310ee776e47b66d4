package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/handler"
	"github.com/itzmejanak/devalaya-backend/internal/middleware"
	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Blog    *handler.BlogHandler
	Career  *handler.CareerHandler
	Project *handler.ProjectHandler
	User    *handler.UserHandler
	Content *handler.ContentHandler
	Card    *handler.CardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", middleware.RefreshedTokenHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAdmin := middleware.RequireRole(authService, model.RoleAdmin, model.RoleSuperadmin)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", requireAdmin, handlers.Auth.Me)
		auth.POST("/logout", requireAdmin, handlers.Auth.Logout)
	}

	// ─── 2. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		publicAPI.GET("/blogs", handlers.Blog.List)
		publicAPI.GET("/blogs/:id", handlers.Blog.Get)

		// Public careers view returns active listings only.
		publicAPI.GET("/careers", handlers.Career.ListPublic)
		publicAPI.GET("/careers/:id", handlers.Career.Get)

		// The fixed /featured segment must register before /:id.
		publicAPI.GET("/projects/featured", handlers.Project.ListFeatured)
		publicAPI.GET("/projects", handlers.Project.List)
		publicAPI.GET("/projects/:id", handlers.Project.Get)

		publicAPI.GET("/data/:collection", handlers.Content.Get)
		publicAPI.GET("/cards/:slug", handlers.Card.Get)
	}

	// ─── 3. Content Mutations (JWT) ────────────────────────────────────
	contentAPI := router.Group("/api/v1")
	contentAPI.Use(requireAdmin)
	{
		contentAPI.POST("/blogs", handlers.Blog.Create)
		contentAPI.PUT("/blogs/:id", handlers.Blog.Update)
		contentAPI.DELETE("/blogs/:id", handlers.Blog.Delete)

		contentAPI.POST("/careers", handlers.Career.Create)
		contentAPI.PUT("/careers/:id", handlers.Career.Update)
		contentAPI.DELETE("/careers/:id", handlers.Career.Delete)

		contentAPI.POST("/projects", handlers.Project.Create)
		contentAPI.PUT("/projects/:id", handlers.Project.Update)
		contentAPI.DELETE("/projects/:id", handlers.Project.Delete)
	}

	// ─── 4. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(requireAdmin)
	{
		// Admin careers view includes inactive listings.
		adminAPI.GET("/careers", handlers.Career.ListAll)
	}

	// ─── 5. User Management (JWT, policy gated) ────────────────────────
	// With ADMIN_MANAGES_USERS disabled only superadmin reaches these.
	userRoles := []model.Role{model.RoleAdmin, model.RoleSuperadmin}
	if !cfg.AdminManagesUsers {
		userRoles = []model.Role{model.RoleSuperadmin}
	}
	usersAPI := router.Group("/api/v1/admin/users")
	usersAPI.Use(middleware.RequireRole(authService, userRoles...))
	{
		usersAPI.GET("", handlers.User.List)
		usersAPI.GET("/:id", handlers.User.Get)
		usersAPI.POST("", handlers.User.Create)
		usersAPI.PATCH("/:id", handlers.User.Patch)
		usersAPI.DELETE("/:id", handlers.User.Delete)
	}

	return router
}
