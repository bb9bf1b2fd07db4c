package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shadownet/burnerhub/internal/config"
	"shadownet/burnerhub/internal/handler/middleware"
	"shadownet/burnerhub/internal/repository"
	jwtpkg "shadownet/burnerhub/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	userRepo repository.UserRepository,
	authHandler *AuthHandler,
	burnerHandler *BurnerHandler,
	postHandler *PostHandler,
	guessHandler *GuessHandler,
	adminHandler *AdminHandler,
	archiveHandler *ArchiveHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Anonymous callers get null rather than 401 here.
	r.GET("/api/user", middleware.OptionalJWTAuth(jwtManager), authHandler.CurrentUser)

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth(jwtManager))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/user/upgrade", authHandler.Upgrade)

		protected.GET("/burner-profiles", burnerHandler.List)
		protected.POST("/burner-profiles", burnerHandler.Create)
		protected.DELETE("/burner-profiles/:id", burnerHandler.Deactivate)

		protected.GET("/posts", postHandler.List)
		protected.POST("/posts", postHandler.Create)

		protected.POST("/identity-guesses", guessHandler.Create)
		protected.GET("/identity-guesses/:postId", guessHandler.ListByPost)
	}

	// Admin routes (JWT + admin flag check)
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuth(jwtManager))
	admin.Use(middleware.AdminAuth(userRepo))
	{
		admin.POST("/invite-codes", adminHandler.CreateInviteCode)
		admin.GET("/invite-codes", adminHandler.ListInviteCodes)

		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.PATCH("/users/:id/role", adminHandler.SetRole)

		admin.GET("/archive/tweets/:username", archiveHandler.Preview)
		admin.POST("/archive/preview", archiveHandler.PreviewBody)
		admin.POST("/archive/create-burner", archiveHandler.CreateBurner)
		admin.POST("/archive/import", archiveHandler.Import)
		admin.POST("/archive/ingest", archiveHandler.Ingest)
	}

	return r
}
