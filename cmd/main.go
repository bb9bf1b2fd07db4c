package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"shadownet/burnerhub/internal/archive"
	"shadownet/burnerhub/internal/config"
	"shadownet/burnerhub/internal/handler"
	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/internal/repository"
	"shadownet/burnerhub/internal/service"
	jwtpkg "shadownet/burnerhub/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize refresh-token store (Redis or in-memory)
	var tokenStore repository.RefreshTokenStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		tokenStore = repository.NewRedisTokenStore(redisClient)
		logger.Info("using Redis token store")
	case "memory":
		tokenStore = repository.NewMemoryTokenStore()
		logger.Info("using in-memory token store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	userRepo := repository.NewPGUserRepository(db)
	burnerRepo := repository.NewPGBurnerProfileRepository(db)
	postRepo := repository.NewPGPostRepository(db)
	guessRepo := repository.NewPGIdentityGuessRepository(db)
	inviteRepo := repository.NewPGInviteCodeRepository(db)
	importRepo := repository.NewPGArchiveImportRepository(db)
	statsRepo := repository.NewPGStatsRepository(db)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)

	// 8. Initialize transformer and archive client
	transformer, err := service.NewTransformer(cfg.Transformer, logger)
	if err != nil {
		logger.Fatal("failed to init transformer", zap.Error(err))
	}
	archiveClient := archive.NewClient(cfg.Archive.BaseURL, cfg.Archive.APIKey, cfg.Archive.Timeout)

	// 9. Initialize services
	authService := service.NewAuthService(userRepo, inviteRepo, tokenStore, jwtManager)
	burnerService := service.NewBurnerService(burnerRepo)
	postService := service.NewPostService(
		postRepo, burnerRepo, userRepo, transformer, cfg.Invite.RequiredForPosting, logger,
	)
	guessService := service.NewGuessService(guessRepo, postRepo, burnerRepo, userRepo)
	inviteService := service.NewInviteService(inviteRepo)
	adminService := service.NewAdminService(userRepo, statsRepo)
	archiveService := service.NewArchiveService(
		archiveClient, burnerRepo, postRepo, importRepo, cfg.Archive.PageSize, logger,
	)

	// 10. Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	burnerHandler := handler.NewBurnerHandler(burnerService)
	postHandler := handler.NewPostHandler(postService)
	guessHandler := handler.NewGuessHandler(guessService)
	adminHandler := handler.NewAdminHandler(inviteService, adminService)
	archiveHandler := handler.NewArchiveHandler(archiveService)

	// 11. Setup router
	router := handler.SetupRouter(
		cfg, logger, jwtManager, userRepo,
		authHandler, burnerHandler, postHandler, guessHandler, adminHandler, archiveHandler,
	)

	// 12. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 13. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 14. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
