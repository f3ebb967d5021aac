// Package server implements the CLI command that boots the HTTP API.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	notificationApp "github.com/sendloop-inc/sendloop/internal/application/notification"
	quotaUsecases "github.com/sendloop-inc/sendloop/internal/application/quota/usecases"
	resourceApp "github.com/sendloop-inc/sendloop/internal/application/resource"
	subscriptionApp "github.com/sendloop-inc/sendloop/internal/application/subscription"
	userApp "github.com/sendloop-inc/sendloop/internal/application/user"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/auth"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/config"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/database"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/lock"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/migration"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/push"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/repository"
	httpRouter "github.com/sendloop-inc/sendloop/internal/interfaces/http"
	"github.com/sendloop-inc/sendloop/internal/interfaces/http/handlers"
	"github.com/sendloop-inc/sendloop/internal/interfaces/http/middleware"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Sendloop HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("redis connected", "addr", cfg.Redis.GetAddr())

	log := logger.NewLogger()
	db := database.Get()

	// Repositories
	userRepo := repository.NewUserRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	channelRepo := repository.NewChannelRepository(db, log)
	siteRepo := repository.NewSiteRepository(db, log)
	contactRepo := repository.NewContactRepository(db, log)
	automationRepo := repository.NewAutomationRepository(db, log)
	campaignRepo := repository.NewCampaignRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db, log)
	sentRepo := repository.NewSentNotificationRepository(db, log)
	usageCounter := repository.NewUsageCounter(channelRepo, contactRepo, automationRepo, campaignRepo)

	// Infrastructure services
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	pushClient := push.NewClient(&cfg.Push, log)
	quotaLock := lock.NewQuotaLock(redisClient)
	markdownService := markdown.NewService()

	// Application services
	identityResolver := identity.NewResolver(siteRepo, channelRepo, log)
	quotaGate := quotaUsecases.NewAuthorizeUseCase(identityResolver, subscriptionRepo, planRepo, usageCounter, log)
	userService := userApp.NewService(userRepo, jwtService, cfg.Auth.Password.BcryptCost, log)
	notificationService := notificationApp.NewService(notificationRepo, sentRepo, userRepo, pushClient, markdownService, log)
	resourceService := resourceApp.NewService(channelRepo, siteRepo, contactRepo, automationRepo, campaignRepo, log)
	subscriptionService := subscriptionApp.NewService(subscriptionRepo, planRepo, log)

	// HTTP surface
	authMW := middleware.NewAuthMiddleware(jwtService, log)
	quotaMW := middleware.NewQuotaMiddleware(identityResolver, quotaGate, quotaLock, log)
	permMW := middleware.NewPermissionMiddleware(userRepo, log)

	router := httpRouter.NewRouter(
		&cfg.Server,
		log,
		authMW,
		quotaMW,
		permMW,
		handlers.NewAuthHandler(userService, log),
		handlers.NewProfileHandler(userService, subscriptionService, quotaGate, log),
		handlers.NewChannelHandler(resourceService, log),
		handlers.NewContactHandler(resourceService, log),
		handlers.NewAutomationHandler(resourceService, log),
		handlers.NewCampaignHandler(resourceService, log),
		handlers.NewNotificationHandler(notificationService, log),
		handlers.NewPlanHandler(subscriptionService, log),
	)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
