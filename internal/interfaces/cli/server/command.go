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
	"github.com/spf13/cobra"

	"hoteltec/internal/infrastructure/cache"
	"hoteltec/internal/infrastructure/config"
	"hoteltec/internal/infrastructure/database"
	"hoteltec/internal/infrastructure/migration"
	"hoteltec/internal/infrastructure/persistence/seeds"
	"hoteltec/internal/infrastructure/repository"
	httpRouter "hoteltec/internal/interfaces/http"
	"hoteltec/internal/shared/constants"
	"hoteltec/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the HotelTec API server with the specified configuration.`,
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

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate || env == constants.EnvDevelopment {
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := seedPlans(cmd.Context()); err != nil {
		return fmt.Errorf("plan seeding failed: %w", err)
	}

	// Redis is optional. Without it the guest rate limiter is disabled and
	// the health endpoint reports redis as unconfigured.
	if err := cache.Init(&cfg.Redis); err != nil {
		logger.Warn("redis unavailable, continuing without it", "error", err)
	}
	defer cache.Close()

	router := httpRouter.NewRouter(database.Get(), cache.Get(), cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// seedPlans installs the default plan tiers on a fresh database. Existing
// plans are never touched.
func seedPlans(ctx context.Context) error {
	planRepo := repository.NewPlanRepository(database.Get())

	count, err := planRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plans, err := seeds.DefaultPlans()
	if err != nil {
		return err
	}
	for _, p := range plans {
		if err := planRepo.Save(ctx, p); err != nil {
			return err
		}
	}

	logger.Info("seeded default plans", "count", len(plans))
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
