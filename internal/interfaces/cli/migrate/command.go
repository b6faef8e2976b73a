package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"hoteltec/internal/infrastructure/config"
	"hoteltec/internal/infrastructure/database"
	"hoteltec/internal/infrastructure/migration"
	"hoteltec/internal/shared/constants"
	"hoteltec/internal/shared/logger"
)

var (
	env  string
	name string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back, check status, and scaffold new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE:  runDown,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create timestamped up/down SQL migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GooseStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	strategy, ok := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected migration strategy type")
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running up migrations", "environment", env)

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("rolling back last migration", "environment", env)

	if err := strategy.MigrateDown(database.Get()); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	logger.Info("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.CreateScript(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	logger.Info("migration created", "name", name)
	return nil
}
