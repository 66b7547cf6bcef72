package cmd

import (
	"context"
	"fmt"
	"log"

	"farm-storefront/internal/data/repository"
	"farm-storefront/pkg/database"
	"farm-storefront/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "farm-storefront",
	Short: "Storefront backend for the farm marketplace API",
	// serve is the default when no subcommand is given
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, sessionsCmd)
}

// Execute runs the CLI; called from main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// bootstrap loads config and the logger every subcommand needs.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}

// openSessionStore connects the backend chosen by SESSION_STORE. The returned
// close func releases the connection.
func openSessionStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (repository.SessionRepository, func(), error) {
	switch config.Session.Store {
	case utils.SessionStoreRedis:
		rdb, err := database.InitRedis(ctx, config.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		return repository.NewRedisSessionRepository(rdb, logger), func() { rdb.Close() }, nil

	default:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		logger.Info("Database connected successfully")
		return repository.NewSessionRepository(db, logger), db.Close, nil
	}
}
