package cmd

import (
	"fmt"

	"farm-storefront/pkg/database"
	"farm-storefront/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the sessions table",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if config.Session.Store != utils.SessionStorePostgres {
			logger.Info("Session store needs no migration", zap.String("session_store", config.Session.Store))
			return nil
		}

		db, err := database.InitDB(cmd.Context(), config.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			logger.Error("Migration failed", zap.Error(err))
			return err
		}

		logger.Info("Migration complete")
		return nil
	},
}
