package cmd

import (
	"fmt"

	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/upstream"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Session maintenance",
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete sessions that expired or were revoked over a week ago",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		sessions, closeStore, err := openSessionStore(cmd.Context(), config, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		repos := repository.NewRepository(sessions, upstream.New(config.Upstream.BaseURL, logger), logger)
		auth := usecase.NewAuthService(repos, config, logger)

		removed, err := auth.PruneExpired(cmd.Context())
		if err != nil {
			logger.Error("Failed to prune sessions", zap.Error(err))
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d sessions\n", removed)
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(pruneCmd)
}
