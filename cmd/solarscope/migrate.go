package main

import (
	"os/signal"
	"syscall"

	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the filter selection table for the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		_, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		logger.Infof(ctx, "%s store is up to date", cfg.Store.Driver)
		return nil
	},
}
