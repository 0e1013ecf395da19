package main

import (
	"fmt"

	"petclinic/internal/platform/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply or inspect the schema migrations of the configured storage (postgres or sqlite).`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending migrations",
			RunE:  runMigrate(false),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE:  runMigrate(true),
		},
	)
	return cmd
}

func runMigrate(statusOnly bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		if cfg.Storage.Driver == config.DriverMemory {
			return fmt.Errorf("storage driver %q has no migrations", cfg.Storage.Driver)
		}

		st, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer st.Close()

		if statusOnly {
			return st.Status(ctx)
		}
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		log.Info("migrations applied", map[string]any{"driver": cfg.Storage.Driver})
		return nil
	}
}
