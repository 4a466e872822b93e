package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/config"
	"github.com/ClaudeMKA/Pulse-sub001/internal/app"
	"github.com/ClaudeMKA/Pulse-sub001/internal/database"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Pulse event ticketing backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// plain `pulse` serves, like the container entrypoint expects
		RunE: runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API, reminder scheduler and event consumers",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE:  runMigrate,
		},
		newSeedCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	app.ConfigureLogging(cfg.APP)
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	myApp := &app.App{}
	myApp.Initialize(cfg)
	if err := seed(ctx, myApp.DB(), cfg, cfg.APP.IsLocal()); err != nil {
		logrus.Warnf("failed to seed database: %v", err)
	}
	return myApp.Run(ctx)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := openMigrated(cfg); err != nil {
		return err
	}
	logrus.Info("schema up to date")
	return nil
}

func newSeedCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin user and, optionally, sample catalogue data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openMigrated(cfg)
			if err != nil {
				return err
			}
			return seed(cmd.Context(), db, cfg, sample)
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "also insert sample artists, locations and events")
	return cmd
}

func openMigrated(cfg *config.Config) (*gorm.DB, error) {
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return db, nil
}

// seed expects a migrated schema.
func seed(ctx context.Context, db *gorm.DB, cfg *config.Config, sample bool) error {
	if err := database.SeedAdmin(db, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		return err
	}
	if sample {
		return database.SeedSampleData(ctx, db)
	}
	return nil
}
