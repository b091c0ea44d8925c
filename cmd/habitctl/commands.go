package main

import (
	"fmt"
	"log/slog"

	"habit_tracker/internal/applog"
	"habit_tracker/internal/config"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDB はテストで SQLite に差し替える
var openDB = func(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return repository.NewDB(cfg.Database.URL, logger)
}

// app はサブコマンドで共有する設定とロガー
type app struct {
	configDir string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "habitctl",
		Short:         "Operator tool for the habit tracker database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			if err := config.LoadConfig(a.configDir, "configs", "../configs"); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.logger = applog.New(cmd.ErrOrStderr(), config.Cfg.Log.Level)
			slog.SetDefault(a.logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(a.migrateCmd(), a.rematerializeCmd(), versionCmd())
	return rootCmd
}

// withDB は接続を開いて fn を実行し、最後に閉じる
func (a *app) withDB(fn func(db *gorm.DB) error) error {
	db, err := openDB(&config.Cfg, a.logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	return fn(db)
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the profiles, habits and habit_instances tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(db *gorm.DB) error {
				if err := repository.AutoMigrate(db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
				return nil
			})
		},
	}
}

func (a *app) rematerializeCmd() *cobra.Command {
	var habitFlag string
	cmd := &cobra.Command{
		Use:   "rematerialize",
		Short: "Insert missing pending instances from each habit's schedule",
		Long: `Re-runs the schedule expansion for every habit (or one habit with --habit)
and inserts pending instances for dates that have none. Existing instances are never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var habitID *uuid.UUID
			if habitFlag != "" {
				id, err := uuid.Parse(habitFlag)
				if err != nil {
					return fmt.Errorf("--habit must be a UUID: %w", err)
				}
				habitID = &id
			}

			return a.withDB(func(db *gorm.DB) error {
				repair := service.NewRepairService(db, repository.NewGormHabitRepository(), repository.NewGormInstanceRepository(), &config.Cfg)
				ctx := middleware.WithLogger(cmd.Context(), a.logger)
				report, err := repair.Rematerialize(ctx, habitID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "habits: %d, skipped: %d, created: %d\n", report.Habits, report.Skipped, report.Created)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&habitFlag, "habit", "", "only rematerialize this habit (UUID)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
		},
	}
}
