package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/app"
	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/data"
	"github.com/mytheresa/product-categories/models"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	envFile     string
	datasetPath string
}

func newRootCommand() *cobra.Command {
	var options globalOptions
	var rootView viewOptions

	rootCmd := &cobra.Command{
		Use:   "products",
		Short: "Browse products filtered by user, name and category",
		Long: `products loads users, categories and products once, joins every product
with its category and the category's owner, and shows the result filtered by
owner, a case-insensitive name search and any set of categories.

Without a subcommand the interactive view is started.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, &options, &rootView)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&options.envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.PersistentFlags().StringVar(&options.datasetPath, "dataset", "", "dataset file (.json, .jsonc, .yaml); overrides CATALOG_DATASET")
	addViewFlags(rootCmd.Flags(), &rootView)

	rootCmd.AddCommand(newViewCommand(&options))
	rootCmd.AddCommand(newListCommand(&options))
	rootCmd.AddCommand(newServeCommand(&options))

	return rootCmd
}

// environment is everything a subcommand needs once startup succeeded.
type environment struct {
	config  config.Config
	logger  *slog.Logger
	dataset models.Dataset
	repos   *app.Repositories
}

// setup reads configuration, loads the dataset and joins it. A data
// integrity error aborts here, before anything is rendered.
func setup(ctx context.Context, options *globalOptions, logOutput io.Writer) (*environment, error) {
	cfg, err := config.Load(options.envFile)
	if err != nil {
		return nil, err
	}
	if options.datasetPath != "" {
		cfg.DatasetPath = options.datasetPath
	}

	logger, err := cfg.Logger(logOutput)
	if err != nil {
		return nil, err
	}

	dataset, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	repos, err := app.NewRepositories(dataset)
	if err != nil {
		logger.Error("dataset rejected", "error", err)
		return nil, fmt.Errorf("refusing to start: %w", err)
	}

	logger.Info("catalog loaded",
		"users", len(dataset.Users),
		"categories", len(dataset.Categories),
		"products", len(dataset.Products),
	)

	return &environment{
		config:  cfg,
		logger:  logger,
		dataset: dataset,
		repos:   repos,
	}, nil
}

func loadDataset(ctx context.Context, cfg config.Config, logger *slog.Logger) (models.Dataset, error) {
	switch {
	case cfg.DatasetPath != "":
		logger.Debug("loading dataset from file", "path", cfg.DatasetPath)
		return data.ReadFile(cfg.DatasetPath)

	case cfg.DatabaseURL != "":
		logger.Debug("loading dataset from database")
		db, err := data.OpenDB(cfg.DatabaseURL)
		if err != nil {
			return models.Dataset{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return models.Dataset{}, fmt.Errorf("database handle: %w", err)
		}
		defer sqlDB.Close()
		return data.LoadFromDB(ctx, db)

	default:
		logger.Debug("loading embedded dataset")
		return data.Default()
	}
}
