package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mytheresa/product-categories/app/view"
)

type viewOptions struct {
	logFile string
	filters filterOptions
}

func addViewFlags(flags *pflag.FlagSet, options *viewOptions) {
	flags.StringVar(&options.logFile, "log-file", "", "append log records to this file")
	addFilterFlags(flags, &options.filters)
}

func newViewCommand(options *globalOptions) *cobra.Command {
	var viewFlags viewOptions

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive product view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, options, &viewFlags)
		},
	}

	addViewFlags(cmd.Flags(), &viewFlags)

	return cmd
}

func runView(cmd *cobra.Command, options *globalOptions, viewFlags *viewOptions) error {
	// The view owns the terminal; logs go to a file or nowhere.
	var logOutput io.Writer = io.Discard
	if viewFlags.logFile != "" {
		file, err := os.OpenFile(viewFlags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer file.Close()
		logOutput = file
	}

	env, err := setup(cmd.Context(), options, logOutput)
	if err != nil {
		return err
	}

	model := view.NewModel(env.repos.Products, env.dataset.Users, env.dataset.Categories).
		WithFilters(viewFlags.filters.filters())

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running view: %w", err)
	}
	env.logger.Info("view closed")
	return nil
}
