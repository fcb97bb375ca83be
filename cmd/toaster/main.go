// Package main provides the entry point for the Toaster demo.
//
// Toaster shows a form for configuring a toast notification and slides the
// toast in from the bottom of the terminal when submitted.
//
// Usage:
//
//	toaster [--config path] [--log path]
//	toaster init [path]
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/app"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, logPath string

	cmd := &cobra.Command{
		Use:           "toaster",
		Short:         "Configure and show toast notifications in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logPath != "" {
				cfg.Log.Path = logPath
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.FileName+")")
	cmd.Flags().StringVar(&logPath, "log", "", "log file (overrides log.path)")
	cmd.AddCommand(initCmd())

	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func run(cfg *config.Config) error {
	// The terminal belongs to bubbletea, so logs go to a file.
	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	logger.Info("starting toaster", "config", cfg.Toast, "layout", cfg.Layout)

	model := app.New(cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Wheel and clicks reach the toast
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
