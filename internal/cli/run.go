package cli

import (
	"fmt"

	"github.com/pablasso/kanban/internal/config"
	"github.com/pablasso/kanban/internal/logging"
	"github.com/pablasso/kanban/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"kanban"},
	Short:   "Open the Kanban board",
	Long:    `Opens a three-column board (To Do, In Progress, Done). Tasks live only as long as the program runs.`,
	Args:    cobra.NoArgs,
	RunE:    runBoard,
}

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Open the to-do list",
	Long:  `Opens a single list of items you can add and delete. Items live only as long as the program runs.`,
	Args:  cobra.NoArgs,
	RunE:  runTodo,
}

func runDefault(cmd *cobra.Command, args []string) error {
	return runVariant("")
}

func runBoard(cmd *cobra.Command, args []string) error {
	return runVariant(config.VariantKanban)
}

func runTodo(cmd *cobra.Command, args []string) error {
	return runVariant(config.VariantTodo)
}

// runVariant starts variant, or the configured default when variant is empty.
func runVariant(variant config.Variant) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if variant == "" {
		variant = cfg.Variant
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Close()

	window := cfg.Window(variant)
	log.WithFields(logrus.Fields{
		"variant": variant,
		"title":   window.Title,
		"width":   window.Width,
		"height":  window.Height,
	}).Info("starting")

	if err := runTUI(tui.Options{Variant: variant, Window: window, Logger: log.Logger}); err != nil {
		log.WithError(err).Error("program exited with error")
		return err
	}
	log.Info("exited")
	return nil
}

// loadConfig reads --config, or the default location when the flag is unset.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No home or config dir: run with the built-in defaults.
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
