package cli

import (
	"github.com/pablasso/kanban/internal/tui"
	"github.com/pablasso/kanban/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logFile    string
	debug      bool
)

// runTUI starts the interactive program; tests replace it.
var runTUI = tui.Run

var rootCmd = &cobra.Command{
	Use:          "kanban",
	Short:        "Terminal Kanban board and to-do list",
	Long:         `Kanban is a small in-memory task board for the terminal. Without a subcommand it opens the application named by 'variant' in the config file (the board by default); use 'kanban board' or 'kanban todo' to pick one.`,
	Version:      version.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDefault,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is <user config dir>/kanban/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
