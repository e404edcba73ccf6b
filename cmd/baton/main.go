package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/cli"
	"github.com/example/baton/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "baton",
		Short:   "baton - session handoff prompts for agent continuity",
		Version: version.String(),
		Long: `baton renders a work session's state (task, todos, blockers, decisions,
files touched, next steps) into a handoff prompt a successor session can
resume from with minimal context re-acquisition.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.HandoffCmd())
	rootCmd.AddCommand(cli.SessionCmd())
	rootCmd.AddCommand(cli.TriggerCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
