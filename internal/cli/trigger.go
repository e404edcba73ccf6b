package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/baton/internal/core/handoff"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger [message...]",
	Short: "Check whether a message is a handoff trigger",
	Long: `Check whether a free-text message asks to start a handoff, and extract
the goal phrase if one follows the trigger word.

Exits non-zero when the message is not a trigger, so it can gate scripts:

  baton trigger "handoff fix the flaky tests" && baton handoff create ...

Examples:
  baton trigger "handoff"
  baton trigger "/handoff Create PR"
  baton trigger "implement handoff feature"   # not a trigger, exit 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		if !handoff.IsTrigger(message) {
			fmt.Printf("%s not a handoff trigger\n", color.New(color.FgRed).Sprint("✗"))
			os.Exit(1)
		}

		fmt.Printf("%s handoff trigger\n", color.New(color.FgGreen).Sprint("✓"))
		if goal, ok := handoff.ExtractGoal(message); ok {
			fmt.Printf("Goal: %s\n", goal)
		} else {
			fmt.Println("Goal: (none)")
		}
		return nil
	},
}

// TriggerCmd returns the trigger command
func TriggerCmd() *cobra.Command {
	return triggerCmd
}
