package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/baton/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest handoff at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := wire.HandoffService().GetLatestHandoff(cmd.Context())
		if err != nil {
			fmt.Println("No handoffs yet")
			return nil
		}

		idMark := color.New(color.FgCyan).Sprint(h.ID)
		fmt.Printf("%s  %s  (%s)\n", idMark, h.CreatedAt, h.Format)
		if h.Summary != "" {
			fmt.Printf("  %s\n", h.Summary)
		}
		if h.Blocked != "" && h.Blocked != "none" {
			blockedMark := color.New(color.FgYellow).Sprint("blocked:")
			fmt.Printf("  %s %s\n", blockedMark, h.Blocked)
		}
		if h.SessionID != "" {
			fmt.Printf("  from session %s\n", h.SessionID)
		}
		return nil
	},
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return statusCmd
}
