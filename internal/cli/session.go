package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/config"
	"github.com/example/baton/internal/ports/primary"
	"github.com/example/baton/internal/wire"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the session registry",
	Long:  "Register sessions and their transcripts so handoff prompts can point back to them",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start [title]",
	Short: "Register a new session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := ""
		if len(args) > 0 {
			title = args[0]
		}

		session, err := wire.SessionService().StartSession(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Println(session.ID)
		return nil
	},
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <session-id> <content>",
	Short: "Append a transcript message to a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		if role != "user" && role != "assistant" {
			return fmt.Errorf("role must be user or assistant, got %q", role)
		}

		if err := wire.SessionService().AppendMessage(cmd.Context(), args[0], role, args[1]); err != nil {
			return err
		}
		return nil
	},
}

var sessionReadCmd = &cobra.Command{
	Use:   "read <session-id>",
	Short: "Read the tail of a session transcript",
	Long: `Read the last messages of a session, oldest first, each capped at a
fixed length. This is the read_session affordance a handoff prompt's footer
points the successor session at.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = configuredReadLimit()
		}

		resp, err := wire.SessionService().ReadSession(cmd.Context(), primary.ReadSessionRequest{
			SessionID: args[0],
			Limit:     limit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nSession: %s", resp.Session.ID)
		if resp.Session.Title != "" {
			fmt.Printf(" (%s)", resp.Session.Title)
		}
		fmt.Printf("\nStarted: %s\n\n", resp.Session.CreatedAt)

		if len(resp.Messages) == 0 {
			fmt.Println("No messages recorded")
			return nil
		}

		for _, m := range resp.Messages {
			fmt.Printf("[%s] %s\n", m.Role, m.Content)
		}
		return nil
	},
}

// configuredReadLimit reads the limit from the cwd config, if any.
func configuredReadLimit() int {
	cwd, err := os.Getwd()
	if err != nil {
		return 0
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return 0
	}
	return cfg.ReadLimit
}

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	sessionLogCmd.Flags().String("role", "user", "Message role: user or assistant")
	sessionReadCmd.Flags().IntP("limit", "l", 0, "Maximum number of messages (default from config)")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionReadCmd)

	return sessionCmd
}
