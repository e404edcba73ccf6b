package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/config"
	"github.com/example/baton/internal/core/handoff"
	"github.com/example/baton/internal/ports/primary"
	"github.com/example/baton/internal/wire"
)

var handoffCmd = &cobra.Command{
	Use:   "handoff",
	Short: "Create and inspect session handoff prompts",
	Long:  "Render session state into a handoff prompt a successor session can resume from",
}

var handoffCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Render and store a handoff prompt",
	Long: `Render the current session state into a handoff prompt and store it.

The summary describes the current state or the task to continue. Decisions
and tried-and-failed entries use "text=reason" pairs; the reason may be
omitted.

Examples:
  baton handoff create --summary "Refactored auth module. Tests passing."
  baton handoff create --file summary.md --format detailed
  baton handoff create --summary "Fix CI" --next "Rerun flaky suite" --next "Merge PR"
  baton handoff create --summary "DB work" --decision "Use WAL mode=fewer lock errors"
  echo "Context..." | baton handoff create --stdin --todos todos.json`,
	RunE: runHandoffCreate,
}

var handoffShowCmd = &cobra.Command{
	Use:   "show [handoff-id]",
	Short: "Show a stored handoff prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := wire.HandoffService().GetHandoff(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get handoff: %w", err)
		}
		printHandoff(h)
		return nil
	},
}

var handoffLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent handoff",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")

		var h *primary.Handoff
		var err error
		if sessionID != "" {
			h, err = wire.HandoffService().GetLatestHandoffForSession(cmd.Context(), sessionID)
		} else {
			h, err = wire.HandoffService().GetLatestHandoff(cmd.Context())
		}
		if err != nil {
			return err
		}
		printHandoff(h)
		return nil
	},
}

var handoffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent handoffs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		handoffs, err := wire.HandoffService().ListHandoffs(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list handoffs: %w", err)
		}

		if len(handoffs) == 0 {
			fmt.Println("No handoffs found")
			return nil
		}

		fmt.Printf("\n%-8s %-22s %-10s %-40s\n", "ID", "CREATED", "FORMAT", "SUMMARY")
		fmt.Println("─────────────────────────────────────────────────────────────────────────────────")
		for _, h := range handoffs {
			summary := h.Summary
			if len(summary) > 40 {
				summary = summary[:37] + "..."
			}
			fmt.Printf("%-8s %-22s %-10s %-40s\n", h.ID, h.CreatedAt, h.Format, summary)
		}
		fmt.Println()

		return nil
	},
}

func runHandoffCreate(cmd *cobra.Command, args []string) error {
	summary, err := readSummary(cmd)
	if err != nil {
		return err
	}

	blocked, _ := cmd.Flags().GetString("blocked")
	sessionID, _ := cmd.Flags().GetString("session")
	modified, _ := cmd.Flags().GetStringArray("modified")
	reference, _ := cmd.Flags().GetStringArray("reference")
	decisionPairs, _ := cmd.Flags().GetStringArray("decision")
	triedPairs, _ := cmd.Flags().GetStringArray("tried")
	nextSteps, _ := cmd.Flags().GetStringArray("next")
	prefs, _ := cmd.Flags().GetStringArray("pref")
	todosFile, _ := cmd.Flags().GetString("todos")
	formatFlag, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Flags().GetBool("quiet")

	format, err := resolveFormat(formatFlag)
	if err != nil {
		return err
	}

	state := handoff.SessionState{
		PreviousSessionID: sessionID,
		SummaryOrTask:     summary,
		Blocked:           blocked,
		ModifiedFiles:     modified,
		ReferenceFiles:    reference,
		NextSteps:         nextSteps,
		UserPreferences:   prefs,
	}

	for _, pair := range decisionPairs {
		text, reason := splitPair(pair)
		state.Decisions = append(state.Decisions, handoff.Decision{Decision: text, Reason: reason})
	}
	for _, pair := range triedPairs {
		approach, why := splitPair(pair)
		state.TriedAndFailed = append(state.TriedAndFailed, handoff.Attempt{Approach: approach, WhyFailed: why})
	}

	if todosFile != "" {
		todos, err := readTodos(todosFile)
		if err != nil {
			return err
		}
		state.Todos = todos
	}

	resp, err := wire.HandoffService().CreateHandoff(cmd.Context(), primary.CreateHandoffRequest{
		State:  state,
		Format: format,
	})
	if err != nil {
		return fmt.Errorf("failed to create handoff: %w", err)
	}

	if quiet {
		fmt.Println(resp.Prompt)
		return nil
	}

	fmt.Printf("✓ Created handoff %s (%s)\n\n%s\n", resp.HandoffID, format, resp.Prompt)
	return nil
}

// readSummary resolves the summary text from --summary, --file, or --stdin.
// All three absent means an empty summary, which the detailed format
// replaces with its fallback text.
func readSummary(cmd *cobra.Command) (string, error) {
	summaryFlag, _ := cmd.Flags().GetString("summary")
	fileFlag, _ := cmd.Flags().GetString("file")
	stdinFlag, _ := cmd.Flags().GetBool("stdin")

	switch {
	case summaryFlag != "":
		return summaryFlag, nil
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case stdinFlag:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", nil
	}
}

// todoEntry mirrors the JSON shape accepted by --todos.
type todoEntry struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

func readTodos(path string) ([]handoff.Todo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read todos file: %w", err)
	}

	var entries []todoEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid todos JSON: %w", err)
	}

	todos := make([]handoff.Todo, len(entries))
	for i, e := range entries {
		todos[i] = handoff.Todo{Content: e.Content, Status: e.Status}
	}
	return todos, nil
}

// splitPair splits "text=reason" at the first '='. Missing '=' means an
// empty reason.
func splitPair(pair string) (string, string) {
	if idx := strings.Index(pair, "="); idx >= 0 {
		return pair[:idx], pair[idx+1:]
	}
	return pair, ""
}

// resolveFormat combines the --format flag with the optional cwd config.
func resolveFormat(flagValue string) (handoff.Format, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.ResolveFormat(flagValue, nil)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		// No config is fine - fall back to flag or compact
		cfg = nil
	}
	return config.ResolveFormat(flagValue, cfg)
}

func printHandoff(h *primary.Handoff) {
	fmt.Printf("\nHandoff: %s\n", h.ID)
	fmt.Printf("Created: %s\n", h.CreatedAt)
	fmt.Printf("Format:  %s\n", h.Format)
	if h.SessionID != "" {
		fmt.Printf("Session: %s\n", h.SessionID)
	}
	fmt.Printf("\n--- PROMPT ---\n\n%s\n\n", h.Prompt)
}

// HandoffCmd returns the handoff command
func HandoffCmd() *cobra.Command {
	handoffCreateCmd.Flags().StringP("summary", "s", "", "Summary or task text")
	handoffCreateCmd.Flags().StringP("file", "f", "", "Read summary from file")
	handoffCreateCmd.Flags().Bool("stdin", false, "Read summary from stdin")
	handoffCreateCmd.Flags().StringP("blocked", "b", "", "What the session is blocked on (\"none\" suppresses the section)")
	handoffCreateCmd.Flags().String("session", "", "Previous session ID")
	handoffCreateCmd.Flags().StringArray("modified", nil, "Modified file path (repeatable)")
	handoffCreateCmd.Flags().StringArray("reference", nil, "Reference file path (repeatable)")
	handoffCreateCmd.Flags().StringArray("decision", nil, "Decision as \"text=reason\" (repeatable)")
	handoffCreateCmd.Flags().StringArray("tried", nil, "Failed approach as \"approach=why\" (repeatable)")
	handoffCreateCmd.Flags().StringArray("next", nil, "Next step, in order (repeatable)")
	handoffCreateCmd.Flags().StringArray("pref", nil, "User preference (repeatable)")
	handoffCreateCmd.Flags().StringP("todos", "t", "", "Path to todos JSON file")
	handoffCreateCmd.Flags().String("format", "", "Prompt format: compact or detailed")
	handoffCreateCmd.Flags().BoolP("quiet", "q", false, "Print only the rendered prompt")

	handoffLatestCmd.Flags().String("session", "", "Restrict to handoffs from this session")
	handoffListCmd.Flags().IntP("limit", "l", 10, "Maximum number of handoffs to show")

	handoffCmd.AddCommand(handoffCreateCmd)
	handoffCmd.AddCommand(handoffShowCmd)
	handoffCmd.AddCommand(handoffLatestCmd)
	handoffCmd.AddCommand(handoffListCmd)

	return handoffCmd
}
