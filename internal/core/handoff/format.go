// Package handoff contains the pure logic for building handoff prompts.
// Formatting is a total function over the session state record - no I/O,
// no errors, byte-identical output for identical input.
package handoff

import (
	"fmt"
	"strings"
)

// Format selects one of the two prompt dialects.
type Format string

const (
	// FormatCompact renders everything inline for minimal token count.
	FormatCompact Format = "compact"
	// FormatDetailed renders one fact per line under its own heading.
	FormatDetailed Format = "detailed"
)

// Todo status constants. Any other status counts toward the total but is
// not listed under in-progress or pending.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusPending    = "pending"
)

// noBlockerSentinel is treated the same as an empty blocked field.
const noBlockerSentinel = "none"

// Todo is a single todo item carried across the handoff.
type Todo struct {
	Content string
	Status  string
}

// Decision records a choice made during the session. Reason may be empty.
type Decision struct {
	Decision string
	Reason   string
}

// Attempt records an approach that was tried and abandoned.
type Attempt struct {
	Approach  string
	WhyFailed string
}

// SessionState is the flat record a handoff prompt is rendered from.
// All slices are read-only inputs; order is preserved in the output.
type SessionState struct {
	PreviousSessionID string
	SummaryOrTask     string
	Blocked           string
	ModifiedFiles     []string
	ReferenceFiles    []string
	Decisions         []Decision
	TriedAndFailed    []Attempt
	NextSteps         []string
	UserPreferences   []string
	Todos             []Todo
}

// RenderPrompt renders the session state into a handoff document.
// Unknown formats fall back to compact.
func RenderPrompt(state SessionState, format Format) string {
	if format == FormatDetailed {
		return renderDetailed(state)
	}
	return renderCompact(state)
}

// joinSections assembles a document from its present sections. Each section
// already holds its own lines; sections are separated by exactly one blank
// line. Callers only append sections that should appear, so absent sections
// contribute nothing - not even a stray blank line.
func joinSections(sections []string) string {
	return strings.Join(sections, "\n\n")
}

// hasBlocker reports whether the blocked field names an actual blocker.
// Empty string and the "none" sentinel both mean no blocker.
func hasBlocker(blocked string) bool {
	return blocked != "" && blocked != noBlockerSentinel
}

// todoCounts returns the completed count and the content lists for the
// in-progress and pending statuses, in input order.
func todoCounts(todos []Todo) (completed int, inProgress, pending []string) {
	for _, todo := range todos {
		switch todo.Status {
		case StatusCompleted:
			completed++
		case StatusInProgress:
			inProgress = append(inProgress, todo.Content)
		case StatusPending:
			pending = append(pending, todo.Content)
		}
	}
	return completed, inProgress, pending
}

// renderCompact builds the inline dialect. Every section is a single line
// except the todos block and the footer.
func renderCompact(s SessionState) string {
	// The summary is emitted verbatim even when empty.
	sections := []string{"## Session Handoff", s.SummaryOrTask}

	if hasBlocker(s.Blocked) {
		sections = append(sections, "**Blocked:** "+s.Blocked)
	}

	if len(s.Todos) > 0 {
		completed, inProgress, pending := todoCounts(s.Todos)
		lines := []string{fmt.Sprintf("**Todos:** %d/%d done", completed, len(s.Todos))}
		if len(inProgress) > 0 {
			lines = append(lines, "- In progress: "+strings.Join(inProgress, ", "))
		}
		if len(pending) > 0 {
			lines = append(lines, "- Pending: "+strings.Join(pending, ", "))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.ModifiedFiles) > 0 {
		sections = append(sections, "**Files:** "+strings.Join(s.ModifiedFiles, ", "))
	}

	if len(s.Decisions) > 0 {
		entries := make([]string, len(s.Decisions))
		for i, d := range s.Decisions {
			if d.Reason != "" {
				entries[i] = fmt.Sprintf("%s (%s)", d.Decision, d.Reason)
			} else {
				entries[i] = d.Decision
			}
		}
		sections = append(sections, "**Decisions:** "+strings.Join(entries, "; "))
	}

	if len(s.NextSteps) > 0 {
		steps := make([]string, len(s.NextSteps))
		for i, step := range s.NextSteps {
			steps[i] = fmt.Sprintf("%d. %s", i+1, step)
		}
		sections = append(sections, "**Next:** "+strings.Join(steps, " "))
	}

	footer := fmt.Sprintf("---\nPrevious: `%s` · Use `read_session` if you need more context.", s.PreviousSessionID)
	sections = append(sections, footer)

	return joinSections(sections)
}

// renderDetailed builds the one-fact-per-line dialect with a heading per
// section.
func renderDetailed(s SessionState) string {
	sections := []string{"## Handoff Continuation Prompt"}

	task := s.SummaryOrTask
	if task == "" {
		task = "Continue previous work"
	}
	sections = append(sections, "### Task\n"+task)

	if hasBlocker(s.Blocked) {
		sections = append(sections, "### Blocked\n"+s.Blocked)
	}

	if len(s.Todos) > 0 {
		completed, inProgress, pending := todoCounts(s.Todos)
		lines := []string{"### Todos", fmt.Sprintf("%d/%d complete", completed, len(s.Todos))}
		if len(inProgress) > 0 {
			lines = append(lines, "In progress: "+strings.Join(inProgress, ", "))
		}
		if len(pending) > 0 {
			lines = append(lines, "Pending: "+strings.Join(pending, ", "))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.ModifiedFiles) > 0 || len(s.ReferenceFiles) > 0 {
		lines := []string{"### Files"}
		if len(s.ModifiedFiles) > 0 {
			lines = append(lines, "Modified: "+strings.Join(s.ModifiedFiles, ", "))
		}
		if len(s.ReferenceFiles) > 0 {
			lines = append(lines, "Reference: "+strings.Join(s.ReferenceFiles, ", "))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.Decisions) > 0 {
		lines := []string{"### Decisions Made"}
		for _, d := range s.Decisions {
			// The reason is always rendered, trailing colon included when empty.
			lines = append(lines, fmt.Sprintf("- %s: %s", d.Decision, d.Reason))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.TriedAndFailed) > 0 {
		lines := []string{"### Tried & Failed"}
		for _, a := range s.TriedAndFailed {
			lines = append(lines, fmt.Sprintf("- %s: %s", a.Approach, a.WhyFailed))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.NextSteps) > 0 {
		lines := []string{"### Next Steps"}
		for i, step := range s.NextSteps {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(s.UserPreferences) > 0 {
		lines := []string{"### User Preferences"}
		for _, pref := range s.UserPreferences {
			lines = append(lines, "- "+pref)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	footer := fmt.Sprintf("---\nContinuing from session `%s`. Use `read_session` tool if you need additional context.", s.PreviousSessionID)
	sections = append(sections, footer)

	return joinSections(sections)
}

// ParseFormat converts a user-supplied format name to a Format value.
func ParseFormat(name string) (Format, error) {
	switch name {
	case string(FormatCompact):
		return FormatCompact, nil
	case string(FormatDetailed):
		return FormatDetailed, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected %q or %q)", name, FormatCompact, FormatDetailed)
	}
}
