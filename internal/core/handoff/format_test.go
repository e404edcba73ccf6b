package handoff

import (
	"strings"
	"testing"
)

// fullState covers every field so exact-output tests pin both dialects.
func fullState() SessionState {
	return SessionState{
		PreviousSessionID: "ses_123",
		SummaryOrTask:     "Refactored auth module. Tests passing.",
		Blocked:           "Waiting on API keys",
		ModifiedFiles:     []string{"auth/login.go", "auth/token.go"},
		ReferenceFiles:    []string{"docs/auth.md"},
		Decisions: []Decision{
			{Decision: "Use ESM", Reason: "Better tree-shaking"},
			{Decision: "Drop polyfills", Reason: ""},
		},
		TriedAndFailed: []Attempt{
			{Approach: "Regex token parse", WhyFailed: "too brittle"},
		},
		NextSteps:       []string{"Fix tests", "Update docs"},
		UserPreferences: []string{"tabs not spaces"},
		Todos: []Todo{
			{Content: "Task 1", Status: StatusCompleted},
			{Content: "Task 2", Status: StatusInProgress},
			{Content: "Task 3", Status: StatusPending},
		},
	}
}

func TestRenderPromptCompactFull(t *testing.T) {
	want := strings.Join([]string{
		"## Session Handoff",
		"",
		"Refactored auth module. Tests passing.",
		"",
		"**Blocked:** Waiting on API keys",
		"",
		"**Todos:** 1/3 done",
		"- In progress: Task 2",
		"- Pending: Task 3",
		"",
		"**Files:** auth/login.go, auth/token.go",
		"",
		"**Decisions:** Use ESM (Better tree-shaking); Drop polyfills",
		"",
		"**Next:** 1. Fix tests 2. Update docs",
		"",
		"---",
		"Previous: `ses_123` · Use `read_session` if you need more context.",
	}, "\n")

	got := RenderPrompt(fullState(), FormatCompact)
	if got != want {
		t.Errorf("compact prompt mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPromptDetailedFull(t *testing.T) {
	want := strings.Join([]string{
		"## Handoff Continuation Prompt",
		"",
		"### Task",
		"Refactored auth module. Tests passing.",
		"",
		"### Blocked",
		"Waiting on API keys",
		"",
		"### Todos",
		"1/3 complete",
		"In progress: Task 2",
		"Pending: Task 3",
		"",
		"### Files",
		"Modified: auth/login.go, auth/token.go",
		"Reference: docs/auth.md",
		"",
		"### Decisions Made",
		"- Use ESM: Better tree-shaking",
		"- Drop polyfills: ",
		"",
		"### Tried & Failed",
		"- Regex token parse: too brittle",
		"",
		"### Next Steps",
		"1. Fix tests",
		"2. Update docs",
		"",
		"### User Preferences",
		"- tabs not spaces",
		"",
		"---",
		"Continuing from session `ses_123`. Use `read_session` tool if you need additional context.",
	}, "\n")

	got := RenderPrompt(fullState(), FormatDetailed)
	if got != want {
		t.Errorf("detailed prompt mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPromptCompactMinimal(t *testing.T) {
	state := SessionState{
		PreviousSessionID: "ses_123",
		SummaryOrTask:     "Refactored auth module. Tests passing.",
	}

	want := strings.Join([]string{
		"## Session Handoff",
		"",
		"Refactored auth module. Tests passing.",
		"",
		"---",
		"Previous: `ses_123` · Use `read_session` if you need more context.",
	}, "\n")

	got := RenderPrompt(state, FormatCompact)
	if got != want {
		t.Errorf("minimal compact prompt mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "Blocked") {
		t.Errorf("minimal prompt should not mention Blocked:\n%s", got)
	}
}

func TestRenderPromptDetailedTaskFallback(t *testing.T) {
	state := SessionState{PreviousSessionID: "ses_999"}

	got := RenderPrompt(state, FormatDetailed)
	if !strings.Contains(got, "### Task\nContinue previous work") {
		t.Errorf("expected task fallback, got:\n%s", got)
	}
}

func TestSectionPresence(t *testing.T) {
	base := func() SessionState {
		return SessionState{PreviousSessionID: "ses_1", SummaryOrTask: "work"}
	}

	tests := []struct {
		name   string
		mutate func(*SessionState)
		format Format
		marker string
		want   bool
	}{
		{
			name:   "blocked text shows in compact",
			mutate: func(s *SessionState) { s.Blocked = "stuck on CI" },
			format: FormatCompact,
			marker: "**Blocked:** stuck on CI",
			want:   true,
		},
		{
			name:   "blocked none suppressed in compact",
			mutate: func(s *SessionState) { s.Blocked = "none" },
			format: FormatCompact,
			marker: "Blocked",
			want:   false,
		},
		{
			name:   "blocked empty suppressed in detailed",
			mutate: func(s *SessionState) { s.Blocked = "" },
			format: FormatDetailed,
			marker: "### Blocked",
			want:   false,
		},
		{
			name:   "blocked none suppressed in detailed",
			mutate: func(s *SessionState) { s.Blocked = "none" },
			format: FormatDetailed,
			marker: "### Blocked",
			want:   false,
		},
		{
			name:   "empty todos suppressed",
			mutate: func(s *SessionState) { s.Todos = []Todo{} },
			format: FormatCompact,
			marker: "**Todos:**",
			want:   false,
		},
		{
			name:   "todos shown when present",
			mutate: func(s *SessionState) { s.Todos = []Todo{{Content: "a", Status: StatusPending}} },
			format: FormatCompact,
			marker: "**Todos:** 0/1 done",
			want:   true,
		},
		{
			name:   "reference files not rendered in compact",
			mutate: func(s *SessionState) { s.ReferenceFiles = []string{"docs/spec.md"} },
			format: FormatCompact,
			marker: "docs/spec.md",
			want:   false,
		},
		{
			name:   "reference files alone produce detailed files section",
			mutate: func(s *SessionState) { s.ReferenceFiles = []string{"docs/spec.md"} },
			format: FormatDetailed,
			marker: "### Files\nReference: docs/spec.md",
			want:   true,
		},
		{
			name:   "tried and failed only in detailed",
			mutate: func(s *SessionState) {
				s.TriedAndFailed = []Attempt{{Approach: "caching", WhyFailed: "stale reads"}}
			},
			format: FormatCompact,
			marker: "caching",
			want:   false,
		},
		{
			name:   "user preferences only in detailed",
			mutate: func(s *SessionState) { s.UserPreferences = []string{"short replies"} },
			format: FormatCompact,
			marker: "short replies",
			want:   false,
		},
		{
			name:   "user preferences shown in detailed",
			mutate: func(s *SessionState) { s.UserPreferences = []string{"short replies"} },
			format: FormatDetailed,
			marker: "### User Preferences\n- short replies",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := base()
			tt.mutate(&state)
			got := RenderPrompt(state, tt.format)
			if strings.Contains(got, tt.marker) != tt.want {
				t.Errorf("Contains(%q) = %v, want %v\noutput:\n%s", tt.marker, !tt.want, tt.want, got)
			}
		})
	}
}

func TestTodoRatioCountsUnknownStatuses(t *testing.T) {
	state := SessionState{
		PreviousSessionID: "ses_1",
		SummaryOrTask:     "work",
		Todos: []Todo{
			{Content: "Task 1", Status: StatusCompleted},
			{Content: "Task 2", Status: "deferred"},
		},
	}

	compact := RenderPrompt(state, FormatCompact)
	if !strings.Contains(compact, "**Todos:** 1/2 done") {
		t.Errorf("unknown status should count toward total:\n%s", compact)
	}
	if strings.Contains(compact, "In progress:") || strings.Contains(compact, "Pending:") {
		t.Errorf("unknown status should not be listed:\n%s", compact)
	}
	if strings.Contains(compact, "Task 2") {
		t.Errorf("unknown-status content should not appear:\n%s", compact)
	}

	detailed := RenderPrompt(state, FormatDetailed)
	if !strings.Contains(detailed, "1/2 complete") {
		t.Errorf("detailed ratio should count unknown status:\n%s", detailed)
	}
}

func TestTodoSublistsPreserveOrder(t *testing.T) {
	state := SessionState{
		PreviousSessionID: "ses_1",
		SummaryOrTask:     "work",
		Todos: []Todo{
			{Content: "b", Status: StatusPending},
			{Content: "a", Status: StatusInProgress},
			{Content: "c", Status: StatusPending},
			{Content: "d", Status: StatusInProgress},
		},
	}

	got := RenderPrompt(state, FormatCompact)
	if !strings.Contains(got, "- In progress: a, d") {
		t.Errorf("in-progress list should preserve input order:\n%s", got)
	}
	if !strings.Contains(got, "- Pending: b, c") {
		t.Errorf("pending list should preserve input order:\n%s", got)
	}
}

func TestDecisionRendering(t *testing.T) {
	withReason := SessionState{
		PreviousSessionID: "ses_1",
		SummaryOrTask:     "work",
		Decisions:         []Decision{{Decision: "Use ESM", Reason: "Better tree-shaking"}},
	}
	noReason := SessionState{
		PreviousSessionID: "ses_1",
		SummaryOrTask:     "work",
		Decisions:         []Decision{{Decision: "Use ESM"}},
	}

	got := RenderPrompt(withReason, FormatCompact)
	if !strings.Contains(got, "**Decisions:** Use ESM (Better tree-shaking)") {
		t.Errorf("compact decision with reason mismatch:\n%s", got)
	}

	got = RenderPrompt(noReason, FormatCompact)
	if !strings.Contains(got, "**Decisions:** Use ESM") {
		t.Errorf("compact decision without reason mismatch:\n%s", got)
	}
	if strings.Contains(got, "(") {
		t.Errorf("empty reason must not produce parentheses:\n%s", got)
	}

	got = RenderPrompt(noReason, FormatDetailed)
	if !strings.Contains(got, "- Use ESM: ") {
		t.Errorf("detailed decision must keep trailing colon for empty reason:\n%s", got)
	}
}

func TestNextStepNumbering(t *testing.T) {
	state := SessionState{
		PreviousSessionID: "ses_1",
		SummaryOrTask:     "work",
		NextSteps:         []string{"Fix tests", "Update docs", "Cut release"},
	}

	compact := RenderPrompt(state, FormatCompact)
	if !strings.Contains(compact, "**Next:** 1. Fix tests 2. Update docs 3. Cut release") {
		t.Errorf("compact next steps mismatch:\n%s", compact)
	}

	detailed := RenderPrompt(state, FormatDetailed)
	if !strings.Contains(detailed, "### Next Steps\n1. Fix tests\n2. Update docs\n3. Cut release") {
		t.Errorf("detailed next steps mismatch:\n%s", detailed)
	}
}

func TestRenderPromptDeterministic(t *testing.T) {
	state := fullState()
	for _, format := range []Format{FormatCompact, FormatDetailed} {
		first := RenderPrompt(state, format)
		second := RenderPrompt(state, format)
		if first != second {
			t.Errorf("%s render is not deterministic", format)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "compact", want: FormatCompact},
		{input: "detailed", want: FormatDetailed},
		{input: "COMPACT", wantErr: true},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
