package handoff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trigger tokens recognized at the start of a message. Order matters:
// "/handoff" is checked before "handoff" so the slash form never falls
// through to a partial match.
var triggerTokens = []string{"/handoff", "handoff"}

// IsTrigger reports whether a free-text message is a request to start a
// handoff. Matching is case-insensitive and ignores surrounding whitespace.
// Recognized forms: "handoff", "/handoff", "session handoff", and either
// token followed by whitespace and a goal phrase. A message that merely
// contains the word ("implement handoff feature") is not a trigger.
func IsTrigger(message string) bool {
	normalized := strings.ToLower(strings.TrimSpace(message))

	switch normalized {
	case "handoff", "/handoff", "session handoff":
		return true
	}

	_, ok := ExtractGoal(message)
	return ok
}

// ExtractGoal returns the goal phrase following a leading trigger token.
// The token match is case-insensitive but the goal keeps its original
// casing. The second return value is false when the message is a bare
// trigger, has only trailing whitespace after the token, or does not start
// with a trigger at all ("session handoff" carries no goal).
func ExtractGoal(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)

	for _, token := range triggerTokens {
		if !strings.HasPrefix(lower, token) {
			continue
		}
		rest := trimmed[len(token):]
		if rest == "" {
			return "", false
		}
		// The token must be a whole word: require whitespace right after it.
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			continue
		}
		goal := strings.TrimSpace(rest)
		if goal == "" {
			return "", false
		}
		return goal, true
	}
	return "", false
}
