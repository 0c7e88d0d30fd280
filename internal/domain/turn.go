package domain

// DialogueTurn is one prospect/agent exchange within a call.
type DialogueTurn struct {
	Sequence         int    `json:"sequence"`
	ProspectAsk      string `json:"prospect_ask"`
	AgentResponse    string `json:"agent_response"`
	TemperatureScore int    `json:"temperature_score"`
	TemperatureLabel string `json:"temperature_label"`
	KeyTopic         string `json:"key_topic"`

	// Present only when the turn is flagged as notable.
	Analysis          string `json:"analysis,omitempty"`
	CoachingTip       string `json:"coaching_tip,omitempty"`
	SuggestedResponse string `json:"suggested_response,omitempty"`

	// Elapsed-time marker, "MM:SS".
	Timestamp string `json:"timestamp"`
}

// NormalizeDialogue enforces the sequence invariant: numbers unique, strictly
// increasing from 1, no gaps. Provider output that violates it is renumbered
// in array order rather than rejected. The returned bool reports whether any
// renumbering happened.
func NormalizeDialogue(turns []DialogueTurn) ([]DialogueTurn, bool) {
	renumbered := false
	out := make([]DialogueTurn, len(turns))
	for i, t := range turns {
		if t.Sequence != i+1 {
			t.Sequence = i + 1
			renumbered = true
		}
		out[i] = t
	}
	return out, renumbered
}

// TimestampsMonotonic reports whether turn timestamps never decrease across
// increasing sequence. Malformed timestamps parse to zero, so they do not
// fail the check on their own. Violations are reported, not repaired; the
// derivation layer tolerates jitter by design.
func TimestampsMonotonic(turns []DialogueTurn, parse func(string) int) bool {
	prev := 0
	for _, t := range turns {
		sec := parse(t.Timestamp)
		if sec < prev {
			return false
		}
		prev = sec
	}
	return true
}
