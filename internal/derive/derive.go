// Package derive computes read-side views over a call session's dialogue
// flow: playback position mapping, highlight sets, and score banding. All
// functions are pure and total over well-typed input; out-of-range scores in
// stored data are never mutated here.
package derive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
)

// Highlight thresholds on the 0-100 temperature scale.
const (
	winningThreshold  = 70
	frictionThreshold = 40
)

// frictionMarker lets the provider flag a friction turn explicitly in its
// free-text analysis even when the numeric score is borderline.
const frictionMarker = "DROP"

// ParseTimestamp converts an "MM:SS" marker to elapsed seconds. Anything
// else — missing colon, extra parts, non-numeric fields — degrades to 0
// (start of call): the value drives seek/highlight, not data correctness.
func ParseTimestamp(ts string) int {
	parts := strings.Split(ts, ":")
	if len(parts) != 2 {
		return 0
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return mins*60 + secs
}

// FormatTimestamp renders elapsed seconds as "MM:SS". Minutes may exceed 59.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ActiveTurnIndex returns the index of the last turn whose timestamp is at
// or before the elapsed time, or -1 when playback is before the first turn.
// The scan never exits early: a later turn with an equal or smaller parsed
// timestamp still wins, which tolerates provider timestamp jitter.
func ActiveTurnIndex(turns []domain.DialogueTurn, elapsedSeconds int) int {
	active := -1
	for i, t := range turns {
		if ParseTimestamp(t.Timestamp) <= elapsedSeconds {
			active = i
		}
	}
	return active
}

// WinningMoments returns the turns scoring 70 or above, in original order.
func WinningMoments(turns []domain.DialogueTurn) []domain.DialogueTurn {
	var out []domain.DialogueTurn
	for _, t := range turns {
		if t.TemperatureScore >= winningThreshold {
			out = append(out, t)
		}
	}
	return out
}

// FrictionPoints returns the turns scoring 40 or below, plus any turn whose
// analysis carries the provider's "DROP" marker, in original order.
func FrictionPoints(turns []domain.DialogueTurn) []domain.DialogueTurn {
	var out []domain.DialogueTurn
	for _, t := range turns {
		if t.TemperatureScore <= frictionThreshold || strings.Contains(t.Analysis, frictionMarker) {
			out = append(out, t)
		}
	}
	return out
}

// Band is the three-way semantic treatment of a compatibility score.
type Band string

const (
	BandHigh   Band = "High"
	BandMedium Band = "Medium"
	BandLow    Band = "Low"
)

// MatchBand maps a compatibility score to its band: >=80 High, >=50 Medium,
// else Low. Out-of-range input is clamped so the function stays total.
func MatchBand(score int) Band {
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	switch {
	case score >= 80:
		return BandHigh
	case score >= 50:
		return BandMedium
	default:
		return BandLow
	}
}

// TemperatureLabel is the advisory human label for a turn score, used only
// when the provider omits one. Derivation logic never consults labels.
func TemperatureLabel(score int) string {
	switch {
	case score >= 80:
		return "Hot"
	case score >= 60:
		return "Warm"
	case score >= 45:
		return "Neutral"
	case score >= 25:
		return "Cooling Down"
	default:
		return "Cold"
	}
}
