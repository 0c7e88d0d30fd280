package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/derive"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
)

// printReport renders one session as a terminal coaching report.
func printReport(w io.Writer, s domain.CallSession) {
	fmt.Fprintf(w, "Session:   %s\n", s.ID)
	fmt.Fprintf(w, "Date:      %s\n", s.Date.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Company:   %s (%s, %s, %s)\n",
		s.CustomerCompany.Name, s.CustomerCompany.Industry, s.CustomerCompany.Stage, s.CustomerCompany.Revenue)
	fmt.Fprintf(w, "Source:    %s\n", s.Context.Source)
	fmt.Fprintf(w, "Result:    %s\n", s.Result)
	fmt.Fprintf(w, "Match:     %d/100 (%s)\n", s.MatchScore, derive.MatchBand(s.MatchScore))
	fmt.Fprintf(w, "Diagnosis: %s\n", s.StrategyDiagnosis)

	fmt.Fprintf(w, "\nPersona: %s", s.PersonaAnalysis.Role)
	if len(s.PersonaAnalysis.Keywords) > 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(s.PersonaAnalysis.Keywords, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Traits:   %s\n", strings.Join(s.PersonaAnalysis.PersonalityTraits, ", "))
	fmt.Fprintf(w, "  Style:    %s\n", strings.Join(s.PersonaAnalysis.CommunicationStyle, ", "))
	fmt.Fprintf(w, "  Attitude: %s / %s / %s\n",
		s.PersonaAnalysis.InitialAttitude, s.PersonaAnalysis.BudgetSensitivity, s.PersonaAnalysis.TimePressure)

	if winning := derive.WinningMoments(s.DialogueFlow); len(winning) > 0 {
		fmt.Fprintln(w, "\nWinning moments:")
		for _, t := range winning {
			fmt.Fprintf(w, "  [%s] #%d %s (%d°) — %s\n", t.Timestamp, t.Sequence, t.KeyTopic, t.TemperatureScore, t.ProspectAsk)
		}
	}
	if friction := derive.FrictionPoints(s.DialogueFlow); len(friction) > 0 {
		fmt.Fprintln(w, "\nFriction points:")
		for _, t := range friction {
			fmt.Fprintf(w, "  [%s] #%d %s (%d°) — %s\n", t.Timestamp, t.Sequence, t.KeyTopic, t.TemperatureScore, t.ProspectAsk)
			if t.Analysis != "" {
				fmt.Fprintf(w, "      analysis: %s\n", t.Analysis)
			}
			if t.CoachingTip != "" {
				fmt.Fprintf(w, "      coaching: %s\n", t.CoachingTip)
			}
			if t.SuggestedResponse != "" {
				fmt.Fprintf(w, "      try:      %s\n", t.SuggestedResponse)
			}
		}
	}

	fmt.Fprintf(w, "\nSummary: %s\n", s.Summary)
}
