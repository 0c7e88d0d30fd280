package domain

import (
	"fmt"
	"time"
)

// CallResult is the inferred outcome of a sales call.
type CallResult string

const (
	ResultSuccess  CallResult = "Success"
	ResultFail     CallResult = "Fail"
	ResultFollowUp CallResult = "FollowUp"
)

// ValidResult reports whether s is one of the three call outcomes.
func ValidResult(s string) bool {
	switch CallResult(s) {
	case ResultSuccess, ResultFail, ResultFollowUp:
		return true
	}
	return false
}

// AgentProfile is the analyzing user's declared behavioral profile.
// Supplied by the caller at upload time, never produced by inference.
type AgentProfile struct {
	Name            string   `json:"name"`
	Features        []string `json:"features"`
	Strengths       []string `json:"strengths"`
	PersuasionMatch string   `json:"persuasion_match"`
}

// CustomerCompany describes the prospect's company as inferred from the call.
type CustomerCompany struct {
	Name     string `json:"name"`
	Revenue  string `json:"revenue"`
	Industry string `json:"industry"`
	Stage    string `json:"stage"`
}

// CallContext records how the lead reached the agent. Immutable once the
// session exists.
type CallContext struct {
	Source          string `json:"source"`
	CampaignVersion string `json:"campaign_version,omitempty"`
	PrevInteraction string `json:"prev_interaction,omitempty"`
}

// CallSession is the aggregate root for one analyzed call.
type CallSession struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	AudioURL string    `json:"audioUrl,omitempty"`

	// Agent (me)
	AgentProfile AgentProfile `json:"agent_profile"`

	// Customer (them)
	CustomerCompany CustomerCompany `json:"customer_company"`

	// Relationship / context
	Context CallContext `json:"context"`

	// Inferred analysis
	Result            CallResult      `json:"result"`
	MatchScore        int             `json:"match_score"`
	StrategyDiagnosis string          `json:"strategy_diagnosis"`
	PersonaAnalysis   PersonaAnalysis `json:"persona_analysis"`
	DialogueFlow      []DialogueTurn  `json:"dialogue_flow"`
	Summary           string          `json:"summary"`
}

// AssembleSession builds a CallSession from externally-sourced analysis
// fields. The dialogue sequence invariant is enforced by renumbering, and an
// incomplete persona is rejected. Trusted internal code (fixtures, tests)
// builds the struct literally instead.
func AssembleSession(s CallSession) (CallSession, error) {
	if missing := s.PersonaAnalysis.MissingFields(); len(missing) > 0 {
		return CallSession{}, fmt.Errorf("persona analysis has empty mandatory fields: %v", missing)
	}
	s.DialogueFlow, _ = NormalizeDialogue(s.DialogueFlow)
	return s, nil
}
