package domain

// PersonaAnalysis is the inferred customer profile across the eight
// mandatory HyperSales categories plus a role and advisory keywords.
type PersonaAnalysis struct {
	Role string `json:"role"`

	PersonalityTraits  []string `json:"personality_traits"`
	CommunicationStyle []string `json:"communication_style"`
	DecisionMaking     []string `json:"decision_making"`
	NeedOrientation    []string `json:"need_orientation"`
	DomainKnowledge    string   `json:"domain_knowledge"`
	InitialAttitude    string   `json:"initial_attitude"`
	BudgetSensitivity  string   `json:"budget_sensitivity"`
	TimePressure       string   `json:"time_pressure"`

	Keywords []string `json:"keywords,omitempty"`
}

// Complete reports whether every mandatory persona field is populated.
func (p PersonaAnalysis) Complete() bool {
	return len(p.MissingFields()) == 0
}

// MissingFields lists the mandatory persona fields that are empty.
// Keywords are advisory and not checked.
func (p PersonaAnalysis) MissingFields() []string {
	var missing []string
	if p.Role == "" {
		missing = append(missing, "role")
	}
	if len(p.PersonalityTraits) == 0 {
		missing = append(missing, "personality_traits")
	}
	if len(p.CommunicationStyle) == 0 {
		missing = append(missing, "communication_style")
	}
	if len(p.DecisionMaking) == 0 {
		missing = append(missing, "decision_making")
	}
	if len(p.NeedOrientation) == 0 {
		missing = append(missing, "need_orientation")
	}
	if p.DomainKnowledge == "" {
		missing = append(missing, "domain_knowledge")
	}
	if p.InitialAttitude == "" {
		missing = append(missing, "initial_attitude")
	}
	if p.BudgetSensitivity == "" {
		missing = append(missing, "budget_sensitivity")
	}
	if p.TimePressure == "" {
		missing = append(missing, "time_pressure")
	}
	return missing
}

// PlaceholderPersona returns the explicit all-"Unknown" default used when the
// provider omits the persona entirely. Every mandatory field is non-empty so
// the ingestion invariant holds.
func PlaceholderPersona() PersonaAnalysis {
	return PersonaAnalysis{
		Role:               "Unknown",
		PersonalityTraits:  []string{"Unknown"},
		CommunicationStyle: []string{"Unknown"},
		DecisionMaking:     []string{"Unknown"},
		NeedOrientation:    []string{"Unknown"},
		DomainKnowledge:    "Unknown",
		InitialAttitude:    "Unknown",
		BudgetSensitivity:  "Unknown",
		TimePressure:       "Unknown",
	}
}
