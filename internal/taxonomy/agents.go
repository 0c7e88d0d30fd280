package taxonomy

import "github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"

// AgentAnalytical is the default caller profile used when none is configured.
func AgentAnalytical() domain.AgentProfile {
	return domain.AgentProfile{
		Name:            "Ken",
		Features:        []string{"Calm tone", "Logical response pattern", "Structured thinking", "Direct communication"},
		Strengths:       []string{"Clear value explanation", "High product knowledge", "Good at handling objections calmly"},
		PersuasionMatch: "Analytical / C-Level Execs",
	}
}

// AgentByProfile maps a configured profile name to its agent profile.
// Unknown names fall back to the analytical default.
func AgentByProfile(name string) domain.AgentProfile {
	if name == "relational" {
		return AgentRelational()
	}
	return AgentAnalytical()
}

// AgentRelational is the warm, rapport-led counterpart profile.
func AgentRelational() domain.AgentProfile {
	return domain.AgentProfile{
		Name:            "Ken",
		Features:        []string{"Friendly & approachable", "High adaptability", "Easily empathetic", "Fast-paced speaking"},
		Strengths:       []string{"Strong rapport building", "Creates trust quickly", "Reads buyer interest well", "Mood lifting"},
		PersuasionMatch: "Relationship-focused / HR",
	}
}
