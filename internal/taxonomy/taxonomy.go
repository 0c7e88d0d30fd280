// Package taxonomy holds the fixed HyperSales vocabulary: the lead-source
// channels an upload may declare and the eight persona category option lists
// the inference provider picks tags from. All data is read-only process-wide
// state, safe for unsynchronized concurrent reads.
package taxonomy

import (
	"slices"
	"strings"
)

// LeadSources is the controlled vocabulary of relationship channels.
var LeadSources = []string{
	"Cold Email",
	"Cold Calling",
	"Linkedin DM",
	"Inbound Lead (Website Demo Request, Contact Form)",
	"Referral / Introduction",
	"Seminar / Webinar",
	"Event Booth Lead",
	"Networking Event Lead",
}

// ValidLeadSource reports whether s is in the lead-source vocabulary.
func ValidLeadSource(s string) bool {
	return slices.Contains(LeadSources, s)
}

// Category is one persona dimension with its closed tag list.
type Category struct {
	Name    string
	Options []string
}

// PersonaCategories are the eight mandatory persona dimensions, in the order
// the provider contract presents them.
var PersonaCategories = []Category{
	{"Personality Traits", []string{
		"Fast-paced", "Slow-paced", "Skeptical", "Direct", "Calm", "Analytical",
		"Reactive/Emotional", "Logical", "Detail-oriented", "Big-picture thinker",
		"Defensive", "Cooperative", "Confrontational", "Friendly", "Closed-off",
		"Pragmatic", "Perfectionist", "Avoidant", "Strong-willed", "Impulsive",
		"Cautious", "Consumer-mindset", "Experimental",
	}},
	{"Communication Style", []string{
		"Short answers", "Long explanatory answers", "Question-heavy",
		"Interrupts frequently", "Listens fully before responding",
		"Asks for summary", "Data-driven", "Needs examples",
		"Asks same question repeatedly", "Confused often", "Seeks reassurance",
		"Negative/reactive", "Jumps to conclusion", "Silent listener", "Testing you",
	}},
	{"Decision Making", []string{
		"Final Decision-maker", "Influencer", "Researcher", "Needs internal approval",
		"Budget owner", "Budget requester", "Procurement involved",
		"Fast decision-maker", "Needs team review", "Slow decision cycle",
		"Process-heavy decision", "PoC first decision style",
	}},
	{"Need Orientation", []string{
		"ROI-driven", "Cost-saving focused", "Risk-averse", "Feature-oriented",
		"Speed-oriented", "Automation-driven", "Accuracy-focused",
		"Data-quality oriented", "Innovation-seeker", "Competitive benchmarking",
		"Ease-of-adoption focused", "Workload-reduction", "Simplification-focused",
		"Short-term results", "Long-term value",
	}},
	{"Domain Knowledge", []string{
		"Industry expert", "Experienced SaaS buyer", "Familiar but not expert",
		"Basic understanding", "New to topic", "Pre-read materials",
		"Zero preparation", "Actively comparing others", "Fed info by teammate",
	}},
	{"Initial Attitude", []string{
		"Highly interested", "Open-minded", "Neutral", "Skeptical", "Defensive",
		"Uninterested", "Negative predisposition", "Curious", "Problem-driven",
		"Research-only", "High intent", "No-budget exploration",
	}},
	{"Budget Sensitivity", []string{
		"Very budget-sensitive", "Mid-level sensitive", "Comfortable budget",
		"Value-first", "Price-first", "Needs approval", "Fixed threshold",
		"Upfront-friendly", "Has only PoC budget",
	}},
	{"Time Pressure", []string{
		"Has time", "Short on time", "Rushed", "In-between meetings",
		"Distracted / multitasking", "Call on the go", "Remote distracted mode",
	}},
}

// PromptBlock renders the category option lists as the markdown block the
// system contract embeds verbatim.
func PromptBlock() string {
	var b strings.Builder
	for _, c := range PersonaCategories {
		b.WriteString("  - **")
		b.WriteString(c.Name)
		b.WriteString("**: ")
		b.WriteString(strings.Join(c.Options, ", "))
		b.WriteString("\n")
	}
	return b.String()
}
