package store

import (
	"time"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

// NewSeededStore returns a store preloaded with the demo sessions,
// most recent first.
func NewSeededStore() *SessionStore {
	s := NewSessionStore()
	seed := Seed()
	for i := len(seed) - 1; i >= 0; i-- {
		_ = s.Insert(seed[i])
	}
	return s
}

// Seed returns the fixture sessions used for demo and bootstrap, in listing
// order. These are trusted data and skip untrusted-assembly validation.
func Seed() []domain.CallSession {
	return []domain.CallSession{
		{
			ID:           "call_20251027_004",
			Date:         time.Date(2025, 10, 27, 14, 20, 0, 0, time.UTC),
			AgentProfile: taxonomy.AgentRelational(), // mismatch: warm agent vs skeptical data-driven client
			CustomerCompany: domain.CustomerCompany{
				Name: "GenieSoo Inc.", Revenue: "$5M ARR", Industry: "E-Commerce", Stage: "Series A",
			},
			Result:            domain.ResultFail,
			MatchScore:        35,
			StrategyDiagnosis: "High Energy Clash. The prospect wanted rapid facts (Cold Email context), but the agent used relationship-building techniques.",
			Context: domain.CallContext{
				Source:          "Cold Email",
				CampaignVersion: "Targeting_SMB_Marketing",
			},
			PersonaAnalysis: domain.PersonaAnalysis{
				Role:               "Marketing Manager",
				PersonalityTraits:  []string{"Skeptical", "Direct", "Consumer-mindset"},
				CommunicationStyle: []string{"Short answers", "Data-driven"},
				DecisionMaking:     []string{"Influencer", "Needs team review"},
				NeedOrientation:    []string{"ROI-driven", "Cost-saving focused"},
				DomainKnowledge:    "Familiar but not expert",
				InitialAttitude:    "Defensive",
				BudgetSensitivity:  "Price-first",
				TimePressure:       "Rushed",
				Keywords:           []string{"Direct", "Price-Sensitive", "Cynical"},
			},
			Summary: "Agent's warm approach clashed with client's direct, cynical style. Price revealed too early without data backing.",
			DialogueFlow: []domain.DialogueTurn{
				{
					Sequence:         1,
					ProspectAsk:      "Is this another generic scraping tool? What exactly is it?",
					AgentResponse:    "No, we are an outbound specific solution that finds corporate data and verified contacts.",
					TemperatureScore: 50,
					TemperatureLabel: "Neutral",
					KeyTopic:         "Product Intro",
					Timestamp:        "00:15",
				},
				{
					Sequence:         2,
					ProspectAsk:      "Does it work for targeting commerce companies? That's our main niche.",
					AgentResponse:    "Yes! We actually increased conversion rates by 5% for similar clients, and Toss uses us too.",
					TemperatureScore: 75,
					TemperatureLabel: "Heating Up",
					KeyTopic:         "Social Proof",
					Analysis:         "Good use of reference (Toss). Interest peaked here.",
					Timestamp:        "01:20",
				},
				{
					Sequence:          3,
					ProspectAsk:       "Okay, what's the price structure?",
					AgentResponse:     "It starts at $6,000 and it's pay-per-use.",
					TemperatureScore:  30,
					TemperatureLabel:  "Cooling Down",
					KeyTopic:          "Pricing",
					Analysis:          "CRITICAL DROP: Price revealed too early.",
					CoachingTip:       "Strategy Error: You are in a 'Cold Email' context with a 'Price-Sensitive' buyer. Never drop the price without anchoring value first.",
					SuggestedResponse: "Since you are in Series A, ROI is key. Instead of a flat fee, our model scales with your generated leads. Can I share a case study on ROI first?",
					Timestamp:         "02:45",
				},
				{
					Sequence:          4,
					ProspectAsk:       "Just send me the brochure. I'll report it internally and get back to you.",
					AgentResponse:     "Sure, I will send it right away.",
					TemperatureScore:  15,
					TemperatureLabel:  "Cold",
					KeyTopic:          "Closing",
					Analysis:          "Defensive close failure. 'Send brochure' is a brush-off.",
					CoachingTip:       "Persona Mismatch: The 'Cynical' persona needs you to challenge them, not comply. Ask for their specific metric.",
					SuggestedResponse: "I understand you need to report this. To save you time, which specific metric does your VP care about most? I'll highlight that in the summary.",
					Timestamp:         "03:10",
				},
			},
		},
		{
			ID:           "call_20251027_001",
			Date:         time.Date(2025, 10, 27, 10, 30, 0, 0, time.UTC),
			AgentProfile: taxonomy.AgentAnalytical(), // match: analytical agent vs logic-driven client
			CustomerCompany: domain.CustomerCompany{
				Name: "Socar", Revenue: "$200M ARR", Industry: "Mobility", Stage: "IPO Ready",
			},
			Result:            domain.ResultSuccess,
			MatchScore:        92,
			StrategyDiagnosis: "Perfect Resonance. The Agent's logical strength aligned with the VP's data-driven role and the trust from the Referral.",
			Context: domain.CallContext{
				Source:          "Referral / Introduction",
				PrevInteraction: "LinkedIn Message from Min",
			},
			PersonaAnalysis: domain.PersonaAnalysis{
				Role:               "VP of Sales",
				PersonalityTraits:  []string{"Analytical", "Logical", "Big-picture thinker"},
				CommunicationStyle: []string{"Listens fully", "Data-driven"},
				DecisionMaking:     []string{"Decision-maker", "Fast decision-maker"},
				NeedOrientation:    []string{"Scale", "Automation-driven"},
				DomainKnowledge:    "Experienced SaaS buyer",
				InitialAttitude:    "Problem-driven",
				BudgetSensitivity:  "Value-first",
				TimePressure:       "Has time",
				Keywords:           []string{"Logical", "Data-Driven", "Objective"},
			},
			Summary: "Strong match. Agent's logical approach resonated with the VP's need for scale and metrics.",
			DialogueFlow: []domain.DialogueTurn{
				{
					Sequence:         1,
					ProspectAsk:      "Hello Ken, received your message regarding the referral from Min.",
					AgentResponse:    "Hi! Yes, Min mentioned you're looking to automate lead gen.",
					TemperatureScore: 60,
					TemperatureLabel: "Warm",
					KeyTopic:         "Opening",
					Timestamp:        "00:10",
				},
				{
					Sequence:         2,
					ProspectAsk:      "We need scale. Can you handle 50k leads a month?",
					AgentResponse:    "Absolutely. We process over 1M for our enterprise tier with 99.8% uptime.",
					TemperatureScore: 85,
					TemperatureLabel: "Hot",
					KeyTopic:         "Capability Check",
					Analysis:         "Specific metrics (1M, 99.8%) built immediate trust with analytical buyer.",
					Timestamp:        "01:30",
				},
				{
					Sequence:         3,
					ProspectAsk:      "Let's schedule a demo for the team.",
					AgentResponse:    "Great, how is next Tuesday 2 PM?",
					TemperatureScore: 95,
					TemperatureLabel: "Closed",
					KeyTopic:         "Scheduling",
					Timestamp:        "03:50",
				},
			},
		},
		{
			ID:           "call_20251027_002",
			Date:         time.Date(2025, 10, 27, 11, 15, 0, 0, time.UTC),
			AgentProfile: taxonomy.AgentRelational(),
			CustomerCompany: domain.CustomerCompany{
				Name: "Toss", Revenue: "$500M+ ARR", Industry: "Fintech", Stage: "Unicorn",
			},
			Result:            domain.ResultSuccess,
			MatchScore:        88,
			StrategyDiagnosis: "High Energy Match. The 'Inbound' context implies interest, and the Agent's 'Warm' style amplified the prospect's curiosity.",
			Context: domain.CallContext{
				Source: "Inbound Lead (Website Demo Request, Contact Form)",
			},
			PersonaAnalysis: domain.PersonaAnalysis{
				Role:               "Growth Manager",
				PersonalityTraits:  []string{"Experimental", "Curious", "Fast-paced"},
				CommunicationStyle: []string{"Question-heavy", "Ad-hoc"},
				DecisionMaking:     []string{"Influencer", "Fast decision-maker"},
				NeedOrientation:    []string{"Innovation-seeker", "Speed-oriented"},
				DomainKnowledge:    "Familiar but not expert",
				InitialAttitude:    "High intent",
				BudgetSensitivity:  "Value-first",
				TimePressure:       "Short on time",
				Keywords:           []string{"Inquisitive", "Open", "Action-Oriented"},
			},
			Summary: "Inbound lead converted quickly. High energy match.",
			DialogueFlow: []domain.DialogueTurn{
				{
					Sequence:         1,
					ProspectAsk:      "Saw the demo video, looks interesting.",
					AgentResponse:    "Glad you liked it! Which part caught your eye?",
					TemperatureScore: 70,
					TemperatureLabel: "Warm",
					KeyTopic:         "Discovery",
					Timestamp:        "00:20",
				},
				{
					Sequence:         2,
					ProspectAsk:      "The API integration part.",
					AgentResponse:    "Our API is fully RESTful. I can send docs immediately.",
					TemperatureScore: 80,
					TemperatureLabel: "Hot",
					KeyTopic:         "Technical",
					Timestamp:        "01:10",
				},
			},
		},
		{
			ID:           "call_20251027_003",
			Date:         time.Date(2025, 10, 27, 13, 0, 0, 0, time.UTC),
			AgentProfile: taxonomy.AgentAnalytical(),
			CustomerCompany: domain.CustomerCompany{
				Name: "Ekice Corp", Revenue: "Unknown", Industry: "Manufacturing", Stage: "SMB",
			},
			Result:            domain.ResultFail,
			MatchScore:        20,
			StrategyDiagnosis: "Timing Mismatch. Analytical 'Opening' failed because the 'Cold Email' context + 'Busy CEO' persona required a hook, not an introduction.",
			Context: domain.CallContext{
				Source: "Cold Email",
			},
			PersonaAnalysis: domain.PersonaAnalysis{
				Role:               "CEO",
				PersonalityTraits:  []string{"Impulsive", "Direct", "Closed-off"},
				CommunicationStyle: []string{"Interrupts frequently", "Short answers"},
				DecisionMaking:     []string{"Decision-maker"},
				NeedOrientation:    []string{"Short-term results"},
				DomainKnowledge:    "Zero preparation",
				InitialAttitude:    "Uninterested",
				BudgetSensitivity:  "Unknown",
				TimePressure:       "Distracted / multitasking",
				Keywords:           []string{"Busy", "Not Interested", "Direct"},
			},
			Summary: "Gatekeeper blockage. Analytical opening failed to break the ice with busy CEO.",
			DialogueFlow: []domain.DialogueTurn{
				{
					Sequence:          1,
					ProspectAsk:       "Who is this? I'm in a meeting.",
					AgentResponse:     "Sorry, this is Ken from Vibe Flow...",
					TemperatureScore:  20,
					TemperatureLabel:  "Cold",
					KeyTopic:          "Opening",
					Analysis:          "Bad timing. Analytical approach (stating name/company) failed to hook.",
					CoachingTip:       "Persona Adaptation: 'Busy CEOs' (Persona) in 'Cold Calls' (Context) don't care about your name. Start with the problem.",
					SuggestedResponse: "I apologize. I'll be brief—I'm calling about the manufacturing efficiency issue you posted about. When is a better 2-minute window?",
					Timestamp:         "00:05",
				},
				{
					Sequence:         2,
					ProspectAsk:      "Not interested, please remove me.",
					AgentResponse:    "Understood, have a nice day.",
					TemperatureScore: 0,
					TemperatureLabel: "Frozen",
					KeyTopic:         "Rejection",
					Timestamp:        "00:25",
				},
			},
		},
	}
}
