package analyzer

import (
	"fmt"
	"strings"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/llm"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

// buildIngestRequest packages an upload into the full-analysis provider
// request: content parts, the task instruction for the selected mode, and
// the shared system contract.
func buildIngestRequest(mode Mode, up Upload, agent domain.AgentProfile) llm.Request {
	var parts []llm.Part
	var task string

	switch mode {
	case ModeAudio:
		mimeType := up.MediaType
		if mimeType == "" {
			mimeType = "audio/mp3"
		}
		parts = []llm.Part{
			llm.InlinePart(mimeType, up.Content),
			llm.TextPart("Analyze this sales call. IMPORTANT: Fill ALL Deep Customer DNA fields. Infer from tone if text is brief."),
		}
		task = strings.TrimSpace(`
1. **Listen** to the audio to identify the Customer's **Voice Tone**, **Pacing**, and **Emotional shifts**.
2. **Transcribe** the conversation into a structured dialogue flow with precise timestamps.`)
	case ModeTranscript:
		parts = []llm.Part{llm.TextPart(fmt.Sprintf(`Analyze the following Transcript (VTT/Text).

TRANSCRIPT DATA:
%s

IMPORTANT: Fill ALL Deep Customer DNA fields. Since you cannot hear tone, infer traits from **sentence structure**, **word choice**, **question type**, and **explicit statements**.`, string(up.Content)))}
		task = strings.TrimSpace(`
1. **Read** the provided transcript text.
2. **Parse** the dialogue into the structured dialogue flow (preserve timestamps if available, otherwise estimate).`)
	}

	return llm.Request{
		System: ingestSystemContract(task, up.Source, agent),
		Parts:  parts,
		Schema: ingestSchema(),
	}
}

// ingestSystemContract is the shared instruction block: it names the eight
// mandatory persona categories, pins the compatibility score to
// agent-features-vs-persona only, and describes the expected JSON object.
func ingestSystemContract(task, leadSource string, agent domain.AgentProfile) string {
	return fmt.Sprintf(`You are "Sales Vibe Coach", an elite sales psychologist AI.

**TASK**:
%s

3. **Profile the Customer (MANDATORY)** using the **HyperSales DNA Framework**.
   - You **MUST** populate ALL persona fields below.
   - **DO NOT** leave any field empty.
   - Use the provided options lists as your primary source for tags.

**HYPERSALES CATEGORIES (Pick best matches)**:
%s
4. **Evaluate the "Compatibility Score"** (Vibe Match).
   - Evaluate strictly between **Agent %s's Profile** (Features: %s) and the **Customer's DNA** (Personality, Style).
   - **IGNORE** the Lead Source/Channel for the numerical score calculation. The score represents personality/communication fit only.

**CONTEXT**:
- **Agent**: %s.
- **Lead Source**: %s (Use this for general context analysis, but not for the compatibility score).

**OUTPUT REQUIREMENTS (JSON)**:
- **customer_company**: Infer name/industry from context. If unknown, guess "Unknown Corp" or relevant industry.
- **match_score**: 0-100 (Agent Personality vs Customer Personality).
- **strategy_diagnosis**: Explain the match score based on personality fit.
- **persona**:
   - **role**: Job title (Guess if not explicit).
   - **personality_traits**: [MANDATORY] Pick 3+ from the list.
   - **communication_style**: [MANDATORY] Pick 2+ from the list.
   - **decision_making**: [MANDATORY] Pick 1+.
   - **need_orientation**: [MANDATORY] Pick 1+.
   - **domain_knowledge**: [MANDATORY] Pick 1.
   - **initial_attitude**: [MANDATORY] Pick 1.
   - **budget_sensitivity**: [MANDATORY] Pick 1.
   - **time_pressure**: [MANDATORY] Pick 1.
- **dialogue_flow**:
   - **temperature_score**: 0-100 (Sentiment of the turn).
   - **analysis**: Why did the temp drop/rise?
   - **suggested_response**: If temp < 50, provide a better script tailored to the Persona.
   - **coaching_tip**: The strategy logic (Why this fix?).
   - **timestamp**: Format "MM:SS" (e.g. "00:15").`,
		task, taxonomy.PromptBlock(), agent.Name, strings.Join(agent.Features, ", "), agent.Name, leadSource)
}

// buildReanalyzeRequest packages an existing session for the narrower
// re-analysis contract: the transcript is reconstructed from the stored
// dialogue flow, and only the regenerated fields appear in the schema.
func buildReanalyzeRequest(session domain.CallSession) llm.Request {
	return llm.Request{
		System: reanalyzeSystemContract(session),
		Parts:  []llm.Part{llm.TextPart(renderTranscript(session.DialogueFlow))},
		Schema: reanalyzeSchema(),
	}
}

func reanalyzeSystemContract(session domain.CallSession) string {
	return fmt.Sprintf(`You are "Sales Vibe Coach", an expert sales intelligence AI.

**Goal**: Analyze the sales call transcript to understand why the meeting succeeded or failed.
You must evaluate the fit between the Agent's profile and the Customer's profile/context.

**INPUT DATA**:
1. **ME (Agent Profile)**: Features: [%s].
2. **OPPONENT (Customer Context)**: Company: %s. Context: %s.

**TASK**:
1. **Infer Customer Persona (HYPERSALES DNA) - MANDATORY**:
   - You **MUST** populate ALL fields. **DO NOT** return empty arrays.
   - Infer traits from the text style (e.g., short sentences = 'Direct', 'Rushed').
   - Use these lists:
%s
2. **Analyze Dialogue Flow**:
   - Review each Q&A pair.
   - **Temperature Scoring (0-100)**.
   - **Coaching**: If temp < 50, provide a specific 'suggested_response' and explain the 'coaching_tip' (Strategy).

3. **Summary**: Strategic diagnosis.

4. **Evaluate Compatibility Score**:
   - Calculate score (0-100) based strictly on Agent Personality vs Customer Persona.
   - Do NOT consider the Lead Source/Channel for the numeric score.

Return JSON format.`,
		strings.Join(session.AgentProfile.Features, ", "),
		session.CustomerCompany.Name, session.Context.Source,
		taxonomy.PromptBlock())
}

// renderTranscript flattens stored dialogue turns back into provider input.
func renderTranscript(turns []domain.DialogueTurn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("Timestamp: %s\nProspect: %s\nAgent: %s", t.Timestamp, t.ProspectAsk, t.AgentResponse))
	}
	return strings.Join(lines, "\n\n")
}

func personaSchema() *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		"role":                llm.String(),
		"personality_traits":  llm.Array(llm.String()),
		"communication_style": llm.Array(llm.String()),
		"decision_making":     llm.Array(llm.String()),
		"need_orientation":    llm.Array(llm.String()),
		"domain_knowledge":    llm.String(),
		"initial_attitude":    llm.String(),
		"budget_sensitivity":  llm.String(),
		"time_pressure":       llm.String(),
		"keywords":            llm.Array(llm.String()),
	})
}

func dialogueSchema(withTimestamp bool) *llm.Schema {
	props := map[string]*llm.Schema{
		"sequence":           llm.Integer(),
		"prospect_ask":       llm.String(),
		"agent_response":     llm.String(),
		"temperature_score":  llm.Integer(),
		"temperature_label":  llm.String(),
		"key_topic":          llm.String(),
		"analysis":           llm.NullableString(),
		"coaching_tip":       llm.NullableString(),
		"suggested_response": llm.NullableString(),
	}
	if withTimestamp {
		props["timestamp"] = llm.String()
	}
	return llm.Array(llm.Object(props))
}

// ingestSchema is the full-analysis response shape.
func ingestSchema() *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		"customer_company": llm.Object(map[string]*llm.Schema{
			"name":     llm.String(),
			"revenue":  llm.String(),
			"industry": llm.String(),
			"stage":    llm.String(),
		}),
		"result":             llm.StringEnum("Success", "Fail", "FollowUp"),
		"match_score":        llm.Integer(),
		"strategy_diagnosis": llm.String(),
		"persona":            personaSchema(),
		"summary":            llm.String(),
		"dialogue_flow":      dialogueSchema(true),
	})
}

// reanalyzeSchema is the narrower re-analysis response shape. The score and
// its rationale are regenerated alongside the persona so they cannot go
// stale against their own inputs; the call result and company stay fixed.
func reanalyzeSchema() *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		"persona":            personaSchema(),
		"summary":            llm.String(),
		"match_score":        llm.Integer(),
		"strategy_diagnosis": llm.String(),
		"dialogue_flow":      dialogueSchema(false),
	})
}
