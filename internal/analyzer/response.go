package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/derive"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
)

// providerResult is the raw decoded provider response. Pointer fields
// distinguish absent from zero so defaulting can be audited precisely.
type providerResult struct {
	CustomerCompany   *domain.CustomerCompany `json:"customer_company"`
	Result            string                  `json:"result"`
	MatchScore        *int                    `json:"match_score"`
	StrategyDiagnosis string                  `json:"strategy_diagnosis"`
	Persona           *domain.PersonaAnalysis `json:"persona"`
	Summary           string                  `json:"summary"`
	DialogueFlow      []domain.DialogueTurn   `json:"dialogue_flow"`
}

// decodeResult parses the provider's JSON output. If the text does not parse
// directly (stray markdown fences, commentary), the first balanced JSON
// object is extracted and tried once more.
func decodeResult(text string) (providerResult, error) {
	var res providerResult
	if err := json.Unmarshal([]byte(text), &res); err == nil {
		return res, nil
	}
	candidate := extractJSON(text)
	if candidate == "" {
		return res, json.Unmarshal([]byte(text), &res)
	}
	err := json.Unmarshal([]byte(candidate), &res)
	return res, err
}

// extractJSON finds the first balanced JSON object in a string, stripping
// common markdown fences first.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		s = strings.ReplaceAll(s, fence, "")
	}
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}

// Placeholder strings substituted when the provider omits mandatory fields.
const (
	unknownCompanyName = "Unknown Corp"
	unknownValue       = "Unknown"
	defaultDiagnosis   = "Analysis completed."
	defaultSummary     = "No summary available."
	defaultMatchScore  = 50
)

// normalized is a provider result after validate-and-default.
type normalized struct {
	CustomerCompany   domain.CustomerCompany
	Result            domain.CallResult
	MatchScore        int
	StrategyDiagnosis string
	Persona           domain.PersonaAnalysis
	Summary           string
	DialogueFlow      []domain.DialogueTurn
}

// normalizeResult applies the field-by-field defaulting contract and returns
// the list of fields that were defaulted, for the schema-defaults audit.
// A persona that is present but partially empty is kept as-is: defaulting is
// all-or-nothing at the object level.
func normalizeResult(res providerResult) (normalized, []string) {
	var defaulted []string
	out := normalized{
		StrategyDiagnosis: res.StrategyDiagnosis,
		Summary:           res.Summary,
		DialogueFlow:      res.DialogueFlow,
	}

	if res.CustomerCompany == nil {
		out.CustomerCompany = domain.CustomerCompany{
			Name: unknownCompanyName, Revenue: unknownValue, Industry: unknownValue, Stage: unknownValue,
		}
		defaulted = append(defaulted, "customer_company")
	} else {
		out.CustomerCompany = *res.CustomerCompany
		if out.CustomerCompany.Name == "" {
			out.CustomerCompany.Name = unknownCompanyName
			defaulted = append(defaulted, "customer_company.name")
		}
		if out.CustomerCompany.Revenue == "" {
			out.CustomerCompany.Revenue = unknownValue
			defaulted = append(defaulted, "customer_company.revenue")
		}
		if out.CustomerCompany.Industry == "" {
			out.CustomerCompany.Industry = unknownValue
			defaulted = append(defaulted, "customer_company.industry")
		}
		if out.CustomerCompany.Stage == "" {
			out.CustomerCompany.Stage = unknownValue
			defaulted = append(defaulted, "customer_company.stage")
		}
	}

	if domain.ValidResult(res.Result) {
		out.Result = domain.CallResult(res.Result)
	} else {
		out.Result = domain.ResultFollowUp
		defaulted = append(defaulted, "result")
	}

	if res.MatchScore != nil && *res.MatchScore >= 0 && *res.MatchScore <= 100 {
		out.MatchScore = *res.MatchScore
	} else {
		out.MatchScore = defaultMatchScore
		defaulted = append(defaulted, "match_score")
	}

	if out.StrategyDiagnosis == "" {
		out.StrategyDiagnosis = defaultDiagnosis
		defaulted = append(defaulted, "strategy_diagnosis")
	}
	if out.Summary == "" {
		out.Summary = defaultSummary
		defaulted = append(defaulted, "summary")
	}

	if res.Persona == nil {
		out.Persona = domain.PlaceholderPersona()
		defaulted = append(defaulted, "persona_analysis")
	} else {
		out.Persona = *res.Persona
	}

	if out.DialogueFlow == nil {
		out.DialogueFlow = []domain.DialogueTurn{}
		defaulted = append(defaulted, "dialogue_flow")
	}
	for i, t := range out.DialogueFlow {
		if t.TemperatureLabel == "" {
			out.DialogueFlow[i].TemperatureLabel = derive.TemperatureLabel(t.TemperatureScore)
		}
	}

	return out, defaulted
}
