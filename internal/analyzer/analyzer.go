// Package analyzer implements the inference request/response contract: it
// packages uploads and re-analysis requests for the provider, and validates
// and defaults the structured response into a call session. All provider
// failures surface as the single ErrAnalysisUnavailable outcome.
package analyzer

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/derive"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/llm"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/logging"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

// Upload is a validated file handed over by the upload boundary, plus the
// caller-declared context that goes into the new session verbatim.
type Upload struct {
	Filename  string
	MediaType string
	Content   []byte

	// Source is the lead channel, from the controlled vocabulary.
	Source string

	// CampaignVersion and PrevInteraction are optional context metadata.
	CampaignVersion string
	PrevInteraction string

	// AudioURL is an optional playback reference; only meaningful for audio.
	AudioURL string
}

// Service runs analysis requests against an injected provider client.
type Service struct {
	client llm.Client
	log    *logging.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewService creates an analyzer backed by the given provider client.
func NewService(client llm.Client, log *logging.Logger) *Service {
	return &Service{
		client:   client,
		log:      log.Sub("analyzer"),
		inflight: make(map[string]struct{}),
	}
}

// AnalyzeUpload validates the upload, runs the full-analysis contract, and
// assembles a brand-new call session. On any provider failure nothing is
// returned and nothing should be stored.
func (s *Service) AnalyzeUpload(ctx context.Context, up Upload, agent domain.AgentProfile) (domain.CallSession, error) {
	mode, err := DetectMode(up.Filename, up.MediaType)
	if err != nil {
		return domain.CallSession{}, err
	}
	if up.Source == "" {
		return domain.CallSession{}, &ValidationError{Field: "source", Message: "lead source is required"}
	}
	if !taxonomy.ValidLeadSource(up.Source) {
		return domain.CallSession{}, &ValidationError{Field: "source", Message: "unknown lead source " + up.Source}
	}

	req := buildIngestRequest(mode, up, agent)
	norm, err := s.infer(ctx, req, up.Filename, nil)
	if err != nil {
		return domain.CallSession{}, err
	}

	audioURL := ""
	if mode == ModeAudio {
		audioURL = up.AudioURL
	}

	session := domain.CallSession{
		ID:           "call_" + uuid.New().String(),
		Date:         time.Now(),
		AudioURL:     audioURL,
		AgentProfile: agent,
		Context: domain.CallContext{
			Source:          up.Source,
			CampaignVersion: up.CampaignVersion,
			PrevInteraction: up.PrevInteraction,
		},
		CustomerCompany:   norm.CustomerCompany,
		Result:            norm.Result,
		MatchScore:        norm.MatchScore,
		StrategyDiagnosis: norm.StrategyDiagnosis,
		PersonaAnalysis:   norm.Persona,
		DialogueFlow:      norm.DialogueFlow,
		Summary:           norm.Summary,
	}
	return s.assemble(session)
}

// Reanalyze reruns the narrower analysis contract over a stored session's
// dialogue and returns the updated session. The identity fields (id, date,
// agent profile, context, audio URL) and the original call result and
// company are preserved; persona, dialogue, summary, match score, and
// diagnosis are regenerated. Concurrent re-analysis of the same session is
// rejected, not interleaved.
func (s *Service) Reanalyze(ctx context.Context, session domain.CallSession) (domain.CallSession, error) {
	if err := s.acquire(session.ID); err != nil {
		return domain.CallSession{}, err
	}
	defer s.release(session.ID)

	// The narrower contract never returns company or result, so their
	// defaulting is expected and excluded from the audit.
	norm, err := s.infer(ctx, buildReanalyzeRequest(session), session.ID,
		[]string{"customer_company", "result"})
	if err != nil {
		return domain.CallSession{}, err
	}

	updated := session
	updated.PersonaAnalysis = norm.Persona
	updated.Summary = norm.Summary
	updated.MatchScore = norm.MatchScore
	updated.StrategyDiagnosis = norm.StrategyDiagnosis
	updated.DialogueFlow = norm.DialogueFlow
	for i, t := range updated.DialogueFlow {
		if t.Timestamp == "" {
			updated.DialogueFlow[i].Timestamp = "00:00"
		}
	}
	return s.assemble(updated)
}

// infer runs one provider call and folds every failure mode into
// ErrAnalysisUnavailable. The normalized result carries a schema-defaults
// audit which is logged when non-empty: frequent defaulting signals a
// degrading provider contract. Fields the active contract does not return
// are passed in expectAbsent and skipped in the audit.
func (s *Service) infer(ctx context.Context, req llm.Request, subject string, expectAbsent []string) (normalized, error) {
	resp, err := s.client.Infer(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("provider", s.client.Name()).Str("subject", subject).Msg("provider call failed")
		return normalized{}, ErrAnalysisUnavailable
	}

	res, err := decodeResult(resp.Text)
	if err != nil {
		s.log.Error().Err(err).Str("subject", subject).Msg("provider returned unparsable output")
		return normalized{}, ErrAnalysisUnavailable
	}

	norm, defaulted := normalizeResult(res)
	defaulted = slices.DeleteFunc(defaulted, func(f string) bool {
		return slices.Contains(expectAbsent, f)
	})
	if len(defaulted) > 0 {
		s.log.Warn().Strs("fields", defaulted).Str("subject", subject).Msg("schema defaults applied")
	}
	return norm, nil
}

// assemble enforces the session invariants on provider-sourced data. The
// sequence invariant is repaired by renumbering; a persona that is present
// but partially empty is kept rather than auto-filled per category (the
// object-level default already happened in normalizeResult). Both conditions
// are logged for the audit trail.
func (s *Service) assemble(session domain.CallSession) (domain.CallSession, error) {
	var renumbered bool
	session.DialogueFlow, renumbered = domain.NormalizeDialogue(session.DialogueFlow)
	if renumbered {
		s.log.Warn().Str("session", session.ID).Msg("dialogue sequence renumbered")
	}
	if !domain.TimestampsMonotonic(session.DialogueFlow, derive.ParseTimestamp) {
		s.log.Warn().Str("session", session.ID).Msg("dialogue timestamps not monotonic")
	}
	if missing := session.PersonaAnalysis.MissingFields(); len(missing) > 0 {
		s.log.Warn().Strs("fields", missing).Str("session", session.ID).Msg("provider persona incomplete; keeping partial fields")
	}
	return session, nil
}

func (s *Service) acquire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return ErrAnalysisInFlight
	}
	s.inflight[id] = struct{}{}
	return nil
}

func (s *Service) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

// Unavailable reports whether err is the provider-failure outcome.
func Unavailable(err error) bool {
	return errors.Is(err, ErrAnalysisUnavailable)
}
