package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

func testSession(id string) domain.CallSession {
	return domain.CallSession{
		ID:              id,
		Date:            time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
		AudioURL:        "blob:" + id,
		AgentProfile:    taxonomy.AgentAnalytical(),
		Context:         domain.CallContext{Source: "Cold Email", CampaignVersion: "v1"},
		Result:          domain.ResultFollowUp,
		MatchScore:      50,
		PersonaAnalysis: domain.PlaceholderPersona(),
	}
}

func TestInsertAndGet(t *testing.T) {
	s := NewSessionStore()
	require.NoError(t, s.Insert(testSession("call_a")))

	got, err := s.Get("call_a")
	require.NoError(t, err)
	assert.Equal(t, "call_a", got.ID)
	assert.Equal(t, 1, s.Len())
}

func TestInsertDuplicateID(t *testing.T) {
	s := NewSessionStore()
	require.NoError(t, s.Insert(testSession("call_a")))

	err := s.Insert(testSession("call_a"))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, s.Len())
}

func TestGetNotFound(t *testing.T) {
	s := NewSessionStore()
	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMostRecentFirst(t *testing.T) {
	s := NewSessionStore()
	require.NoError(t, s.Insert(testSession("call_a")))
	require.NoError(t, s.Insert(testSession("call_b")))
	require.NoError(t, s.Insert(testSession("call_c")))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "call_c", list[0].ID)
	assert.Equal(t, "call_b", list[1].ID)
	assert.Equal(t, "call_a", list[2].ID)
}

func TestReplacePreservesCreationFields(t *testing.T) {
	s := NewSessionStore()
	original := testSession("call_a")
	require.NoError(t, s.Insert(original))

	updated := testSession("call_a")
	updated.ID = "tampered"
	updated.Date = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	updated.AudioURL = "blob:other"
	updated.AgentProfile = taxonomy.AgentRelational()
	updated.Context = domain.CallContext{Source: "Linkedin DM"}
	updated.MatchScore = 91
	updated.Result = domain.ResultSuccess
	updated.Summary = "regenerated"

	require.NoError(t, s.Replace("call_a", updated))

	got, err := s.Get("call_a")
	require.NoError(t, err)
	// creation-time identity is immutable
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Date, got.Date)
	assert.Equal(t, original.AudioURL, got.AudioURL)
	assert.Equal(t, original.AgentProfile, got.AgentProfile)
	assert.Equal(t, original.Context, got.Context)
	// analysis fields took the new values
	assert.Equal(t, 91, got.MatchScore)
	assert.Equal(t, domain.ResultSuccess, got.Result)
	assert.Equal(t, "regenerated", got.Summary)
}

func TestReplaceNotFound(t *testing.T) {
	s := NewSessionStore()
	err := s.Replace("missing", testSession("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceKeepsOrder(t *testing.T) {
	s := NewSessionStore()
	require.NoError(t, s.Insert(testSession("call_a")))
	require.NoError(t, s.Insert(testSession("call_b")))

	require.NoError(t, s.Replace("call_a", testSession("call_a")))

	list := s.List()
	assert.Equal(t, "call_b", list[0].ID)
	assert.Equal(t, "call_a", list[1].ID)
}

// --- Seed fixtures ---

func TestSeededStoreOrder(t *testing.T) {
	s := NewSeededStore()
	list := s.List()
	require.Len(t, list, 4)
	assert.Equal(t, "call_20251027_004", list[0].ID)
	assert.Equal(t, "call_20251027_003", list[3].ID)
}

func TestSeedSessionsWellFormed(t *testing.T) {
	for _, session := range Seed() {
		t.Run(session.ID, func(t *testing.T) {
			assert.True(t, session.PersonaAnalysis.Complete())
			assert.True(t, taxonomy.ValidLeadSource(session.Context.Source))
			assert.True(t, domain.ValidResult(string(session.Result)))
			for i, turn := range session.DialogueFlow {
				assert.Equal(t, i+1, turn.Sequence)
				assert.NotEmpty(t, turn.Timestamp)
			}
		})
	}
}
