package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/analyzer"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/llm"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/logging"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/store"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

func testServer(t *testing.T, mock *llm.MockClient) (*httptest.Server, *store.SessionStore) {
	t.Helper()
	st := store.NewSeededStore()
	svc := analyzer.NewService(mock, logging.Nop())
	srv := NewServer(st, svc, taxonomy.AgentAnalytical(), logging.Nop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, st
}

func providerJSON(t *testing.T) string {
	t.Helper()
	payload := map[string]any{
		"customer_company":   map[string]any{"name": "Acme", "revenue": "$1M", "industry": "SaaS", "stage": "Seed"},
		"result":             "Success",
		"match_score":        82,
		"strategy_diagnosis": "Good fit.",
		"persona": map[string]any{
			"role":                "CTO",
			"personality_traits":  []string{"Analytical"},
			"communication_style": []string{"Data-driven"},
			"decision_making":     []string{"Final Decision-maker"},
			"need_orientation":    []string{"ROI-driven"},
			"domain_knowledge":    "Industry expert",
			"initial_attitude":    "Curious",
			"budget_sensitivity":  "Value-first",
			"time_pressure":       "Has time",
		},
		"summary": "Went well.",
		"dialogue_flow": []map[string]any{
			{"sequence": 1, "prospect_ask": "hi", "agent_response": "hello", "temperature_score": 75, "temperature_label": "Warm", "key_topic": "Opening", "timestamp": "00:10"},
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func multipartUpload(t *testing.T, filename, source string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if source != "" {
		require.NoError(t, w.WriteField("source", source))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// --- Listing and fetch ---

func TestListSessions(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Get(ts.URL + "/api/sessions")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessions []domain.CallSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	require.Len(t, sessions, 4)
	assert.Equal(t, "call_20251027_004", sessions[0].ID)
}

func TestGetSession(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Get(ts.URL + "/api/sessions/call_20251027_001")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session domain.CallSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "Socar", session.CustomerCompany.Name)
}

func TestGetSessionNotFound(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Get(ts.URL + "/api/sessions/call_missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// --- Upload ---

func TestUploadTranscript(t *testing.T) {
	text := providerJSON(t)
	mock := &llm.MockClient{
		InferFunc: func(ctx context.Context, req llm.Request) (*llm.Response, error) {
			return &llm.Response{Text: text}, nil
		},
	}
	ts, st := testServer(t, mock)

	body, contentType := multipartUpload(t, "call.txt", "Cold Email", []byte("Prospect: hi\nAgent: hello"))
	resp, err := http.Post(ts.URL+"/api/sessions", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session domain.CallSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "Acme", session.CustomerCompany.Name)
	assert.Equal(t, "Cold Email", session.Context.Source)

	stored, err := st.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)
	assert.Equal(t, 5, st.Len())
}

func TestUploadMissingSource(t *testing.T) {
	mock := &llm.MockClient{}
	ts, st := testServer(t, mock)

	body, contentType := multipartUpload(t, "call.txt", "", []byte("hello"))
	resp, err := http.Post(ts.URL+"/api/sessions", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, mock.Requests)
	assert.Equal(t, 4, st.Len())
}

func TestUploadUnsupportedFileType(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	body, contentType := multipartUpload(t, "deck.pdf", "Cold Email", []byte("%PDF"))
	resp, err := http.Post(ts.URL+"/api/sessions", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadProviderFailureStoresNothing(t *testing.T) {
	mock := &llm.MockClient{
		InferFunc: func(ctx context.Context, req llm.Request) (*llm.Response, error) {
			return nil, errors.New("upstream down")
		},
	}
	ts, st := testServer(t, mock)

	body, contentType := multipartUpload(t, "call.txt", "Cold Email", []byte("hello"))
	resp, err := http.Post(ts.URL+"/api/sessions", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, 4, st.Len(), "failed analysis must not create a session")
}

func TestUploadMissingFilePart(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("source", "Cold Email"))
	require.NoError(t, w.Close())

	resp, err := http.Post(ts.URL+"/api/sessions", w.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// --- Re-analysis ---

func TestReanalyzePreservesIdentity(t *testing.T) {
	text := providerJSON(t)
	mock := &llm.MockClient{
		InferFunc: func(ctx context.Context, req llm.Request) (*llm.Response, error) {
			return &llm.Response{Text: text}, nil
		},
	}
	ts, st := testServer(t, mock)

	before, err := st.Get("call_20251027_004")
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/sessions/call_20251027_004/reanalyze", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.CallSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.Context, updated.Context)
	assert.Equal(t, before.AgentProfile, updated.AgentProfile)
	assert.Equal(t, before.Result, updated.Result, "re-analysis never flips the recorded outcome")
	assert.Equal(t, before.CustomerCompany, updated.CustomerCompany)
	assert.Equal(t, 82, updated.MatchScore)
	assert.Equal(t, "Went well.", updated.Summary)
}

func TestReanalyzeNotFound(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Post(ts.URL+"/api/sessions/call_missing/reanalyze", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReanalyzeProviderFailure(t *testing.T) {
	mock := &llm.MockClient{
		InferFunc: func(ctx context.Context, req llm.Request) (*llm.Response, error) {
			return nil, errors.New("timeout")
		},
	}
	ts, st := testServer(t, mock)

	resp, err := http.Post(ts.URL+"/api/sessions/call_20251027_004/reanalyze", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// stored session is untouched
	after, err := st.Get("call_20251027_004")
	require.NoError(t, err)
	assert.Equal(t, 35, after.MatchScore)
}

// --- Highlights ---

func TestHighlights(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Get(ts.URL + "/api/sessions/call_20251027_004/highlights?elapsed=90")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got highlightsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 1, got.ActiveTurnIndex) // 01:20 is the last turn at or before 90s
	assert.Equal(t, "Low", got.MatchBand)
	require.Len(t, got.WinningMoments, 1)
	assert.Equal(t, 2, got.WinningMoments[0].Sequence)
	require.Len(t, got.FrictionPoints, 2)
	assert.Equal(t, 3, got.FrictionPoints[0].Sequence)
	assert.Equal(t, 4, got.FrictionPoints[1].Sequence)
}

func TestHighlightsDefaultElapsed(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	resp, err := http.Get(ts.URL + "/api/sessions/call_20251027_004/highlights")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got highlightsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, -1, got.ActiveTurnIndex)
}

func TestHighlightsBadElapsed(t *testing.T) {
	ts, _ := testServer(t, &llm.MockClient{})

	for _, q := range []string{"elapsed=abc", "elapsed=-3"} {
		resp, err := http.Get(ts.URL + "/api/sessions/call_20251027_004/highlights?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}
