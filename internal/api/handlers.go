package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/analyzer"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/derive"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
)

// maxUploadBytes bounds the multipart memory buffer; audio beyond this
// spills to disk via the stdlib multipart reader.
const maxUploadBytes = 32 << 20

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.respondJSON(w, http.StatusOK, session)
}

// handleUpload accepts a multipart form with a "file" part plus the
// caller-declared call context, runs the full analysis, and stores the new
// session. Nothing is stored when the analysis fails.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	up := analyzer.Upload{
		Filename:        header.Filename,
		MediaType:       header.Header.Get("Content-Type"),
		Content:         content,
		Source:          r.FormValue("source"),
		CampaignVersion: r.FormValue("campaign_version"),
		PrevInteraction: r.FormValue("prev_interaction"),
		AudioURL:        r.FormValue("audio_url"),
	}

	session, err := s.analyzer.AnalyzeUpload(r.Context(), up, s.agent)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	if err := s.store.Insert(session); err != nil {
		s.respondError(w, http.StatusConflict, "session id already exists")
		return
	}
	s.respondJSON(w, http.StatusCreated, session)
}

// handleReanalyze reruns analysis over a stored session's dialogue. The
// stored session is replaced only when the provider call succeeds.
func (s *Server) handleReanalyze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := s.store.Get(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}

	updated, err := s.analyzer.Reanalyze(r.Context(), session)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	if err := s.store.Replace(id, updated); err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	stored, err := s.store.Get(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.respondJSON(w, http.StatusOK, stored)
}

// highlightsResponse is the coaching view over one session at a playback
// position: the active turn and the derived moment sets.
type highlightsResponse struct {
	ActiveTurnIndex int                   `json:"active_turn_index"`
	WinningMoments  []domain.DialogueTurn `json:"winning_moments"`
	FrictionPoints  []domain.DialogueTurn `json:"friction_points"`
	MatchBand       string                `json:"match_band"`
}

func (s *Server) handleHighlights(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}

	elapsed := 0
	if v := r.URL.Query().Get("elapsed"); v != "" {
		elapsed, err = strconv.Atoi(v)
		if err != nil || elapsed < 0 {
			s.respondError(w, http.StatusBadRequest, "elapsed must be a non-negative integer")
			return
		}
	}

	s.respondJSON(w, http.StatusOK, highlightsResponse{
		ActiveTurnIndex: derive.ActiveTurnIndex(session.DialogueFlow, elapsed),
		WinningMoments:  derive.WinningMoments(session.DialogueFlow),
		FrictionPoints:  derive.FrictionPoints(session.DialogueFlow),
		MatchBand:       string(derive.MatchBand(session.MatchScore)),
	})
}

// writeAnalysisError maps analyzer failures to status codes: caller mistakes
// are 400, a busy session is 409, and any provider failure is 502.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	var verr *analyzer.ValidationError
	switch {
	case errors.As(err, &verr):
		s.respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, analyzer.ErrAnalysisInFlight):
		s.respondError(w, http.StatusConflict, "analysis already in progress for this session")
	case analyzer.Unavailable(err):
		s.respondError(w, http.StatusBadGateway, "analysis unavailable")
	default:
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}
