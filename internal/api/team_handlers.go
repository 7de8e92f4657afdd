package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
)

func teamNumberParam(r *http.Request) (int, *errors.AppError) {
	raw := chi.URLParam(r, "teamNumber")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.NewValidationError("team_number", "must be a positive integer")
	}
	return n, nil
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.TeamDataService.ListTeams(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleAllTeamStats(w http.ResponseWriter, r *http.Request) {
	data, err := s.TeamDataService.GetAllTeamPerformance(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	team, appErr := teamNumberParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	data, err := s.TeamDataService.GetTeamPerformance(r.Context(), team)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleTeamScores(w http.ResponseWriter, r *http.Request) {
	team, appErr := teamNumberParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	scores, err := s.TeamDataService.GetMatchScores(r.Context(), team)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleTeamStatbotics(w http.ResponseWriter, r *http.Request) {
	team, appErr := teamNumberParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	data, err := s.TeamDataService.GetExternalPerformance(r.Context(), team)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleEventSchedule(w http.ResponseWriter, r *http.Request) {
	matches, err := s.TeamDataService.GetEventSchedule(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleTeamSchedule(w http.ResponseWriter, r *http.Request) {
	team, appErr := teamNumberParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	matches, err := s.TeamDataService.GetTeamSchedule(r.Context(), team)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// handleAggregateTeam recomputes one team synchronously so the caller gets
// fresh data back.
func (s *Server) handleAggregateTeam(w http.ResponseWriter, r *http.Request) {
	team, appErr := teamNumberParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	if err := s.AggregationService.AggregateTeam(r.Context(), team); err != nil {
		handleError(w, r, err)
		return
	}

	data, err := s.TeamDataService.GetTeamPerformance(r.Context(), team)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// handleAggregateAll enqueues a full recompute in the background.
func (s *Server) handleAggregateAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.Queue.EnqueueFullAggregation(); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("full aggregation enqueued")
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "queued"})
}
