package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

func strategyIDParam(r *http.Request) (int64, *errors.AppError) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func (s *Server) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("match"); raw != "" {
		match, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("match", "must be an integer"))
			return
		}
		strategies, err := s.StrategyService.ListByMatch(r.Context(), match)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, strategies)
		return
	}

	strategies, err := s.StrategyService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, strategies)
}

func (s *Server) handleCreateStrategy(w http.ResponseWriter, r *http.Request) {
	var strategy models.MatchStrategy
	if err := decodeJSON(r, &strategy); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body: "+err.Error()))
		return
	}

	created, err := s.StrategyService.Create(r.Context(), strategy)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetStrategy(w http.ResponseWriter, r *http.Request) {
	id, appErr := strategyIDParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	strategy, err := s.StrategyService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, strategy)
}

func (s *Server) handleUpdateStrategy(w http.ResponseWriter, r *http.Request) {
	id, appErr := strategyIDParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	var strategy models.MatchStrategy
	if err := decodeJSON(r, &strategy); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body: "+err.Error()))
		return
	}
	strategy.ID = id

	if err := s.StrategyService.Update(r.Context(), strategy); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.StrategyService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	id, appErr := strategyIDParam(r)
	if appErr != nil {
		handleError(w, r, appErr)
		return
	}

	insights, err := s.StrategyService.GenerateInsights(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"insights": insights})
}
