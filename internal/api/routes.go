package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleListTeams)
		r.Get("/stats", s.handleAllTeamStats)
		r.Get("/teams/{teamNumber}/stats", s.handleTeamStats)
		r.Get("/teams/{teamNumber}/scores", s.handleTeamScores)
		r.Get("/teams/{teamNumber}/statbotics", s.handleTeamStatbotics)
		r.Get("/teams/{teamNumber}/schedule", s.handleTeamSchedule)
		r.Get("/schedule", s.handleEventSchedule)
		r.Post("/teams/{teamNumber}/aggregate", s.handleAggregateTeam)

		r.Post("/scouting", s.handleSubmitEntry)
		r.Get("/scouting", s.handleListEntries)
		r.Post("/scouting/import", s.handleImportTSV)
		r.Post("/aggregate", s.handleAggregateAll)

		r.Post("/alliance/compare", s.handleCompareAlliances)

		r.Get("/strategies", s.handleListStrategies)
		r.Post("/strategies", s.handleCreateStrategy)
		r.Get("/strategies/{id}", s.handleGetStrategy)
		r.Put("/strategies/{id}", s.handleUpdateStrategy)
		r.Post("/strategies/{id}/insights", s.handleGenerateInsights)
	})

	return r
}
