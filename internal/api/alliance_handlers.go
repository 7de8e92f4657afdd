package api

import (
	"net/http"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/scouting"
)

type compareRequest struct {
	AllianceTeams []int `json:"alliance_teams"`
	OpponentTeams []int `json:"opponent_teams"`
}

func (s *Server) handleCompareAlliances(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body: "+err.Error()))
		return
	}

	report, err := s.AllianceService.Compare(r.Context(), req.AllianceTeams, req.OpponentTeams)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report":  report,
		"summary": scouting.RenderComparison(*report),
	})
}
