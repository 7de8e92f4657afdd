package api

import (
	"net/http"
	"strconv"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/errors"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.ScoutingEntry
	if err := decodeJSON(r, &entry); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body: "+err.Error()))
		return
	}

	created, err := s.ScoutingService.Submit(r.Context(), entry)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.EntryFilter{Alliance: q.Get("alliance")}

	// Malformed numeric filters are ignored rather than rejected.
	filter.TeamNumber, _ = strconv.Atoi(q.Get("team"))
	filter.MatchNumber, _ = strconv.Atoi(q.Get("match"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	entries, err := s.ScoutingService.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleImportTSV ingests a spreadsheet export posted as the raw request
// body (text/tab-separated-values).
func (s *Server) handleImportTSV(w http.ResponseWriter, r *http.Request) {
	result, err := s.ScoutingService.ImportTSV(r.Context(), http.MaxBytesReader(w, r.Body, 8<<20))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
