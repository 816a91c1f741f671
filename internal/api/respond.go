package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aTrapDeer/portfolio-api/internal/repository"
)

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]string{"error": message})
}

// writeError maps a repository error onto the wire. Validation problems and
// duplicate slugs are 400s, missing rows 404s, and anything else a 500 whose
// detail is only exposed in development mode.
func (s *Server) writeError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	var verr *repository.ValidationError
	switch {
	case errors.As(err, &verr):
		s.respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, repository.ErrDuplicateSlug):
		s.respondError(w, http.StatusBadRequest, "Slug already exists")
	case errors.Is(err, repository.ErrNotFound):
		s.respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		s.log.Error().Err(err).Msg(failMsg)
		body := map[string]string{"error": failMsg}
		if s.cfg.Development() {
			body["message"] = err.Error()
		}
		s.respond(w, http.StatusInternalServerError, body)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathID parses the {id} path segment. A non-numeric id behaves like a row
// that does not exist.
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, repository.ErrNotFound
	}
	return uint(id), nil
}

// boolParam normalizes an optional boolean query parameter into a tri-state:
// nil when absent, true for "true", false for any other present value.
func boolParam(r *http.Request, name string) *bool {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name) == "true"
	return &v
}

// intParam returns the parsed value, or fallback when the parameter is
// absent or malformed.
func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
