package api

import (
	"encoding/json"
	"net/http"

	"edarec/domain/core"
	"edarec/internal/errors"
	"edarec/internal/loader"
	"edarec/reporting"
)

// handleAnnotate evaluates the rule set over the posted analysis-run
// document and returns the run as JSON.
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	records, err := loader.Parse(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	run, err := s.annotator.Annotate(r.Context(), records)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, run)
}

// handleReport evaluates the rule set and returns the rendered HTML
// recommendation section.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	records, err := loader.Parse(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	run, err := s.annotator.Annotate(r.Context(), records)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	section := reporting.RecommendationSection(run.Recommendations)
	if section.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(section.HTML())
}

// statusFor maps domain errors onto HTTP statuses. Rule failures are
// caller-input problems, not server faults.
func statusFor(err error) int {
	if core.IsEmptyDatasetError(err) || core.IsMalformedRecordError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed: %v", err)
	s.writeJSON(w, status, errorResponse{
		Code:  codeFor(err),
		Error: err.Error(),
	})
}

func codeFor(err error) string {
	switch {
	case core.IsEmptyDatasetError(err):
		return errors.CodeEmptyDataset
	case core.IsMalformedRecordError(err):
		return errors.CodeMalformedRecord
	default:
		return errors.GetCode(err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}
