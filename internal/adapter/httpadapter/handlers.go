package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/reportflow"
)

const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

type problemTypeResponse struct {
	ID    domain.ProblemType `json:"id"`
	Label string             `json:"label"`
}

type analysisRequest struct {
	Images []domain.Image `json:"images"`
}

type analysisResponse struct {
	Problems []domain.ReportProblem `json:"problems"`
}

func (s *Server) handleProblemTypes(w http.ResponseWriter, _ *http.Request) {
	types := domain.AllProblemTypes()
	out := make([]problemTypeResponse, len(types))
	for i, t := range types {
		out[i] = problemTypeResponse{ID: t, Label: t.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := parseCoordinate(q.Get("lat"), "lat")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	lng, err := parseCoordinate(q.Get("lng"), "lng")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	snap, err := s.svc.Environment(domain.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSolutions(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, v := range r.URL.Query()["type"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	writeJSON(w, http.StatusOK, s.svc.Solutions(ids))
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	problems, err := s.svc.Analyze(r.Context(), req.Images)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisResponse{Problems: problems})
}

func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req reportflow.SubmitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.svc.SubmitDraft(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/reports/"+report.ID)
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleListReports(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.ListReports())
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.GetReport(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCommunity(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Community())
}

func parseCoordinate(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", errBadRequest, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", errBadRequest, name)
	}
	return v, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoImages),
		errors.Is(err, reportflow.ErrTooManyImages),
		errors.Is(err, reportflow.ErrImageTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, reportflow.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, reportflow.ErrStepIncomplete),
		errors.Is(err, reportflow.ErrPledgeRequired),
		errors.Is(err, reportflow.ErrLocationRequired),
		errors.Is(err, reportflow.ErrNotOnReviewStep):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // response already committed
}
