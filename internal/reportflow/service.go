package reportflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/observability"
)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// Enqueuer accepts stored reports for asynchronous delivery.
type Enqueuer interface {
	Enqueue(r domain.Report) error
}

// SubmitRequest is a complete report submitted in one call. When ProblemTypes
// is empty the images are run through the analyzer; otherwise the listed
// problems are recorded as manual medium-severity entries.
type SubmitRequest struct {
	Images       []domain.Image       `json:"images"`
	Location     *domain.Location     `json:"location,omitempty"`
	ProblemTypes []domain.ProblemType `json:"problemTypes,omitempty"`
	Reporter     Reporter             `json:"reporter"`
}

// Service ties together analysis, the report store and the dispatch queue.
type Service struct {
	store    *Store
	analyzer domain.Analyzer
	queue    Enqueuer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewService creates a Service. queue may be nil, in which case reports are
// only stored.
func NewService(store *Store, analyzer domain.Analyzer, queue Enqueuer, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		store:    store,
		analyzer: &instrumentedAnalyzer{inner: analyzer, metrics: metrics},
		queue:    queue,
		logger:   logger,
		metrics:  metrics,
	}
}

// Environment returns the environmental snapshot for c.
func (s *Service) Environment(c domain.Coordinate) (domain.EnvironmentalSnapshot, error) {
	snap, err := domain.GenerateEnvironmentalSnapshot(c)
	if err != nil {
		s.metrics.InvalidCoordinates.Inc()
		return domain.EnvironmentalSnapshot{}, err
	}
	s.metrics.SnapshotsGenerated.Inc()
	return snap, nil
}

// Solutions resolves remediation records for the given problem identifiers.
// Unknown identifiers are skipped.
func (s *Service) Solutions(ids []string) []domain.SolutionRecord {
	s.metrics.SolutionLookups.Inc()
	out := domain.LookupSolutions(ids)
	if skipped := len(ids) - len(out); skipped > 0 {
		s.metrics.UnknownProblemTypes.Add(float64(skipped))
		s.logger.Debug("unknown problem types skipped", "requested", len(ids), "skipped", skipped)
	}
	return out
}

// Analyze validates images against the upload limits and runs the analyzer.
func (s *Service) Analyze(ctx context.Context, images []domain.Image) ([]domain.ReportProblem, error) {
	d := NewDraft()
	for _, img := range images {
		if err := d.AddImage(img); err != nil {
			return nil, err
		}
	}
	return s.analyzer.Analyze(ctx, d.Images())
}

// SubmitDraft walks a draft through every step, stores the resulting report
// and hands it to the dispatch queue. A full queue is logged; the report stays stored.
func (s *Service) SubmitDraft(ctx context.Context, req SubmitRequest) (domain.Report, error) {
	d := NewDraft()
	for _, img := range req.Images {
		if err := d.AddImage(img); err != nil {
			return domain.Report{}, err
		}
	}
	if req.Location != nil {
		d.SetLocation(req.Location)
	} else {
		d.UseDefaultLocation()
	}
	if err := d.Next(); err != nil {
		return domain.Report{}, err
	}

	if len(req.ProblemTypes) == 0 {
		if err := d.RunAnalysis(ctx, s.analyzer); err != nil {
			return domain.Report{}, err
		}
	} else {
		for _, t := range req.ProblemTypes {
			if !t.Valid() {
				return domain.Report{}, fmt.Errorf("problem type %q: %w", t, domain.ErrInvalidInput)
			}
			if !d.hasProblem(t) {
				d.ToggleProblem(t)
			}
		}
	}

	for d.Step() != StepReview {
		if err := d.Next(); err != nil {
			return domain.Report{}, err
		}
	}

	report, err := d.Submit(req.Reporter)
	if err != nil {
		return domain.Report{}, err
	}

	s.store.Add(report)
	s.metrics.ReportsSubmitted.Inc()
	s.logger.Info("report submitted",
		"report_id", report.ID,
		"problems", len(report.Problems),
		"severity", domain.WorstSeverity(report.Problems),
		"aqi", report.Environment.AQI,
		"stored_reports", s.store.Len(),
	)

	if s.queue != nil {
		if err := s.queue.Enqueue(report); err != nil {
			s.logger.Warn("report not queued for dispatch", "report_id", report.ID, "error", err)
		}
	}
	return report, nil
}

// ListReports returns every stored report in submission order.
func (s *Service) ListReports() []domain.Report {
	return s.store.List()
}

// GetReport returns one report by ID.
func (s *Service) GetReport(id string) (domain.Report, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return domain.Report{}, fmt.Errorf("%s: %w", id, ErrReportNotFound)
	}
	return r, nil
}

// Community summarises all stored reports for the community map.
func (s *Service) Community() domain.CommunityMap {
	return domain.BuildCommunityMap(s.store.List())
}

// instrumentedAnalyzer records outcome and duration for each analysis run.
type instrumentedAnalyzer struct {
	inner   domain.Analyzer
	metrics *observability.Metrics
}

func (a *instrumentedAnalyzer) Analyze(ctx context.Context, images []domain.Image) ([]domain.ReportProblem, error) {
	start := time.Now()
	problems, err := a.inner.Analyze(ctx, images)
	a.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	outcome := "success"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "cancelled"
	case err != nil:
		outcome = "error"
	}
	a.metrics.Analyses.WithLabelValues(outcome).Inc()
	return problems, err
}
