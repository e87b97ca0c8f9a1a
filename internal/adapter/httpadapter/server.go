package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/reportflow"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportService is the application surface the HTTP API exposes.
type ReportService interface {
	Environment(c domain.Coordinate) (domain.EnvironmentalSnapshot, error)
	Solutions(ids []string) []domain.SolutionRecord
	Analyze(ctx context.Context, images []domain.Image) ([]domain.ReportProblem, error)
	SubmitDraft(ctx context.Context, req reportflow.SubmitRequest) (domain.Report, error)
	ListReports() []domain.Report
	GetReport(id string) (domain.Report, error)
	Community() domain.CommunityMap
}

// Server exposes the report API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	svc        ReportService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the /api/v1 routes and /healthz, /readyz, /metrics.
func NewServer(addr string, svc ReportService, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      requestLogger(logger, mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/v1/problem-types", s.handleProblemTypes)
	mux.HandleFunc("GET /api/v1/environment", s.handleEnvironment)
	mux.HandleFunc("GET /api/v1/solutions", s.handleSolutions)
	mux.HandleFunc("POST /api/v1/analysis", s.handleAnalysis)
	mux.HandleFunc("POST /api/v1/reports", s.handleSubmitReport)
	mux.HandleFunc("GET /api/v1/reports", s.handleListReports)
	mux.HandleFunc("GET /api/v1/reports/{id}", s.handleGetReport)
	mux.HandleFunc("GET /api/v1/community", s.handleCommunity)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
