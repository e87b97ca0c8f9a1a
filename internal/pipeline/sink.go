package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/climate-report-service/internal/domain"
)

// LogSink is a BatchLoader that only logs reports. It is used when no message
// broker is configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink writing to logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// LoadBatch logs one line per report.
func (s *LogSink) LoadBatch(_ context.Context, reports []domain.Report) error {
	for i := range reports {
		r := &reports[i]
		s.logger.Info("report dispatched",
			"report_id", r.ID,
			"status", r.Status,
			"problems", len(r.Problems),
			"severity", domain.WorstSeverity(r.Problems),
			"aqi", r.Environment.AQI,
		)
	}
	return nil
}
