package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoImages is returned when analysis is requested without any images.
var ErrNoImages = errors.New("no images to analyze")

// DefaultAnalysisDelay is how long MockAnalyzer pretends to work.
const DefaultAnalysisDelay = 2 * time.Second

// Image describes an uploaded photo. Only metadata is kept; image bytes never
// enter this service.
type Image struct {
	Name string `json:"name"`
	Size int64  `json:"size"` // bytes
}

// Analyzer detects problems in a set of report images.
type Analyzer interface {
	Analyze(ctx context.Context, images []Image) ([]ReportProblem, error)
}

// AnalysisState is the progress of image analysis for a draft.
type AnalysisState string

const (
	AnalysisIdle      AnalysisState = "idle"
	AnalysisAnalyzing AnalysisState = "analyzing"
	AnalysisAnalyzed  AnalysisState = "analyzed"
)

// MockAnalyzer returns a canned set of detections after a fixed delay measured
// on the package clock.
type MockAnalyzer struct {
	delay time.Duration
}

// NewMockAnalyzer creates a MockAnalyzer. A non-positive delay returns
// immediately.
func NewMockAnalyzer(delay time.Duration) *MockAnalyzer {
	return &MockAnalyzer{delay: delay}
}

// Analyze waits for the configured delay or ctx cancellation, whichever comes
// first, then returns the canned detections.
func (a *MockAnalyzer) Analyze(ctx context.Context, images []Image) ([]ReportProblem, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if a.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-clock.After(a.delay):
		}
	}
	return mockDetections(), nil
}

func mockDetections() []ReportProblem {
	return []ReportProblem{
		{Type: TrafficCongestion, Severity: SeverityHigh, AIDetected: true},
		{Type: LackOfGreen, Severity: SeverityMedium, AIDetected: true},
		{Type: HighPollution, Severity: SeverityHigh, AIDetected: true},
	}
}
