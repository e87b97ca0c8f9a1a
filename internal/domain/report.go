package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity grades how serious a reported problem is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityOrder lists severities from worst to mildest.
var severityOrder = [...]Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	for _, v := range severityOrder {
		if s == v {
			return true
		}
	}
	return false
}

// ReportStatus tracks a submitted report through review.
type ReportStatus string

const (
	StatusSubmitted       ReportStatus = "submitted"
	StatusUnderReview     ReportStatus = "under_review"
	StatusActionInitiated ReportStatus = "action_initiated"
	StatusResolved        ReportStatus = "resolved"
)

var statusLabels = map[ReportStatus]string{
	StatusSubmitted:       "Submitted",
	StatusUnderReview:     "Under Review",
	StatusActionInitiated: "Action Initiated",
	StatusResolved:        "Resolved",
}

// Label returns the display label for s, or the raw value if unknown.
func (s ReportStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ReportProblem is one problem attached to a report.
type ReportProblem struct {
	Type       ProblemType `json:"type"`
	Severity   Severity    `json:"severity"`
	AIDetected bool        `json:"aiDetected"`
}

// Location is where a report was captured. Address may be empty.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Coordinate returns the location's coordinate pair.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}

// Display returns the address, or the coordinate to four decimals when the
// address is blank.
func (l Location) Display() string {
	if a := strings.TrimSpace(l.Address); a != "" {
		return a
	}
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}

// Report is a submitted citizen climate report.
type Report struct {
	ID            string                `json:"id"`
	Location      Location              `json:"location"`
	Images        []string              `json:"images"`
	Problems      []ReportProblem       `json:"problems"`
	Environment   EnvironmentalSnapshot `json:"environmentalData"`
	Solutions     []SolutionRecord      `json:"solutions"`
	ReporterName  string                `json:"reporterName,omitempty"`
	ReporterEmail string                `json:"reporterEmail,omitempty"`
	Anonymous     bool                  `json:"anonymous"`
	CitizenPledge bool                  `json:"citizenPledge"`
	Status        ReportStatus          `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ProblemTypes returns the type of each problem in report order.
func (r Report) ProblemTypes() []ProblemType {
	return ProblemTypesOf(r.Problems)
}

// ProblemTypesOf returns the type of each problem, preserving order.
func ProblemTypesOf(problems []ReportProblem) []ProblemType {
	out := make([]ProblemType, len(problems))
	for i, p := range problems {
		out[i] = p.Type
	}
	return out
}

// WorstSeverity returns the most serious severity among problems, or
// SeverityLow when there are none.
func WorstSeverity(problems []ReportProblem) Severity {
	for _, s := range severityOrder {
		for _, p := range problems {
			if p.Severity == s {
				return s
			}
		}
	}
	return SeverityLow
}

// NewReportID returns a random report identifier of the form RPT-XXXXXXXX.
func NewReportID() string {
	id := uuid.New()
	return "RPT-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
