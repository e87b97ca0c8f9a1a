package reportflow

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/couchcryptid/climate-report-service/internal/domain"
)

const (
	// MaxImages is the most images a single report may carry.
	MaxImages = 5
	// MaxImageSize is the largest accepted image in bytes.
	MaxImageSize = 2 << 20
)

var (
	ErrTooManyImages      = errors.New("a report may carry at most 5 images")
	ErrImageTooLarge      = errors.New("image exceeds 2 MiB")
	ErrStepIncomplete     = errors.New("current step is incomplete")
	ErrLastStep           = errors.New("already on the last step")
	ErrFirstStep          = errors.New("already on the first step")
	ErrNotOnReviewStep    = errors.New("reports can only be submitted from the review step")
	ErrPledgeRequired     = errors.New("citizen pledge must be accepted")
	ErrLocationRequired   = errors.New("report location is required")
	ErrAnalysisNotIdle    = errors.New("analysis has already been run")
	ErrImageIndexNotFound = errors.New("no image at that index")
)

// Step is a position in the report wizard.
type Step int

const (
	StepUpload Step = iota
	StepAnalysis
	StepEnvironment
	StepSolutions
	StepReview
)

var stepTitles = [...]string{"Upload Images", "AI Analysis", "Environment", "Solutions", "Review & Submit"}

func (s Step) String() string {
	if s < StepUpload || s > StepReview {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepTitles[s]
}

// Reporter carries the identity and pledge given on the review step.
type Reporter struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Anonymous     bool   `json:"anonymous"`
	CitizenPledge bool   `json:"citizenPledge"`
}

// Draft is an in-progress report. A Draft is not safe for concurrent use.
type Draft struct {
	step      Step
	images    []domain.Image
	location  *domain.Location
	problems  []domain.ReportProblem
	snapshot  *domain.EnvironmentalSnapshot
	solutions []domain.SolutionRecord
	analysis  domain.AnalysisState
}

// NewDraft returns an empty draft on the upload step.
func NewDraft() *Draft {
	return &Draft{step: StepUpload, analysis: domain.AnalysisIdle}
}

// Step returns the current wizard step.
func (d *Draft) Step() Step { return d.step }

// AnalysisState returns whether image analysis is idle, running, or done.
func (d *Draft) AnalysisState() domain.AnalysisState { return d.analysis }

// Images returns a copy of the attached images in upload order.
func (d *Draft) Images() []domain.Image { return slices.Clone(d.images) }

// Problems returns a copy of the detected and manually added problems.
func (d *Draft) Problems() []domain.ReportProblem { return slices.Clone(d.problems) }

// Solutions returns a copy of the resolved solutions, or nil before the solutions step.
func (d *Draft) Solutions() []domain.SolutionRecord { return slices.Clone(d.solutions) }

// Location returns the captured location, or nil.
func (d *Draft) Location() *domain.Location {
	if d.location == nil {
		return nil
	}
	l := *d.location
	return &l
}

// Snapshot returns the environmental snapshot, or nil before the environment step.
func (d *Draft) Snapshot() *domain.EnvironmentalSnapshot {
	if d.snapshot == nil {
		return nil
	}
	s := *d.snapshot
	return &s
}

// AddImage attaches an image.
func (d *Draft) AddImage(img domain.Image) error {
	if len(d.images) >= MaxImages {
		return ErrTooManyImages
	}
	if img.Size > MaxImageSize {
		return fmt.Errorf("%s: %w", img.Name, ErrImageTooLarge)
	}
	d.images = append(d.images, img)
	return nil
}

// RemoveImage drops the image at index i.
func (d *Draft) RemoveImage(i int) error {
	if i < 0 || i >= len(d.images) {
		return ErrImageIndexNotFound
	}
	d.images = slices.Delete(d.images, i, i+1)
	return nil
}

// SetLocation records where the report was captured. nil clears it.
func (d *Draft) SetLocation(l *domain.Location) {
	if l == nil {
		d.location = nil
		return
	}
	loc := *l
	d.location = &loc
}

// UseDefaultLocation falls back to the default city location when capture fails.
func (d *Draft) UseDefaultLocation() {
	d.SetLocation(&domain.DefaultLocation)
}

// RunAnalysis runs image analysis once. Detected problems replace the current
// list; detections with an unknown type or severity are dropped. On failure the
// draft returns to idle and may be retried.
func (d *Draft) RunAnalysis(ctx context.Context, a domain.Analyzer) error {
	if d.analysis != domain.AnalysisIdle {
		return ErrAnalysisNotIdle
	}
	d.analysis = domain.AnalysisAnalyzing
	detected, err := a.Analyze(ctx, slices.Clone(d.images))
	if err != nil {
		d.analysis = domain.AnalysisIdle
		return fmt.Errorf("analyze images: %w", err)
	}
	d.problems = slices.DeleteFunc(slices.Clone(detected), func(p domain.ReportProblem) bool {
		return !p.Type.Valid() || !p.Severity.Valid()
	})
	d.analysis = domain.AnalysisAnalyzed
	return nil
}

// ToggleProblem adds t as a manual medium-severity problem, or removes it if
// present. Types outside the enumeration are ignored.
func (d *Draft) ToggleProblem(t domain.ProblemType) {
	if !t.Valid() {
		return
	}
	if d.hasProblem(t) {
		d.RemoveProblem(t)
		return
	}
	d.problems = append(d.problems, domain.ReportProblem{Type: t, Severity: domain.SeverityMedium})
}

// RemoveProblem removes every problem of type t.
func (d *Draft) RemoveProblem(t domain.ProblemType) {
	d.problems = slices.DeleteFunc(d.problems, func(p domain.ReportProblem) bool { return p.Type == t })
}

func (d *Draft) hasProblem(t domain.ProblemType) bool {
	return slices.ContainsFunc(d.problems, func(p domain.ReportProblem) bool { return p.Type == t })
}

// CanAdvance reports whether the current step has what it needs.
func (d *Draft) CanAdvance() bool {
	switch d.step {
	case StepUpload:
		return len(d.images) > 0
	case StepAnalysis:
		return len(d.problems) > 0
	default:
		return true
	}
}

// Next moves to the following step. Entering the environment step generates
// the snapshot, and entering the solutions step resolves solutions, each only
// the first time.
func (d *Draft) Next() error {
	if d.step == StepReview {
		return ErrLastStep
	}
	if !d.CanAdvance() {
		return fmt.Errorf("%s: %w", d.step, ErrStepIncomplete)
	}

	switch d.step + 1 {
	case StepEnvironment:
		if d.snapshot == nil && d.location != nil {
			snap, err := domain.GenerateEnvironmentalSnapshot(d.location.Coordinate())
			if err != nil {
				return fmt.Errorf("generate snapshot: %w", err)
			}
			d.snapshot = &snap
		}
	case StepSolutions:
		if d.solutions == nil && len(d.problems) > 0 {
			d.solutions = domain.LookupSolutionsFor(domain.ProblemTypesOf(d.problems))
		}
	}
	d.step++
	return nil
}

// Back moves to the previous step.
func (d *Draft) Back() error {
	if d.step == StepUpload {
		return ErrFirstStep
	}
	d.step--
	return nil
}

// Submit finalizes the draft into a report with status submitted.
func (d *Draft) Submit(r Reporter) (domain.Report, error) {
	if d.step != StepReview {
		return domain.Report{}, ErrNotOnReviewStep
	}
	if !r.CitizenPledge {
		return domain.Report{}, ErrPledgeRequired
	}
	if d.location == nil {
		return domain.Report{}, ErrLocationRequired
	}

	snap := d.snapshot
	if snap == nil {
		s, err := domain.GenerateEnvironmentalSnapshot(d.location.Coordinate())
		if err != nil {
			return domain.Report{}, fmt.Errorf("generate snapshot: %w", err)
		}
		snap = &s
	}

	names := make([]string, len(d.images))
	for i, img := range d.images {
		names[i] = img.Name
	}
	solutions := d.solutions
	if solutions == nil {
		solutions = []domain.SolutionRecord{}
	}

	report := domain.Report{
		ID:            domain.NewReportID(),
		Location:      *d.location,
		Images:        names,
		Problems:      slices.Clone(d.problems),
		Environment:   *snap,
		Solutions:     slices.Clone(solutions),
		Anonymous:     r.Anonymous,
		CitizenPledge: true,
		Status:        domain.StatusSubmitted,
		CreatedAt:     domain.Now(),
	}
	if !r.Anonymous {
		report.ReporterName = r.Name
		report.ReporterEmail = r.Email
	}
	return report, nil
}
