package domain

import "time"

// DefaultLocation is used when the reporter's position cannot be captured.
var DefaultLocation = Location{Lat: 22.5726, Lng: 88.3639}

// MockReports returns the seeded community reports shown before any citizen
// submits one. Environmental data is derived from each report's coordinate.
func MockReports() []Report {
	reports := []Report{
		{
			ID:       "RPT-001",
			Location: Location{Lat: 22.5726, Lng: 88.3639, Address: "Salt Lake, Sector V, Kolkata"},
			Problems: []ReportProblem{
				{Type: TrafficCongestion, Severity: SeverityHigh, AIDetected: true},
				{Type: LackOfGreen, Severity: SeverityMedium, AIDetected: true},
				{Type: PoorDrainage, Severity: SeverityHigh, AIDetected: false},
			},
			ReporterName:  "Amit Roy",
			ReporterEmail: "amit@example.com",
			CitizenPledge: true,
			Status:        StatusUnderReview,
			CreatedAt:     time.Date(2026, time.February, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:       "RPT-002",
			Location: Location{Lat: 22.5448, Lng: 88.3426, Address: "Park Street, Kolkata"},
			Problems: []ReportProblem{
				{Type: HighPollution, Severity: SeverityCritical, AIDetected: true},
				{Type: PoorWalkability, Severity: SeverityMedium, AIDetected: true},
			},
			Anonymous:     true,
			CitizenPledge: true,
			Status:        StatusSubmitted,
			CreatedAt:     time.Date(2026, time.February, 8, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:       "RPT-003",
			Location: Location{Lat: 22.5626, Lng: 88.3510, Address: "New Town, Rajarhat, Kolkata"},
			Problems: []ReportProblem{
				{Type: UrbanHeatIsland, Severity: SeverityHigh, AIDetected: true},
				{Type: OngoingConstruction, Severity: SeverityMedium, AIDetected: true},
				{Type: WasteDisposal, Severity: SeverityLow, AIDetected: false},
			},
			ReporterName:  "Priya Sen",
			CitizenPledge: true,
			Status:        StatusActionInitiated,
			CreatedAt:     time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC),
		},
	}

	for i := range reports {
		// Seed coordinates are finite constants.
		env, _ := GenerateEnvironmentalSnapshot(reports[i].Location.Coordinate())
		reports[i].Environment = env
		reports[i].Images = []string{}
		reports[i].Solutions = []SolutionRecord{}
	}
	return reports
}
