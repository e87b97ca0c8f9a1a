package domain

import "time"

var severityColors = map[Severity]string{
	SeverityLow:      "#22c55e",
	SeverityMedium:   "#eab308",
	SeverityHigh:     "#f97316",
	SeverityCritical: "#ef4444",
}

// SeverityColor returns the marker color for s. Unknown severities get the
// low color.
func SeverityColor(s Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[SeverityLow]
}

// MapMarker is one report plotted on the community map.
type MapMarker struct {
	ReportID string       `json:"reportId"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	Address  string       `json:"address"`
	Severity Severity     `json:"severity"`
	Color    string       `json:"color"`
	Status   ReportStatus `json:"status"`
	// StatusLabel is the display form of Status, e.g. "Under Review".
	StatusLabel string    `json:"statusLabel"`
	Problems    []string  `json:"problems"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityStats summarizes the reports on the map.
type CommunityStats struct {
	TotalReports  int `json:"totalReports"`
	Resolved      int `json:"resolved"`
	IssuesTracked int `json:"issuesTracked"`
}

// CommunityMap is the data behind the community map and listing.
type CommunityMap struct {
	Center  Coordinate     `json:"center"`
	Zoom    int            `json:"zoom"`
	Markers []MapMarker    `json:"markers"`
	Stats   CommunityStats `json:"stats"`
}

const communityZoom = 13

// BuildCommunityMap plots reports as markers colored by their worst severity
// and centers the map on the mean coordinate. An empty input yields a zero
// center and no markers.
func BuildCommunityMap(reports []Report) CommunityMap {
	m := CommunityMap{
		Zoom:    communityZoom,
		Markers: make([]MapMarker, 0, len(reports)),
	}
	if len(reports) == 0 {
		return m
	}

	var sumLat, sumLng float64
	for _, r := range reports {
		sumLat += r.Location.Lat
		sumLng += r.Location.Lng

		worst := WorstSeverity(r.Problems)
		types := r.ProblemTypes()
		labels := make([]string, len(types))
		for i, t := range types {
			labels[i] = t.Label()
		}

		m.Markers = append(m.Markers, MapMarker{
			ReportID:    r.ID,
			Lat:         r.Location.Lat,
			Lng:         r.Location.Lng,
			Address:     r.Location.Display(),
			Severity:    worst,
			Color:       SeverityColor(worst),
			Status:      r.Status,
			StatusLabel: r.Status.Label(),
			Problems:    labels,
			CreatedAt:   r.CreatedAt,
		})

		m.Stats.TotalReports++
		m.Stats.IssuesTracked += len(r.Problems)
		if r.Status == StatusResolved {
			m.Stats.Resolved++
		}
	}

	n := float64(len(reports))
	m.Center = Coordinate{Lat: sumLat / n, Lng: sumLng / n}
	return m
}
