package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommunityMap_MockReports(t *testing.T) {
	m := BuildCommunityMap(MockReports())

	require.Len(t, m.Markers, 3)
	assert.Equal(t, 13, m.Zoom)
	assert.InDelta(t, (22.5726+22.5448+22.5626)/3, m.Center.Lat, 1e-9)
	assert.InDelta(t, (88.3639+88.3426+88.3510)/3, m.Center.Lng, 1e-9)

	assert.Equal(t, CommunityStats{TotalReports: 3, Resolved: 0, IssuesTracked: 8}, m.Stats)

	first := m.Markers[0]
	assert.Equal(t, "RPT-001", first.ReportID)
	assert.Equal(t, SeverityHigh, first.Severity)
	assert.Equal(t, "#f97316", first.Color)
	assert.Equal(t, StatusUnderReview, first.Status)
	assert.Equal(t, "Under Review", first.StatusLabel)
	assert.Equal(t, []string{"Traffic Congestion", "Lack of Green Cover", "Poor Drainage"}, first.Problems)

	second := m.Markers[1]
	assert.Equal(t, SeverityCritical, second.Severity)
	assert.Equal(t, "#ef4444", second.Color)
	assert.Equal(t, "Park Street, Kolkata", second.Address)
}

func TestBuildCommunityMap_Empty(t *testing.T) {
	m := BuildCommunityMap(nil)
	assert.Empty(t, m.Markers)
	assert.NotNil(t, m.Markers)
	assert.Equal(t, Coordinate{}, m.Center)
	assert.Equal(t, CommunityStats{}, m.Stats)
}

func TestBuildCommunityMap_CountsResolved(t *testing.T) {
	reports := []Report{
		{ID: "a", Status: StatusResolved, Location: Location{Lat: 10, Lng: 20}},
		{ID: "b", Status: StatusSubmitted, Location: Location{Lat: 20, Lng: 40}, Problems: []ReportProblem{{Type: PoorSignage, Severity: SeverityLow}}},
	}
	m := BuildCommunityMap(reports)
	assert.Equal(t, 1, m.Stats.Resolved)
	assert.Equal(t, 1, m.Stats.IssuesTracked)
	assert.Equal(t, Coordinate{Lat: 15, Lng: 30}, m.Center)
	assert.Equal(t, "10.0000, 20.0000", m.Markers[0].Address)
	assert.Equal(t, SeverityLow, m.Markers[0].Severity)
}

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, "#22c55e", SeverityColor(SeverityLow))
	assert.Equal(t, "#eab308", SeverityColor(SeverityMedium))
	assert.Equal(t, "#22c55e", SeverityColor("unknown"))
}

func TestMockReports(t *testing.T) {
	reports := MockReports()
	require.Len(t, reports, 3)

	for _, r := range reports {
		want, err := GenerateEnvironmentalSnapshot(r.Location.Coordinate())
		require.NoError(t, err)
		assert.Equal(t, want, r.Environment, r.ID)
		assert.True(t, r.CitizenPledge)
		assert.NotNil(t, r.Images)
	}
	assert.True(t, reports[1].Anonymous)
	assert.Empty(t, reports[1].ReporterName)
	assert.Equal(t, 282, reports[0].Environment.AQI)

	reports[0].Problems[0].Type = WasteDisposal
	assert.Equal(t, TrafficCongestion, MockReports()[0].Problems[0].Type)
}
