package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllProblemTypes(t *testing.T) {
	all := AllProblemTypes()
	assert.Len(t, all, 12)
	assert.Equal(t, TrafficCongestion, all[0])
	assert.Equal(t, OngoingConstruction, all[11])

	seen := make(map[ProblemType]bool, len(all))
	for _, pt := range all {
		assert.False(t, seen[pt], "duplicate %s", pt)
		seen[pt] = true
		assert.NotEmpty(t, LabelOf(pt), "label for %s", pt)
	}

	all[0] = "changed"
	assert.Equal(t, TrafficCongestion, AllProblemTypes()[0], "caller must not alias the enumeration")
}

func TestParseProblemType(t *testing.T) {
	pt, ok := ParseProblemType("no_pedestrian_separation")
	assert.True(t, ok)
	assert.Equal(t, NoPedestrianSeparation, pt)

	_, ok = ParseProblemType("flooding")
	assert.False(t, ok)
	_, ok = ParseProblemType("")
	assert.False(t, ok)
}

func TestLabelOf(t *testing.T) {
	tests := []struct {
		pt   ProblemType
		want string
	}{
		{TrafficCongestion, "Traffic Congestion"},
		{LackOfGreen, "Lack of Green Cover"},
		{NoPedestrianSeparation, "No Pedestrian-Vehicle Separation"},
		{WasteDisposal, "Waste Disposal Issues"},
		{HighTraffic, "High Traffic Volume"},
		{ProblemType("unknown"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelOf(tt.pt))
		assert.Equal(t, tt.want, tt.pt.Label())
	}
}
