package domain

// ProblemType identifies one of the fixed categories of urban climate or
// infrastructure issue a citizen can report.
type ProblemType string

const (
	TrafficCongestion      ProblemType = "traffic_congestion"
	LackOfGreen            ProblemType = "lack_of_green"
	UrbanHeatIsland        ProblemType = "urban_heat_island"
	VisibilityBarriers     ProblemType = "visibility_barriers"
	PoorSignage            ProblemType = "poor_signage"
	PoorDrainage           ProblemType = "poor_drainage"
	NoPedestrianSeparation ProblemType = "no_pedestrian_separation"
	WasteDisposal          ProblemType = "waste_disposal"
	PoorWalkability        ProblemType = "poor_walkability"
	HighPollution          ProblemType = "high_pollution"
	HighTraffic            ProblemType = "high_traffic"
	OngoingConstruction    ProblemType = "ongoing_construction"
)

// problemTypes lists every ProblemType in display order.
var problemTypes = [...]ProblemType{
	TrafficCongestion,
	LackOfGreen,
	UrbanHeatIsland,
	VisibilityBarriers,
	PoorSignage,
	PoorDrainage,
	NoPedestrianSeparation,
	WasteDisposal,
	PoorWalkability,
	HighPollution,
	HighTraffic,
	OngoingConstruction,
}

var problemLabels = map[ProblemType]string{
	TrafficCongestion:      "Traffic Congestion",
	LackOfGreen:            "Lack of Green Cover",
	UrbanHeatIsland:        "Urban Heat Island",
	VisibilityBarriers:     "Visibility Barriers",
	PoorSignage:            "Poor Signage",
	PoorDrainage:           "Poor Drainage",
	NoPedestrianSeparation: "No Pedestrian-Vehicle Separation",
	WasteDisposal:          "Waste Disposal Issues",
	PoorWalkability:        "Poor Walkability",
	HighPollution:          "High Pollution",
	HighTraffic:            "High Traffic Volume",
	OngoingConstruction:    "Ongoing Construction",
}

// AllProblemTypes returns a fresh slice of every ProblemType in display order.
func AllProblemTypes() []ProblemType {
	out := make([]ProblemType, len(problemTypes))
	copy(out, problemTypes[:])
	return out
}

// ParseProblemType reports whether s names a known ProblemType.
// Matching is exact: identifiers are lower snake case.
func ParseProblemType(s string) (ProblemType, bool) {
	t := ProblemType(s)
	_, ok := problemLabels[t]
	return t, ok
}

// Valid reports whether t is a member of the closed enumeration.
func (t ProblemType) Valid() bool {
	_, ok := problemLabels[t]
	return ok
}

// LabelOf returns the human-readable label for t, or "" for unknown types.
func LabelOf(t ProblemType) string {
	return problemLabels[t]
}

// Label is shorthand for LabelOf(t).
func (t ProblemType) Label() string {
	return LabelOf(t)
}
