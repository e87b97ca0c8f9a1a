package domain

// Cost is the relative budget tier of a remediation action.
type Cost string

const (
	CostLow    Cost = "Low"
	CostMedium Cost = "Medium"
	CostHigh   Cost = "High"
)

// RemediationAction is a single proposed fix for a reported problem.
type RemediationAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        Cost   `json:"cost"`
	Timeline    string `json:"timeline"`
	Impact      string `json:"impact"`
	Authority   string `json:"authority"`
}

// SolutionRecord pairs a problem type with its short-term and long-term fixes.
type SolutionRecord struct {
	ProblemType ProblemType       `json:"problemType"`
	ShortTerm   RemediationAction `json:"shortTerm"`
	LongTerm    RemediationAction `json:"longTerm"`
}

type remediationPair struct {
	ShortTerm RemediationAction
	LongTerm  RemediationAction
}

// LookupSolutions resolves problem type identifiers to their solution records.
// Unknown identifiers are dropped. Order is preserved and every occurrence of a
// duplicate yields its own record.
func LookupSolutions(types []string) []SolutionRecord {
	out := make([]SolutionRecord, 0, len(types))
	for _, s := range types {
		t, ok := ParseProblemType(s)
		if !ok {
			continue
		}
		out = append(out, solutionFor(t))
	}
	return out
}

// LookupSolutionsFor is LookupSolutions for already-typed input. Values outside
// the enumeration are dropped the same way.
func LookupSolutionsFor(types []ProblemType) []SolutionRecord {
	out := make([]SolutionRecord, 0, len(types))
	for _, t := range types {
		if !t.Valid() {
			continue
		}
		out = append(out, solutionFor(t))
	}
	return out
}

// solutionFor copies the catalog entry for a known type. The table is never
// handed out by reference.
func solutionFor(t ProblemType) SolutionRecord {
	p := solutionCatalog[t]
	return SolutionRecord{ProblemType: t, ShortTerm: p.ShortTerm, LongTerm: p.LongTerm}
}

var solutionCatalog = map[ProblemType]remediationPair{
	TrafficCongestion: {
		ShortTerm: RemediationAction{
			Title:       "Traffic Flow Optimization",
			Description: "Conduct traffic flow analysis and optimize signal timing at key intersections.",
			Cost:        CostLow,
			Timeline:    "0–3 months",
			Impact:      "15–25% reduction in peak-hour congestion",
			Authority:   "Traffic Police / Municipal Corporation",
		},
		LongTerm: RemediationAction{
			Title:       "Bus Rapid Transit Lanes",
			Description: "Implement dedicated BRT lanes and pedestrianize select streets to reduce private vehicle dependency.",
			Cost:        CostHigh,
			Timeline:    "2–5 years",
			Impact:      "40–60% reduction in traffic volume",
			Authority:   "State Transport Authority / Municipal Corporation",
		},
	},
	LackOfGreen: {
		ShortTerm: RemediationAction{
			Title:       "Pop-up Green Buffers",
			Description: "Deploy movable planters and pop-up green zones along major roads and public spaces.",
			Cost:        CostLow,
			Timeline:    "1–3 months",
			Impact:      "Immediate visual improvement, 2–3°C local cooling",
			Authority:   "Municipal Corporation / Horticulture Dept",
		},
		LongTerm: RemediationAction{
			Title:       "Urban Canopy Program",
			Description: "Plant street trees at 50m intervals, install vertical gardens on metro pillars and building facades.",
			Cost:        CostMedium,
			Timeline:    "1–5 years",
			Impact:      "30% tree canopy target, 5–8°C cooling",
			Authority:   "Municipal Corporation / Forest Department",
		},
	},
	UrbanHeatIsland: {
		ShortTerm: RemediationAction{
			Title:       "Cool Pavements",
			Description: "Apply high-albedo paint on crosswalks and public spaces to reflect heat.",
			Cost:        CostLow,
			Timeline:    "1–2 months",
			Impact:      "3–5°C surface temperature reduction",
			Authority:   "Public Works Department",
		},
		LongTerm: RemediationAction{
			Title:       "Green Roofs & Permeable Surfaces",
			Description: "Mandate green roofs on new buildings, replace impervious surfaces with permeable alternatives.",
			Cost:        CostHigh,
			Timeline:    "2–5 years",
			Impact:      "8–12°C reduction in urban heat island effect",
			Authority:   "Urban Development Authority",
		},
	},
	VisibilityBarriers: {
		ShortTerm: RemediationAction{
			Title:       "Visual Clutter Removal",
			Description: "Remove unauthorized signage, paint 'green trail' wayfinding markers.",
			Cost:        CostLow,
			Timeline:    "1–2 months",
			Impact:      "Improved pedestrian safety and navigation",
			Authority:   "Municipal Corporation",
		},
		LongTerm: RemediationAction{
			Title:       "Unified Signage System",
			Description: "Install standardized, transparent barriers and unified wayfinding signage throughout the area.",
			Cost:        CostMedium,
			Timeline:    "6–12 months",
			Impact:      "Significant improvement in visibility and safety",
			Authority:   "Municipal Corporation / Urban Planning",
		},
	},
	PoorSignage: {
		ShortTerm: RemediationAction{
			Title:       "Temporary Wayfinding Art",
			Description: "Install artistic, temporary wayfinding installations at key junctions.",
			Cost:        CostLow,
			Timeline:    "1–2 months",
			Impact:      "Improved navigation for pedestrians and commuters",
			Authority:   "Municipal Corporation",
		},
		LongTerm: RemediationAction{
			Title:       "Digital Smart Signage",
			Description: "Install digital signage with real-time transit info, AQI updates, and emergency alerts.",
			Cost:        CostHigh,
			Timeline:    "1–2 years",
			Impact:      "Complete wayfinding overhaul",
			Authority:   "Smart City Mission / Municipal Corporation",
		},
	},
	PoorDrainage: {
		ShortTerm: RemediationAction{
			Title:       "Drain Cleaning Drive",
			Description: "Organize community-led drain cleaning and debris removal campaigns.",
			Cost:        CostLow,
			Timeline:    "0–1 month",
			Impact:      "Immediate flood risk reduction",
			Authority:   "Municipal Corporation / Ward Office",
		},
		LongTerm: RemediationAction{
			Title:       "Bioswales & Permeable Pavement",
			Description: "Install bioswales along roads and replace impervious surfaces with 500mm porous concrete.",
			Cost:        CostHigh,
			Timeline:    "1–3 years",
			Impact:      "70% reduction in surface water runoff",
			Authority:   "Public Works Department / Municipal Corporation",
		},
	},
	NoPedestrianSeparation: {
		ShortTerm: RemediationAction{
			Title:       "Weighted Planter Barriers",
			Description: "Place weighted movable planters as temporary barriers between pedestrian and vehicle zones.",
			Cost:        CostLow,
			Timeline:    "1–2 months",
			Impact:      "Immediate pedestrian safety improvement",
			Authority:   "Municipal Corporation / Traffic Police",
		},
		LongTerm: RemediationAction{
			Title:       "Protected Lanes & Raised Crosswalks",
			Description: "Build protected bike lanes, raised crosswalks, and dedicated pedestrian corridors.",
			Cost:        CostHigh,
			Timeline:    "1–3 years",
			Impact:      "80% reduction in pedestrian-vehicle conflicts",
			Authority:   "Municipal Corporation / PWD",
		},
	},
	WasteDisposal: {
		ShortTerm: RemediationAction{
			Title:       "Community Cleanup & Temp Bins",
			Description: "Organize neighborhood cleanup drives and install temporary segregated waste bins.",
			Cost:        CostLow,
			Timeline:    "0–1 month",
			Impact:      "Visible cleanliness improvement",
			Authority:   "Municipal Corporation / Ward Office",
		},
		LongTerm: RemediationAction{
			Title:       "Segregated Waste Infrastructure",
			Description: "Build permanent segregated waste collection points, composting units, and recycling centers.",
			Cost:        CostMedium,
			Timeline:    "6–18 months",
			Impact:      "60% reduction in open waste dumping",
			Authority:   "Municipal Corporation / Solid Waste Management",
		},
	},
	PoorWalkability: {
		ShortTerm: RemediationAction{
			Title:       "Tactical Paint & Curb Ramps",
			Description: "Apply tactical paint for crosswalks, add temporary curb ramps for accessibility.",
			Cost:        CostLow,
			Timeline:    "1–2 months",
			Impact:      "Immediate walkability improvement",
			Authority:   "Municipal Corporation / PWD",
		},
		LongTerm: RemediationAction{
			Title:       "Complete Streets Redesign",
			Description: "Implement ADA-compliant sidewalks, continuous walking paths, and shade infrastructure.",
			Cost:        CostHigh,
			Timeline:    "1–3 years",
			Impact:      "Complete walkability transformation",
			Authority:   "Urban Development Authority / PWD",
		},
	},
	HighPollution: {
		ShortTerm: RemediationAction{
			Title:       "Air-Purifying Plant Barriers",
			Description: "Install air-purifying plants in large planters along polluted corridors, add noise barriers.",
			Cost:        CostLow,
			Timeline:    "1–3 months",
			Impact:      "10–15% local PM reduction",
			Authority:   "Environment Department / Municipal Corporation",
		},
		LongTerm: RemediationAction{
			Title:       "Green Walls & EV Zones",
			Description: "Build green walls for PM capture, implement traffic calming measures, designate EV-only zones.",
			Cost:        CostHigh,
			Timeline:    "2–5 years",
			Impact:      "40–60% pollution reduction in target areas",
			Authority:   "Environment Department / Transport Authority",
		},
	},
	HighTraffic: {
		ShortTerm: RemediationAction{
			Title:       "Peak-Hour Lane Management",
			Description: "Implement reversible lanes and peak-hour traffic management strategies.",
			Cost:        CostLow,
			Timeline:    "1–3 months",
			Impact:      "20% improvement in peak flow",
			Authority:   "Traffic Police / Municipal Corporation",
		},
		LongTerm: RemediationAction{
			Title:       "Multi-Modal Transit Hubs",
			Description: "Build integrated transit hubs with congestion pricing to shift users to public transport.",
			Cost:        CostHigh,
			Timeline:    "3–5 years",
			Impact:      "50% reduction in private vehicle traffic",
			Authority:   "State Transport Authority / Smart City Mission",
		},
	},
	OngoingConstruction: {
		ShortTerm: RemediationAction{
			Title:       "Dust Suppression & Green Screens",
			Description: "Mandate water sprays for dust suppression, install hoarding with green screen panels.",
			Cost:        CostLow,
			Timeline:    "0–1 month",
			Impact:      "Immediate air quality improvement around site",
			Authority:   "Municipal Corporation / Builder",
		},
		LongTerm: RemediationAction{
			Title:       "Green Construction Mandates",
			Description: "Enforce green construction practices, buffer zones, and mandatory environmental compliance.",
			Cost:        CostMedium,
			Timeline:    "6–12 months (policy)",
			Impact:      "Systemic improvement in construction impact",
			Authority:   "Urban Development Authority / Environment Dept",
		},
	},
}
