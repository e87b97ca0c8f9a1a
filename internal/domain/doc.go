// Package domain models citizen climate reports and the two pure lookups that
// enrich them: mock environmental readings and remediation suggestions.
//
// # Environmental Snapshots
//
// There is no live sensor or weather feed. Readings are a deterministic
// function of the report coordinate so the same place always shows the same
// numbers.
//
// Seed:
//
//	seed = |sin(lat*12.9898 + lng*78.233) * 43758.5453| mod 1
//
//	Computed in float64 with exactly these constants. Other clients rely on
//	the same category boundaries, so the formula must not drift.
//
// Regimes:
//
//	tropical           |lat| < 25                       (±25 is not tropical)
//	urban high density 8 < lat < 35 and 68 < lng < 97   (all bounds exclusive)
//
// Rounding:
//
//	All "round" steps round half up (floor(x + 0.5)), so negative halves
//	round toward positive infinity.
//
// AQI categories (upper bound inclusive):
//
//	≤50 Good | ≤100 Satisfactory | ≤200 Moderate | ≤300 Poor | ≤400 Very Poor | else Severe
//
// Non-finite coordinates are rejected with [ErrInvalidInput] instead of
// producing NaN readings.
//
// # Solution Catalog
//
// Each of the twelve [ProblemType] values maps to exactly one short-term and
// one long-term [RemediationAction]. The table is literal reference data,
// built once at package init and never mutated. [LookupSolutions] drops
// unknown identifiers, keeps input order, and does not deduplicate.
//
// # Reports
//
// [Report], [MockReports], [MockAnalyzer] and [BuildCommunityMap] support the
// report flow and community views. Timestamps and the mock analysis delay use
// a package clock that tests replace with [SetClock].
package domain
