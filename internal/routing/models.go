// Package routing computes subway routes over the (station, line) graph
// using Dijkstra searches with pluggable weight policies.
package routing

import "errors"

// Sentinel errors for routing operations. Search failures are ordinary
// return values, never panics.
var (
	// ErrStationNotFound indicates the origin or destination is not in the graph.
	ErrStationNotFound = errors.New("station not found in subway network")
	// ErrNoPath indicates no route satisfies the transfer ceiling on any starting line.
	ErrNoPath = errors.New("no path found between stations")
	// ErrNoRoutes indicates all three synthesized routes failed.
	ErrNoRoutes = errors.New("no routes could be generated")
)

// SegmentKind discriminates ride segments from transfer segments.
type SegmentKind string

const (
	SegmentRide     SegmentKind = "ride"
	SegmentTransfer SegmentKind = "transfer"
)

// Segment is one leg of a route's narrative: either a ride along a single
// line or a walking transfer between lines at a station.
type Segment struct {
	Kind SegmentKind `json:"kind"`

	// Ride fields.
	Line  string `json:"line,omitempty"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Stops int    `json:"stops,omitempty"`

	// Transfer fields.
	Station  string `json:"station,omitempty"`
	FromLine string `json:"from_line,omitempty"`
	ToLine   string `json:"to_line,omitempty"`

	TimeMinutes int `json:"time_minutes"`
}

// RouteScores holds the three 0-10 scores attached after scoring.
type RouteScores struct {
	Safety      int `json:"safety"`
	Reliability int `json:"reliability"`
	Efficiency  int `json:"efficiency"`
}

// edgeTraversal records one traversed edge so a finished route can be
// re-costed under any weight function without re-running the search.
type edgeTraversal struct {
	fromStation string
	toStation   string
	fromLine    string
	toLine      string
	travelTime  int
	isTransfer  bool
}

// Route is a finished route between two stations. Immutable once returned
// from a search, except for the Name label and Scores attached by callers.
type Route struct {
	Name string `json:"name,omitempty"`

	// Stations is the ordered station sequence. A transfer at a station
	// lists that station once per (station, line) node visited.
	Stations []string `json:"stations"`

	// Lines is the line sequence deduplicated to one entry per maximal
	// same-line run.
	Lines []string `json:"lines"`

	Segments []Segment `json:"segments"`

	// TotalTimeMinutes sums the raw per-edge travel times. Weight
	// functions steer path selection but never appear here.
	TotalTimeMinutes int `json:"total_time_minutes"`
	TotalTransfers   int `json:"total_transfers"`
	TotalStops       int `json:"total_stops"`

	Scores *RouteScores `json:"scores,omitempty"`

	edges []edgeTraversal
}

// CostUnder re-prices the route's traversed edges under an arbitrary weight
// function. Used to compare routes across policies.
func (r *Route) CostUnder(fn WeightFunc) float64 {
	var total float64
	for _, e := range r.edges {
		total += fn(WeightContext{
			FromStation: e.fromStation,
			ToStation:   e.toStation,
			FromLine:    e.fromLine,
			ToLine:      e.toLine,
			TravelTime:  e.travelTime,
			IsTransfer:  e.isTransfer,
		})
	}
	return total
}

// WeightContext carries the inputs to a weight function for a single edge.
type WeightContext struct {
	FromStation string
	ToStation   string
	FromLine    string
	ToLine      string
	TravelTime  int
	IsTransfer  bool
}

// WeightFunc prices a single edge. Implementations must be pure: no side
// effects, no state beyond closed-over reference data.
type WeightFunc func(WeightContext) float64

// Criterion selects a display ordering for RankByCriterion.
type Criterion string

const (
	CriterionSafe     Criterion = "safe"
	CriterionFast     Criterion = "fast"
	CriterionBalanced Criterion = "balanced"
)
