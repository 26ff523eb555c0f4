// Package subway models the NYC subway network as an immutable graph of
// (station, line) nodes. The graph is built once at startup from the static
// topology tables and is safe for concurrent reads.
package subway

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

const (
	// baseHopMinutes is the default travel time between consecutive stops.
	baseHopMinutes = 2
	// expressHopMinutes applies at periodic interior positions, a simple
	// stand-in for express-style longer jumps. Not schedule data.
	expressHopMinutes = 3
)

// Adjacency is a single outgoing edge from a (station, line) node.
type Adjacency struct {
	Station    string
	Line       string
	Minutes    int
	IsTransfer bool
}

// StationInfo summarizes a station for display and hub-aware policies.
type StationInfo struct {
	Name       string
	Lines      []string
	NumLines   int
	IsMajorHub bool
	HubTier    int
}

// GraphConfig holds construction inputs for the graph. Zero-value fields
// fall back to the package's static topology tables.
type GraphConfig struct {
	// Lines maps line code to ordered station list.
	Lines map[string][]string

	// Transfers maps (station, line) nodes to declared walking transfers.
	Transfers map[NodeID][]TransferEdge

	// Logger for construction diagnostics.
	Logger zerolog.Logger
}

// Graph is the immutable subway network. All lookup methods are read-only
// and safe for concurrent use.
type Graph struct {
	adjacency map[NodeID][]Adjacency
	linesAt   map[string][]string
	stations  []string
	logger    zerolog.Logger
}

// NewGraph builds and validates the subway graph. Consecutive stations on a
// line get bidirectional ride edges; declared transfers get one-directional
// walking edges. A transfer that names an unknown node or a non-positive
// walk time fails construction: a broken table would otherwise produce
// silently wrong routes, not errors.
func NewGraph(cfg GraphConfig) (*Graph, error) {
	lines := cfg.Lines
	if lines == nil {
		lines = Lines
	}
	transfers := cfg.Transfers
	if transfers == nil {
		transfers = TransferPoints
	}

	g := &Graph{
		adjacency: make(map[NodeID][]Adjacency),
		linesAt:   make(map[string][]string),
		logger:    cfg.Logger,
	}

	for line, stations := range lines {
		if len(stations) < 2 {
			return nil, fmt.Errorf("line %s has %d stations, need at least 2", line, len(stations))
		}
		for i := 0; i < len(stations)-1; i++ {
			minutes := baseHopMinutes
			if i > 0 && i < len(stations)-2 && i%3 == 0 {
				minutes = expressHopMinutes
			}
			g.addEdge(NodeID{stations[i], line}, Adjacency{stations[i+1], line, minutes, false})
			g.addEdge(NodeID{stations[i+1], line}, Adjacency{stations[i], line, minutes, false})
		}
	}

	// Node set is fixed by the line tables; transfers may only connect
	// nodes that already exist.
	for from, edges := range transfers {
		if _, ok := g.adjacency[from]; !ok {
			return nil, fmt.Errorf("transfer source %s/%s is not on any line", from.Station, from.Line)
		}
		for _, e := range edges {
			to := NodeID{e.ToStation, e.ToLine}
			if _, ok := g.adjacency[to]; !ok {
				return nil, fmt.Errorf("transfer %s/%s -> %s/%s targets unknown node",
					from.Station, from.Line, e.ToStation, e.ToLine)
			}
			if e.WalkMinutes <= 0 {
				return nil, fmt.Errorf("transfer %s/%s -> %s/%s has non-positive walk time %d",
					from.Station, from.Line, e.ToStation, e.ToLine, e.WalkMinutes)
			}
			g.addEdge(from, Adjacency{e.ToStation, e.ToLine, e.WalkMinutes, from.Line != e.ToLine})
		}
	}

	g.buildStationIndex()

	g.logger.Info().
		Int("stations", len(g.stations)).
		Int("nodes", len(g.adjacency)).
		Msg("subway graph built")

	return g, nil
}

func (g *Graph) addEdge(from NodeID, adj Adjacency) {
	g.adjacency[from] = append(g.adjacency[from], adj)
}

// buildStationIndex precomputes the sorted station list and per-station
// line sets. Every search consults LinesAt, so this is cached up front.
func (g *Graph) buildStationIndex() {
	lineSet := make(map[string]map[string]struct{})
	for node := range g.adjacency {
		if lineSet[node.Station] == nil {
			lineSet[node.Station] = make(map[string]struct{})
		}
		lineSet[node.Station][node.Line] = struct{}{}
	}

	g.stations = make([]string, 0, len(lineSet))
	for station, set := range lineSet {
		g.stations = append(g.stations, station)
		lines := make([]string, 0, len(set))
		for line := range set {
			lines = append(lines, line)
		}
		sort.Strings(lines)
		g.linesAt[station] = lines
	}
	sort.Strings(g.stations)
}

// Neighbors returns the outgoing edges from a (station, line) node. Unknown
// nodes return an empty slice: terminal nodes legitimately have no onward
// edges, so absence is not an error.
func (g *Graph) Neighbors(station, line string) []Adjacency {
	return g.adjacency[NodeID{station, line}]
}

// LinesAt returns the sorted line codes serving a station, or an empty
// slice for unknown stations.
func (g *Graph) LinesAt(station string) []string {
	return g.linesAt[station]
}

// StationExists reports whether a station appears anywhere in the network.
func (g *Graph) StationExists(name string) bool {
	_, ok := g.linesAt[name]
	return ok
}

// Stations returns all station names in sorted order.
func (g *Graph) Stations() []string {
	return g.stations
}

// Info returns metadata for a station, or nil if it is unknown.
// A station served by four or more lines counts as a major hub.
func (g *Graph) Info(name string) *StationInfo {
	lines, ok := g.linesAt[name]
	if !ok {
		return nil
	}
	tier, ok := HubQuality[name]
	if !ok {
		tier = 2
	}
	return &StationInfo{
		Name:       name,
		Lines:      lines,
		NumLines:   len(lines),
		IsMajorHub: len(lines) >= 4,
		HubTier:    tier,
	}
}

// CommonLines returns the sorted lines serving both stations.
func (g *Graph) CommonLines(a, b string) []string {
	setB := make(map[string]struct{}, len(g.linesAt[b]))
	for _, line := range g.linesAt[b] {
		setB[line] = struct{}{}
	}
	var common []string
	for _, line := range g.linesAt[a] {
		if _, ok := setB[line]; ok {
			common = append(common, line)
		}
	}
	return common
}

// LineInfo returns metadata for a line code.
func (g *Graph) LineInfo(code string) (LineDetail, bool) {
	d, ok := LinePerformance[code]
	return d, ok
}
