package routing

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NomadNome/smartroute/internal/subway"
)

// DefaultMaxTransfers is the transfer ceiling applied when callers pass a
// non-positive limit.
const DefaultMaxTransfers = 5

// rideMinutesPerStop is the per-stop estimate used when assembling ride
// segments. Segment times are an approximation independent of the searched
// edge weights, matching the reported narrative rather than the raw sums.
const rideMinutesPerStop = 2

// transferSegmentMinutes is the fixed time reported for a transfer segment.
const transferSegmentMinutes = 2

// EngineConfig holds configuration for the shortest-path engine.
type EngineConfig struct {
	// Graph is the immutable subway network to search. Required.
	Graph *subway.Graph

	// Logger for search diagnostics.
	Logger zerolog.Logger

	// Tracer for search spans. Defaults to the global tracer.
	Tracer trace.Tracer
}

// Engine runs Dijkstra searches over (station, line) nodes. It holds only
// read-only state and is safe for concurrent use.
type Engine struct {
	graph  *subway.Graph
	logger zerolog.Logger
	tracer trace.Tracer
}

// NewEngine creates a shortest-path engine over the given graph.
func NewEngine(cfg EngineConfig) *Engine {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("smartroute/routing")
	}
	return &Engine{
		graph:  cfg.Graph,
		logger: cfg.Logger,
		tracer: tracer,
	}
}

// FindPath finds the cheapest route between two stations under the given
// weight function. The search departs from a (station, line) node, so one
// Dijkstra run is made per line serving the origin and the globally
// cheapest terminal state wins. Equal-cost results resolve to fewer
// transfers, then the lexicographically smaller final line code.
//
// A nil weight function prices edges by raw travel time. maxTransfers <= 0
// applies DefaultMaxTransfers. The ceiling is a soft cap: a state past the
// cap is no longer expanded but already-reached paths stay valid.
//
// Failures are sentinel errors, never panics: ErrStationNotFound for
// unknown stations, ErrNoPath when the ceiling or topology blocks every
// starting line.
func (e *Engine) FindPath(ctx context.Context, origin, dest string, weight WeightFunc, maxTransfers int) (*Route, error) {
	_, span := e.tracer.Start(ctx, "routing.FindPath",
		trace.WithAttributes(
			attribute.String("route.origin", origin),
			attribute.String("route.destination", dest),
		))
	defer span.End()

	if weight == nil {
		weight = TimeOnlyWeight
	}
	if maxTransfers <= 0 {
		maxTransfers = DefaultMaxTransfers
	}

	if !e.graph.StationExists(origin) {
		return nil, fmt.Errorf("origin %q: %w", origin, ErrStationNotFound)
	}
	if !e.graph.StationExists(dest) {
		return nil, fmt.Errorf("destination %q: %w", dest, ErrStationNotFound)
	}

	if origin == dest {
		return &Route{
			Stations:   []string{origin},
			Lines:      []string{},
			Segments:   []Segment{},
			TotalStops: 1,
		}, nil
	}

	startLines := e.graph.LinesAt(origin)
	if len(startLines) == 0 {
		return nil, fmt.Errorf("no lines serve origin %q: %w", origin, ErrNoPath)
	}

	var best *searchResult
	for _, line := range startLines {
		res := e.dijkstra(subway.NodeID{Station: origin, Line: line}, dest, weight, maxTransfers)
		if res == nil {
			continue
		}
		if best == nil || res.betterThan(best) {
			best = res
		}
	}

	if best == nil {
		e.logger.Debug().
			Str("origin", origin).
			Str("destination", dest).
			Int("max_transfers", maxTransfers).
			Msg("no path found on any starting line")
		return nil, fmt.Errorf("%s to %s: %w", origin, dest, ErrNoPath)
	}

	route := assembleRoute(best)
	span.SetAttributes(
		attribute.Int("route.stops", route.TotalStops),
		attribute.Int("route.transfers", route.TotalTransfers),
		attribute.Int("route.minutes", route.TotalTimeMinutes),
	)
	e.logger.Debug().
		Str("origin", origin).
		Str("destination", dest).
		Int("stops", route.TotalStops).
		Int("transfers", route.TotalTransfers).
		Int("minutes", route.TotalTimeMinutes).
		Float64("weighted_cost", best.cost).
		Msg("path found")

	return route, nil
}

// predecessor links a settled node back to the node it was reached from.
type predecessor struct {
	from       subway.NodeID
	travelTime int
	isTransfer bool
}

// searchResult is the terminal state of one per-line Dijkstra run.
type searchResult struct {
	start     subway.NodeID
	end       subway.NodeID
	cost      float64
	transfers int
	prev      map[subway.NodeID]predecessor
}

// betterThan applies the cross-run selection rule: lower cost wins; ties
// resolve to fewer transfers, then the smaller final line code.
func (r *searchResult) betterThan(other *searchResult) bool {
	if r.cost != other.cost {
		return r.cost < other.cost
	}
	if r.transfers != other.transfers {
		return r.transfers < other.transfers
	}
	return r.end.Line < other.end.Line
}

// frontierItem is a priority-queue entry. transfers rides along with the
// path so the ceiling can prune expansion.
type frontierItem struct {
	cost      float64
	node      subway.NodeID
	transfers int
}

// frontier orders items by cost, breaking ties by transfer count then node
// identity so pop order is deterministic regardless of insertion order.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	if f[i].transfers != f[j].transfers {
		return f[i].transfers < f[j].transfers
	}
	if f[i].node.Line != f[j].node.Line {
		return f[i].node.Line < f[j].node.Line
	}
	return f[i].node.Station < f[j].node.Station
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// dijkstra runs a single-source search from one (station, line) node.
// Returns nil when the queue empties without settling the destination.
func (e *Engine) dijkstra(start subway.NodeID, dest string, weight WeightFunc, maxTransfers int) *searchResult {
	dist := map[subway.NodeID]float64{start: 0}
	prev := make(map[subway.NodeID]predecessor)
	settled := make(map[subway.NodeID]struct{})

	pq := &frontier{{cost: 0, node: start, transfers: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)

		if _, done := settled[item.node]; done {
			continue
		}
		settled[item.node] = struct{}{}

		// First settlement of the destination station on any line is the
		// cheapest terminal state, by Dijkstra's invariant.
		if item.node.Station == dest {
			return &searchResult{
				start:     start,
				end:       item.node,
				cost:      item.cost,
				transfers: item.transfers,
				prev:      prev,
			}
		}

		// Soft transfer cap: stop expanding, keep what's already reached.
		if item.transfers > maxTransfers {
			continue
		}

		for _, adj := range e.graph.Neighbors(item.node.Station, item.node.Line) {
			next := subway.NodeID{Station: adj.Station, Line: adj.Line}
			if _, done := settled[next]; done {
				continue
			}

			isTransfer := adj.Line != item.node.Line
			newCost := item.cost + weight(WeightContext{
				FromStation: item.node.Station,
				ToStation:   adj.Station,
				FromLine:    item.node.Line,
				ToLine:      adj.Line,
				TravelTime:  adj.Minutes,
				IsTransfer:  isTransfer,
			})

			// Strict improvement only; ties keep the existing predecessor.
			if current, seen := dist[next]; seen && newCost >= current {
				continue
			}
			dist[next] = newCost
			prev[next] = predecessor{from: item.node, travelTime: adj.Minutes, isTransfer: isTransfer}

			transfers := item.transfers
			if isTransfer {
				transfers++
			}
			heap.Push(pq, frontierItem{cost: newCost, node: next, transfers: transfers})
		}
	}

	return nil
}

// assembleRoute walks predecessor links backward from the settled
// destination, then emits the forward station/line sequences, the deduped
// line list, and ride/transfer segments.
func assembleRoute(res *searchResult) *Route {
	var stations []string
	var lines []string
	var edges []edgeTraversal
	totalTime := 0
	totalTransfers := 0

	current := res.end
	for {
		p, ok := res.prev[current]
		if !ok {
			break
		}
		stations = append([]string{current.Station}, stations...)
		lines = append([]string{current.Line}, lines...)
		edges = append([]edgeTraversal{{
			fromStation: p.from.Station,
			toStation:   current.Station,
			fromLine:    p.from.Line,
			toLine:      current.Line,
			travelTime:  p.travelTime,
			isTransfer:  p.isTransfer,
		}}, edges...)
		totalTime += p.travelTime
		if p.isTransfer {
			totalTransfers++
		}
		current = p.from
	}
	stations = append([]string{current.Station}, stations...)
	lines = append([]string{current.Line}, lines...)

	uniqueLines := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(uniqueLines) == 0 || uniqueLines[len(uniqueLines)-1] != line {
			uniqueLines = append(uniqueLines, line)
		}
	}

	return &Route{
		Stations:         stations,
		Lines:            uniqueLines,
		Segments:         buildSegments(stations, lines),
		TotalTimeMinutes: totalTime,
		TotalTransfers:   totalTransfers,
		TotalStops:       len(stations),
		edges:            edges,
	}
}

// buildSegments collapses maximal same-line runs into ride segments with a
// fixed 2-minute transfer segment at every line change. Ride times use the
// flat per-stop estimate, not the searched edge weights.
func buildSegments(stations, lines []string) []Segment {
	segments := []Segment{}
	if len(stations) == 0 {
		return segments
	}

	runStart := 0
	runLine := lines[0]

	for i := 1; i < len(stations); i++ {
		if lines[i] == runLine {
			continue
		}
		stops := i - 1 - runStart
		segments = append(segments, Segment{
			Kind:        SegmentRide,
			Line:        runLine,
			From:        stations[runStart],
			To:          stations[i-1],
			Stops:       stops,
			TimeMinutes: stops * rideMinutesPerStop,
		})
		segments = append(segments, Segment{
			Kind:        SegmentTransfer,
			Station:     stations[i],
			FromLine:    runLine,
			ToLine:      lines[i],
			TimeMinutes: transferSegmentMinutes,
		})
		runStart = i
		runLine = lines[i]
	}

	stops := len(stations) - 1 - runStart
	segments = append(segments, Segment{
		Kind:        SegmentRide,
		Line:        runLine,
		From:        stations[runStart],
		To:          stations[len(stations)-1],
		Stops:       stops,
		TimeMinutes: stops * rideMinutesPerStop,
	})

	return segments
}
