package routing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const meterName = "github.com/NomadNome/smartroute/internal/routing"

// SynthesizerConfig holds configuration for the route synthesizer.
type SynthesizerConfig struct {
	// Engine runs the underlying shortest-path searches. Required.
	Engine *Engine

	// CrimeData maps station name to incident count. May be nil; stations
	// absent from the map weight as the neutral baseline.
	CrimeData map[string]int

	// MaxTransfers caps transfers per search. Zero applies DefaultMaxTransfers.
	MaxTransfers int

	// Logger for synthesis diagnostics.
	Logger zerolog.Logger

	// Tracer for synthesis spans. Defaults to the global tracer.
	Tracer trace.Tracer
}

// Synthesizer produces up to three named routes (SafeRoute, FastRoute,
// BalancedRoute) between one origin/destination pair, each from a separate
// weighted search over the shared graph. The crime snapshot is swapped
// whole on refresh so in-flight searches never observe a partial update.
type Synthesizer struct {
	engine       *Engine
	maxTransfers int
	logger       zerolog.Logger
	tracer       trace.Tracer

	routesTotal    metric.Int64Counter
	searchFailures metric.Int64Counter

	mu        sync.RWMutex
	crimeData map[string]int
}

// NewSynthesizer creates a route synthesizer.
func NewSynthesizer(cfg SynthesizerConfig) (*Synthesizer, error) {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(meterName)
	}
	maxTransfers := cfg.MaxTransfers
	if maxTransfers <= 0 {
		maxTransfers = DefaultMaxTransfers
	}

	meter := otel.Meter(meterName)
	routesTotal, err := meter.Int64Counter(
		"smartroute.routes.generated.total",
		metric.WithDescription("Total number of routes generated"),
		metric.WithUnit("{route}"),
	)
	if err != nil {
		return nil, err
	}
	searchFailures, err := meter.Int64Counter(
		"smartroute.searches.failed.total",
		metric.WithDescription("Total number of failed route searches"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, err
	}

	return &Synthesizer{
		engine:         cfg.Engine,
		maxTransfers:   maxTransfers,
		logger:         cfg.Logger,
		tracer:         tracer,
		routesTotal:    routesTotal,
		searchFailures: searchFailures,
		crimeData:      copyCrimeMap(cfg.CrimeData),
	}, nil
}

// GenerateRoutes runs the three canonical searches between origin and
// destination. Each search may fail independently; the returned slice holds
// whatever subset succeeded, in Safe/Fast/Balanced order. Only total
// failure surfaces as an error (ErrNoRoutes), unless the stations are
// unknown, which fails fast with ErrStationNotFound.
func (s *Synthesizer) GenerateRoutes(ctx context.Context, origin, dest string) ([]*Route, error) {
	ctx, span := s.tracer.Start(ctx, "routing.GenerateRoutes",
		trace.WithAttributes(
			attribute.String("route.origin", origin),
			attribute.String("route.destination", dest),
		))
	defer span.End()

	invocationID := uuid.NewString()
	log := s.logger.With().
		Str("invocation_id", invocationID).
		Str("origin", origin).
		Str("destination", dest).
		Logger()

	crime := s.crimeSnapshot()
	policies := []Policy{
		SafePolicy(crime),
		FastPolicy(),
		BalancedPolicy(crime),
	}

	var routes []*Route
	var firstErr error
	for _, policy := range policies {
		route, err := s.engine.FindPath(ctx, origin, dest, policy.Func(), s.maxTransfers)
		if err != nil {
			s.searchFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("route.policy", policy.Name())))
			log.Warn().Err(err).
				Str("policy", policy.Name()).
				Msg("route search failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		route.Name = policy.Name()
		routes = append(routes, route)
		s.routesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("route.policy", policy.Name())))
		log.Info().
			Str("policy", policy.Name()).
			Int("stops", route.TotalStops).
			Int("transfers", route.TotalTransfers).
			Int("minutes", route.TotalTimeMinutes).
			Msg("route generated")
	}

	if len(routes) == 0 {
		// Unknown stations fail every search identically; surface that
		// cause rather than the generic no-routes signal.
		if errors.Is(firstErr, ErrStationNotFound) {
			return nil, firstErr
		}
		return nil, fmt.Errorf("%s to %s: %w", origin, dest, ErrNoRoutes)
	}

	span.SetAttributes(attribute.Int("route.count", len(routes)))
	return routes, nil
}

// UpdateCrimeData replaces the crime snapshot. The incoming map is copied;
// searches already running keep their old snapshot.
func (s *Synthesizer) UpdateCrimeData(crime map[string]int) {
	snapshot := copyCrimeMap(crime)
	s.mu.Lock()
	s.crimeData = snapshot
	s.mu.Unlock()
	s.logger.Info().Int("stations", len(snapshot)).Msg("crime data updated")
}

// crimeSnapshot returns the current crime map. Snapshots are never mutated
// after publication, so handing out the shared reference is safe.
func (s *Synthesizer) crimeSnapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.crimeData
}

// RankByCriterion returns the routes re-ordered for display: "safe" by
// summed crime at visited stations, "fast" by total time, "balanced" by
// transfer count, all ascending. Unknown criteria return the input order.
// Pure reordering; nothing is recomputed.
func (s *Synthesizer) RankByCriterion(routes []*Route, criterion Criterion) []*Route {
	ranked := make([]*Route, len(routes))
	copy(ranked, routes)

	switch criterion {
	case CriterionSafe:
		crime := s.crimeSnapshot()
		sort.SliceStable(ranked, func(i, j int) bool {
			return routeCrimeSum(ranked[i], crime) < routeCrimeSum(ranked[j], crime)
		})
	case CriterionFast:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalTimeMinutes < ranked[j].TotalTimeMinutes
		})
	case CriterionBalanced:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalTransfers < ranked[j].TotalTransfers
		})
	}

	return ranked
}

func routeCrimeSum(r *Route, crime map[string]int) int {
	total := 0
	for _, station := range r.Stations {
		if c, ok := crime[station]; ok {
			total += c
		} else {
			total += neutralCrimeCount
		}
	}
	return total
}

func copyCrimeMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
