package scoring

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/NomadNome/smartroute/internal/routing"
)

// EngineConfig holds the reference datasets for the score engine.
type EngineConfig struct {
	// CrimeData maps station name to incident count.
	CrimeData map[string]int

	// LinePerformance maps line code to on-time percentage (0-100).
	LinePerformance map[string]float64

	// Logger for scoring diagnostics.
	Logger zerolog.Logger
}

// Engine scores routes against the network-wide crime and reliability
// distributions. Reference data is replaced whole on refresh; baselines are
// re-derived at that point.
type Engine struct {
	logger zerolog.Logger

	mu                  sync.RWMutex
	crimeData           map[string]int
	linePerformance     map[string]float64
	crimeBaseline       Baseline
	reliabilityBaseline Baseline
}

// NewEngine creates a score engine and derives the baselines from the
// supplied datasets. Nil datasets fall back to neutral baselines.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{logger: cfg.Logger}
	e.crimeData = copyIntMap(cfg.CrimeData)
	e.linePerformance = copyFloatMap(cfg.LinePerformance)
	e.recomputeBaselines()

	e.logger.Info().
		Float64("crime_baseline_mean", e.crimeBaseline.Mean).
		Float64("reliability_baseline_mean", e.reliabilityBaseline.Mean).
		Msg("score engine initialized")

	return e
}

// CalculateRouteScores computes all three scores for a route. Scores are
// always integers in [0,10]; missing data resolves to defined defaults
// before any arithmetic.
func (e *Engine) CalculateRouteScores(route *routing.Route) routing.RouteScores {
	return routing.RouteScores{
		Safety:      e.SafetyScore(route.Stations),
		Reliability: e.ReliabilityScore(route.Lines),
		Efficiency:  e.EfficiencyScore(route.TotalTransfers),
	}
}

// SafetyScore ranks the route's average crime count against the full crime
// distribution: the percentile is the share of known stations with strictly
// lower crime than the route average, mapped onto the five-tier scale. A
// route averaging exactly the p75 crime value therefore lands in the 8-9
// band. Stations missing from the data count as the baseline mean.
func (e *Engine) SafetyScore(stations []string) int {
	if len(stations) == 0 {
		return 5
	}

	e.mu.RLock()
	crimeData := e.crimeData
	baseline := e.crimeBaseline
	e.mu.RUnlock()

	var sum float64
	for _, station := range stations {
		if c, ok := crimeData[station]; ok {
			sum += float64(c)
		} else {
			sum += baseline.Mean
		}
	}
	avg := sum / float64(len(stations))

	var percentile float64
	if len(crimeData) > 0 {
		atOrAbove := 0
		for _, c := range crimeData {
			if float64(c) >= avg {
				atOrAbove++
			}
		}
		percentile = float64(len(crimeData)-atOrAbove) / float64(len(crimeData)) * 100
	} else if avg <= baseline.Mean {
		percentile = 50
	} else {
		percentile = 30
	}

	score := tierScore(percentile)
	e.logger.Debug().
		Int("stations", len(stations)).
		Float64("avg_crime", avg).
		Float64("percentile", percentile).
		Float64("score", score).
		Msg("safety score")

	return clampScore(score)
}

// ReliabilityScore ranks the route's average on-time percentage against the
// full line distribution: the percentile is the share of known lines with a
// strictly lower on-time percentage, so better lines score higher. Lines
// missing from the data count as the baseline mean.
func (e *Engine) ReliabilityScore(lines []string) int {
	if len(lines) == 0 {
		return 5
	}

	e.mu.RLock()
	perf := e.linePerformance
	baseline := e.reliabilityBaseline
	e.mu.RUnlock()

	var sum float64
	for _, line := range lines {
		if p, ok := perf[line]; ok {
			sum += p
		} else {
			sum += baseline.Mean
		}
	}
	avg := sum / float64(len(lines))

	var percentile float64
	if len(perf) > 0 {
		below := 0
		for _, p := range perf {
			if p < avg {
				below++
			}
		}
		percentile = float64(below) / float64(len(perf)) * 100
	} else if avg >= baseline.Mean {
		percentile = 50
	} else {
		percentile = 30
	}

	score := tierScore(percentile)
	e.logger.Debug().
		Int("lines", len(lines)).
		Float64("avg_on_time", avg).
		Float64("percentile", percentile).
		Float64("score", score).
		Msg("reliability score")

	return clampScore(score)
}

// EfficiencyScore is purely structural: 10 minus 1.5 per transfer, clamped
// to [0,10] and rounded. The linear formula is the contract; it diverges
// from the coarse tier table at 4 transfers (formula gives 4).
func (e *Engine) EfficiencyScore(transfers int) int {
	penalty := math.Min(float64(transfers)*1.5, 10)
	return clampScore(10 - penalty)
}

// UpdateCrimeData replaces the crime dataset and re-derives its baseline.
func (e *Engine) UpdateCrimeData(crime map[string]int) {
	snapshot := copyIntMap(crime)
	e.mu.Lock()
	e.crimeData = snapshot
	e.recomputeCrimeBaseline()
	e.mu.Unlock()
	e.logger.Info().Int("stations", len(snapshot)).Msg("crime data updated")
}

// UpdateLinePerformance replaces the reliability dataset and re-derives its
// baseline.
func (e *Engine) UpdateLinePerformance(perf map[string]float64) {
	snapshot := copyFloatMap(perf)
	e.mu.Lock()
	e.linePerformance = snapshot
	e.recomputeReliabilityBaseline()
	e.mu.Unlock()
	e.logger.Info().Int("lines", len(snapshot)).Msg("line performance updated")
}

// CrimeBaseline returns the current crime statistics.
func (e *Engine) CrimeBaseline() Baseline {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.crimeBaseline
}

// ReliabilityBaseline returns the current reliability statistics.
func (e *Engine) ReliabilityBaseline() Baseline {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reliabilityBaseline
}

func (e *Engine) recomputeBaselines() {
	e.recomputeCrimeBaseline()
	e.recomputeReliabilityBaseline()
}

func (e *Engine) recomputeCrimeBaseline() {
	values := make([]float64, 0, len(e.crimeData))
	for _, c := range e.crimeData {
		values = append(values, float64(c))
	}
	e.crimeBaseline = computeBaseline(values, neutralCrimeBaseline)
}

func (e *Engine) recomputeReliabilityBaseline() {
	values := make([]float64, 0, len(e.linePerformance))
	for _, p := range e.linePerformance {
		values = append(values, p)
	}
	e.reliabilityBaseline = computeBaseline(values, neutralReliabilityBaseline)
}

// tierScore maps a percentile onto the five-tier piecewise-linear 0-10
// scale shared by the safety and reliability scores.
func tierScore(percentile float64) float64 {
	switch {
	case percentile >= 90:
		return 10
	case percentile >= 75:
		return 8 + (percentile-75)/15
	case percentile >= 50:
		return 6 + (percentile-50)/25
	case percentile >= 25:
		return 4 + (percentile-25)/25
	default:
		return 2 + percentile/25
	}
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
