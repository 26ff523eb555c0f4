// Package safety turns raw crime incident records into the per-station
// count snapshots consumed by the routing and scoring engines. Snapshots
// are fresh maps built per aggregation and never edited in place, so a
// snapshot handed to a search stays stable for that search's lifetime.
package safety

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultLookback is the rolling window over which incidents count.
const DefaultLookback = 7 * 24 * time.Hour

// Incident is one crime record attributed to a station.
type Incident struct {
	Station  string    `json:"station"`
	Occurred time.Time `json:"occurred"`
	// Count is the number of incidents this record represents; source rows
	// are often pre-aggregated per day.
	Count int `json:"count"`
}

// Snapshot is an immutable per-station incident tally.
type Snapshot struct {
	GeneratedAt time.Time
	Counts      map[string]int
}

// AggregatorConfig holds configuration for incident aggregation.
type AggregatorConfig struct {
	// Lookback is the rolling window; zero applies DefaultLookback.
	Lookback time.Duration

	// Logger for aggregation diagnostics.
	Logger zerolog.Logger
}

// Aggregator sums incident records into station counts over a rolling
// window.
type Aggregator struct {
	lookback time.Duration
	logger   zerolog.Logger
}

// NewAggregator creates an incident aggregator.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	lookback := cfg.Lookback
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Aggregator{lookback: lookback, logger: cfg.Logger}
}

// Aggregate sums the incidents that fall inside the lookback window ending
// at now. Records with a blank station or non-positive count are skipped.
func (a *Aggregator) Aggregate(now time.Time, incidents []Incident) *Snapshot {
	cutoff := now.Add(-a.lookback)
	counts := make(map[string]int)
	skipped := 0

	for _, inc := range incidents {
		if inc.Station == "" || inc.Count <= 0 {
			skipped++
			continue
		}
		if inc.Occurred.Before(cutoff) || inc.Occurred.After(now) {
			continue
		}
		counts[inc.Station] += inc.Count
	}

	a.logger.Info().
		Int("records", len(incidents)).
		Int("stations", len(counts)).
		Int("skipped", skipped).
		Msg("aggregated crime incidents")

	return &Snapshot{GeneratedAt: now, Counts: counts}
}
