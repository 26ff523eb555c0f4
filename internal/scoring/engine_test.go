package scoring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NomadNome/smartroute/internal/routing"
	"github.com/NomadNome/smartroute/internal/scoring"
)

// twentyStations builds a crime map with distinct counts 1..20, so the
// distribution's percentiles are easy to reason about.
func twentyStations() map[string]int {
	crime := make(map[string]int, 20)
	for i := 1; i <= 20; i++ {
		crime[fmt.Sprintf("Station %02d", i)] = i
	}
	return crime
}

func TestEngine_CrimeBaseline(t *testing.T) {
	crime := map[string]int{
		"S1": 1, "S2": 2, "S3": 3, "S4": 4,
		"S5": 5, "S6": 6, "S7": 7, "S8": 8,
	}
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: crime})

	b := e.CrimeBaseline()
	assert.InDelta(t, 4.5, b.Mean, 1e-9)
	assert.InDelta(t, 4.5, b.Median, 1e-9)
	assert.InDelta(t, 1.0, b.Min, 1e-9)
	assert.InDelta(t, 8.0, b.Max, 1e-9)
	// Nearest-rank percentiles on the sorted list.
	assert.InDelta(t, 3.0, b.P25, 1e-9)
	assert.InDelta(t, 5.0, b.P50, 1e-9)
	assert.InDelta(t, 7.0, b.P75, 1e-9)
	assert.InDelta(t, 2.29128, b.StdDev, 1e-4)
}

func TestEngine_EmptyDataUsesNeutralBaselines(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{})

	crime := e.CrimeBaseline()
	assert.Equal(t, 5.0, crime.Mean)
	assert.Equal(t, 3.0, crime.P25)
	assert.Equal(t, 8.0, crime.P75)

	rel := e.ReliabilityBaseline()
	assert.Equal(t, 85.0, rel.Mean)
	assert.Equal(t, 77.0, rel.Min)
	assert.Equal(t, 92.0, rel.Max)
}

func TestEngine_SafetyScore_P75LandsInUpperBand(t *testing.T) {
	crime := twentyStations()
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: crime})

	// p75 of 1..20 by nearest rank is sorted[15] = 16. A route averaging
	// exactly 16 must land in the 8-9 band.
	score := e.SafetyScore([]string{"Station 16"})
	assert.GreaterOrEqual(t, score, 8)
	assert.LessOrEqual(t, score, 9)
}

func TestEngine_SafetyScore_MedianAverage(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: twentyStations()})

	// Average = baseline mean (10.5) for an unmapped station: ten of the
	// twenty values sit strictly below, so the percentile is 50.
	score := e.SafetyScore([]string{"Somewhere Unmapped"})
	assert.Equal(t, 6, score)
}

func TestEngine_SafetyScore_ExtremesOfTheDistribution(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: twentyStations()})

	// Nothing sits below the minimum-crime station: percentile 0.
	assert.Equal(t, 2, e.SafetyScore([]string{"Station 01"}))

	// All but the maximum sit below the worst station: percentile 95.
	assert.Equal(t, 10, e.SafetyScore([]string{"Station 20"}))
}

func TestEngine_SafetyScore_EmptyInputs(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: twentyStations()})
	assert.Equal(t, 5, e.SafetyScore(nil))

	// No crime data at all: neutral-baseline comparison.
	empty := scoring.NewEngine(scoring.EngineConfig{})
	assert.Equal(t, 6, empty.SafetyScore([]string{"Anywhere"}))
}

func TestEngine_ReliabilityScore(t *testing.T) {
	perf := map[string]float64{"A": 90, "B": 80, "C": 70, "D": 60}
	e := scoring.NewEngine(scoring.EngineConfig{LinePerformance: perf})

	// Line A's 90% beats three of four lines: percentile 75, band 8-9.
	assert.Equal(t, 8, e.ReliabilityScore([]string{"A"}))

	// Line D's 60% beats nothing: percentile 0.
	assert.Equal(t, 2, e.ReliabilityScore([]string{"D"}))

	// Unknown line counts as the baseline mean (75): two lines below.
	assert.Equal(t, 6, e.ReliabilityScore([]string{"Z"}))

	assert.Equal(t, 5, e.ReliabilityScore(nil))
}

func TestEngine_EfficiencyScore_FormulaIsContract(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{})

	cases := []struct {
		transfers int
		want      int
	}{
		{0, 10},
		{1, 9}, // 8.5 rounds up
		{2, 7},
		{3, 6}, // 5.5 rounds up
		{4, 4}, // diverges from the coarse "0-3 for 4+" tier table
		{5, 3},
		{6, 1},
		{7, 0},
		{100, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.EfficiencyScore(tc.transfers), "transfers=%d", tc.transfers)
	}
}

func TestEngine_CalculateRouteScores(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{
		CrimeData:       twentyStations(),
		LinePerformance: map[string]float64{"A": 90, "B": 80, "C": 70, "D": 60},
	})

	route := &routing.Route{
		Stations:       []string{"Station 01", "Station 03"},
		Lines:          []string{"A"},
		TotalTransfers: 1,
	}
	scores := e.CalculateRouteScores(route)

	for _, s := range []int{scores.Safety, scores.Reliability, scores.Efficiency} {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 10)
	}
	assert.Equal(t, 9, scores.Efficiency)
	assert.Equal(t, 8, scores.Reliability)
}

func TestEngine_UpdateCrimeData_RecomputesBaseline(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{CrimeData: map[string]int{"A": 2, "B": 4}})
	require.InDelta(t, 3.0, e.CrimeBaseline().Mean, 1e-9)

	e.UpdateCrimeData(map[string]int{"A": 10, "B": 20, "C": 30})
	assert.InDelta(t, 20.0, e.CrimeBaseline().Mean, 1e-9)

	// Clearing the data falls back to the neutral baseline.
	e.UpdateCrimeData(nil)
	assert.Equal(t, 5.0, e.CrimeBaseline().Mean)
}

func TestEngine_UpdateLinePerformance_RecomputesBaseline(t *testing.T) {
	e := scoring.NewEngine(scoring.EngineConfig{})
	require.Equal(t, 85.0, e.ReliabilityBaseline().Mean)

	e.UpdateLinePerformance(map[string]float64{"A": 60, "B": 80})
	assert.InDelta(t, 70.0, e.ReliabilityBaseline().Mean, 1e-9)
}

func TestInterpret(t *testing.T) {
	assert.Equal(t, "Very safe", scoring.Interpret(scoring.KindSafety, 9))
	assert.Equal(t, "Avoid if possible", scoring.Interpret(scoring.KindSafety, 1))
	assert.Equal(t, "Average (85-90% on-time)", scoring.Interpret(scoring.KindReliability, 5))
	assert.Equal(t, "Direct (0 transfers)", scoring.Interpret(scoring.KindEfficiency, 10))
	assert.Equal(t, "Many transfers (4+)", scoring.Interpret(scoring.KindEfficiency, 2))
	assert.Equal(t, "Unknown score type", scoring.Interpret("bogus", 5))
}
