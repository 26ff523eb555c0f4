package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NomadNome/smartroute/internal/routing"
	"github.com/NomadNome/smartroute/internal/subway"
)

func newTestEngine(t *testing.T) *routing.Engine {
	t.Helper()
	g, err := subway.NewGraph(subway.GraphConfig{})
	require.NoError(t, err)
	return routing.NewEngine(routing.EngineConfig{Graph: g})
}

// chainGraph builds a three-line chain A-B (X), B-C (Y), C-D (Z) where
// reaching D from A needs two transfers.
func chainGraph(t *testing.T) *subway.Graph {
	t.Helper()
	g, err := subway.NewGraph(subway.GraphConfig{
		Lines: map[string][]string{
			"X": {"Alpha", "Beta"},
			"Y": {"Beta", "Gamma"},
			"Z": {"Gamma", "Delta"},
		},
		Transfers: map[subway.NodeID][]subway.TransferEdge{
			{Station: "Beta", Line: "X"}: {
				{ToStation: "Beta", ToLine: "Y", WalkMinutes: 1},
			},
			{Station: "Gamma", Line: "Y"}: {
				{ToStation: "Gamma", ToLine: "Z", WalkMinutes: 1},
			},
		},
	})
	require.NoError(t, err)
	return g
}

func TestEngine_FindPath_SameStation(t *testing.T) {
	e := newTestEngine(t)

	route, err := e.FindPath(context.Background(), "Canal Street", "Canal Street", nil, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Canal Street"}, route.Stations)
	assert.Empty(t, route.Lines)
	assert.Empty(t, route.Segments)
	assert.Equal(t, 0, route.TotalTimeMinutes)
	assert.Equal(t, 0, route.TotalTransfers)
	assert.Equal(t, 1, route.TotalStops)
}

func TestEngine_FindPath_UnknownStations(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.FindPath(ctx, "Nonexistent Station", "42nd Street-Times Square", nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrStationNotFound)

	_, err = e.FindPath(ctx, "42nd Street-Times Square", "Nonexistent Station", nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrStationNotFound)
}

func TestEngine_FindPath_AdjacentStations(t *testing.T) {
	e := newTestEngine(t)

	route, err := e.FindPath(context.Background(), "South Ferry", "Rector Street", nil, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"South Ferry", "Rector Street"}, route.Stations)
	assert.Equal(t, []string{"1"}, route.Lines)
	assert.Equal(t, 2, route.TotalTimeMinutes)
	assert.Equal(t, 0, route.TotalTransfers)
	assert.Equal(t, 2, route.TotalStops)

	require.Len(t, route.Segments, 1)
	seg := route.Segments[0]
	assert.Equal(t, routing.SegmentRide, seg.Kind)
	assert.Equal(t, "South Ferry", seg.From)
	assert.Equal(t, "Rector Street", seg.To)
	assert.Equal(t, 1, seg.Stops)
	assert.Equal(t, 2, seg.TimeMinutes)
}

func TestEngine_FindPath_PicksCheapestStartingLine(t *testing.T) {
	e := newTestEngine(t)

	// Times Square and Herald Square are adjacent on lines 1, 2 and 3, but
	// the line 1 hop sits at an express position and costs 3 minutes while
	// lines 2 and 3 cost 2. Equal-cost 2/3 resolves to the smaller code.
	route, err := e.FindPath(context.Background(),
		"42nd Street-Times Square", "34th Street-Herald Square", nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, route.TotalTimeMinutes)
	assert.Equal(t, 0, route.TotalTransfers)
	assert.Equal(t, []string{"2"}, route.Lines)
}

func TestEngine_FindPath_TransferCeiling(t *testing.T) {
	g := chainGraph(t)
	e := routing.NewEngine(routing.EngineConfig{Graph: g})
	ctx := context.Background()

	// Alpha to Delta needs two transfers; a ceiling of one blocks it.
	_, err := e.FindPath(ctx, "Alpha", "Delta", nil, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrNoPath)

	route, err := e.FindPath(ctx, "Alpha", "Delta", nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, route.TotalTransfers)
	assert.Equal(t, []string{"X", "Y", "Z"}, route.Lines)
	assert.Equal(t, []string{"Alpha", "Beta", "Beta", "Gamma", "Gamma", "Delta"}, route.Stations)
}

func TestEngine_FindPath_TransferSegments(t *testing.T) {
	g := chainGraph(t)
	e := routing.NewEngine(routing.EngineConfig{Graph: g})

	route, err := e.FindPath(context.Background(), "Alpha", "Gamma", nil, 0)
	require.NoError(t, err)

	// Ride X, walk to Y, ride Y.
	require.Len(t, route.Segments, 3)
	assert.Equal(t, routing.SegmentRide, route.Segments[0].Kind)
	assert.Equal(t, "X", route.Segments[0].Line)

	transfer := route.Segments[1]
	assert.Equal(t, routing.SegmentTransfer, transfer.Kind)
	assert.Equal(t, "Beta", transfer.Station)
	assert.Equal(t, "X", transfer.FromLine)
	assert.Equal(t, "Y", transfer.ToLine)
	assert.Equal(t, 2, transfer.TimeMinutes)

	assert.Equal(t, routing.SegmentRide, route.Segments[2].Kind)
	assert.Equal(t, "Y", route.Segments[2].Line)

	// Total time sums raw edge times (2 + 1 walk + 2), not segment estimates.
	assert.Equal(t, 5, route.TotalTimeMinutes)
	assert.Equal(t, 1, route.TotalTransfers)
}

func TestEngine_FindPath_WeightSteersSelection(t *testing.T) {
	// Two parallel lines between the same endpoints: P is direct but slow,
	// Q is two quick hops. Raw time favors Q; a weight that penalizes the
	// Q line flips the choice.
	g, err := subway.NewGraph(subway.GraphConfig{
		Lines: map[string][]string{
			"P": {"Start", "Mid1", "Mid2", "Mid3", "End"},
			"Q": {"Start", "End"},
		},
	})
	require.NoError(t, err)
	e := routing.NewEngine(routing.EngineConfig{Graph: g})
	ctx := context.Background()

	route, err := e.FindPath(ctx, "Start", "End", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q"}, route.Lines)

	avoidQ := func(ctx routing.WeightContext) float64 {
		w := float64(ctx.TravelTime)
		if ctx.ToLine == "Q" {
			w += 100
		}
		return w
	}
	route, err = e.FindPath(ctx, "Start", "End", avoidQ, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"P"}, route.Lines)

	// The reported time is still the raw travel time, untouched by the
	// steering weight.
	assert.Equal(t, route.CostUnder(routing.TimeOnlyWeight), float64(route.TotalTimeMinutes))
}

func TestEngine_FindPath_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	first, err := e.FindPath(ctx, "South Ferry", "Grand Central-42nd Street", nil, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.FindPath(ctx, "South Ferry", "Grand Central-42nd Street", nil, 0)
		require.NoError(t, err)
		assert.Equal(t, first.Stations, again.Stations)
		assert.Equal(t, first.Lines, again.Lines)
		assert.Equal(t, first.TotalTimeMinutes, again.TotalTimeMinutes)
	}
}
