// Package main provides routectl, a command-line front end for the
// SmartRoute routing core: it builds the subway graph, generates the three
// candidate routes between two stations, scores them, and prints the result
// as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/NomadNome/smartroute/internal/routing"
	"github.com/NomadNome/smartroute/internal/safety"
	"github.com/NomadNome/smartroute/internal/scoring"
	"github.com/NomadNome/smartroute/internal/subway"
	"github.com/NomadNome/smartroute/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "smartroute-routectl"

	origin := flag.String("origin", "", "origin station name")
	dest := flag.String("dest", "", "destination station name")
	criterion := flag.String("rank", "", "optional display ranking: safe, fast or balanced")
	crimeFile := flag.String("crime-file", "", "optional JSON file mapping station name to incident count")
	incidentsFile := flag.String("incidents-file", "", "optional JSON file of raw incident records to aggregate")
	maxTransfers := flag.Int("max-transfers", routing.DefaultMaxTransfers, "transfer ceiling per search")
	flag.Parse()

	log := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	if *origin == "" || *dest == "" {
		log.Fatal().Msg("both -origin and -dest are required")
	}

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting routectl")

	ctx := context.Background()

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        os.Getenv("OTEL_ENABLED") == "true",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	crimeData, err := loadCrimeData(*crimeFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", *crimeFile).Msg("failed to load crime data")
	}

	if *incidentsFile != "" {
		incidents, loadErr := loadIncidents(*incidentsFile)
		if loadErr != nil {
			log.Fatal().Err(loadErr).Str("path", *incidentsFile).Msg("failed to load incident records")
		}
		agg := safety.NewAggregator(safety.AggregatorConfig{Logger: log})
		snapshot := agg.Aggregate(time.Now(), incidents)
		for station, count := range snapshot.Counts {
			crimeData[station] += count
		}
	}

	graph, err := subway.NewGraph(subway.GraphConfig{Logger: log})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build subway graph")
	}

	engine := routing.NewEngine(routing.EngineConfig{Graph: graph, Logger: log})
	synth, err := routing.NewSynthesizer(routing.SynthesizerConfig{
		Engine:       engine,
		CrimeData:    crimeData,
		MaxTransfers: *maxTransfers,
		Logger:       log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize synthesizer")
	}

	scorer := scoring.NewEngine(scoring.EngineConfig{
		CrimeData:       crimeData,
		LinePerformance: subway.DefaultPerformanceMap(),
		Logger:          log,
	})

	routes, err := synth.GenerateRoutes(ctx, *origin, *dest)
	if err != nil {
		log.Fatal().Err(err).Msg("route generation failed")
	}

	for _, route := range routes {
		scores := scorer.CalculateRouteScores(route)
		route.Scores = &scores
	}

	if *criterion != "" {
		routes = synth.RankByCriterion(routes, routing.Criterion(*criterion))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(routes); err != nil {
		log.Fatal().Err(err).Msg("failed to encode routes")
	}
}

// loadCrimeData reads a station -> incident count map from a JSON file.
// An empty path yields an empty map; missing stations weight as neutral.
func loadCrimeData(path string) (map[string]int, error) {
	if path == "" {
		return map[string]int{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// loadIncidents reads raw incident records from a JSON array file.
func loadIncidents(path string) ([]safety.Incident, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var incidents []safety.Incident
	if err := json.Unmarshal(data, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}
