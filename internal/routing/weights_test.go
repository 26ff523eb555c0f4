package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NomadNome/smartroute/internal/routing"
)

func TestSafePolicy_Formula(t *testing.T) {
	crime := map[string]int{
		"Quiet":   0,
		"Rough":   15,
		"Extreme": 50,
	}
	p := routing.SafePolicy(crime)
	assert.Equal(t, "SafeRoute", p.Name())

	// Zero crime: multiplier 1x.
	assert.InDelta(t, 2.0, p.Weight(routing.WeightContext{ToStation: "Quiet", TravelTime: 2}), 1e-9)

	// Missing station defaults to the neutral count of 5: multiplier 1.5x.
	assert.InDelta(t, 3.0, p.Weight(routing.WeightContext{ToStation: "Elsewhere", TravelTime: 2}), 1e-9)

	// 15 incidents: multiplier 2.5x.
	assert.InDelta(t, 5.0, p.Weight(routing.WeightContext{ToStation: "Rough", TravelTime: 2}), 1e-9)

	// Counts clamp at 20: multiplier caps at 3x.
	assert.InDelta(t, 6.0, p.Weight(routing.WeightContext{ToStation: "Extreme", TravelTime: 2}), 1e-9)

	// Flat +5 on transfers.
	assert.InDelta(t, 7.0, p.Weight(routing.WeightContext{ToStation: "Quiet", TravelTime: 2, IsTransfer: true}), 1e-9)
}

func TestFastPolicy_Formula(t *testing.T) {
	p := routing.FastPolicy()
	assert.Equal(t, "FastRoute", p.Name())

	assert.InDelta(t, 2.0, p.Weight(routing.WeightContext{TravelTime: 2}), 1e-9)

	// Transfer penalty is 8, deliberately above SafeRoute's 5.
	assert.InDelta(t, 10.0, p.Weight(routing.WeightContext{TravelTime: 2, IsTransfer: true}), 1e-9)
}

func TestBalancedPolicy_Formula(t *testing.T) {
	crime := map[string]int{"Rough": 15}
	p := routing.BalancedPolicy(crime)
	assert.Equal(t, "BalancedRoute", p.Name())

	// 0.5*2 + 0.35*(15*0.5) + 0.15*6
	assert.InDelta(t, 4.525, p.Weight(routing.WeightContext{ToStation: "Rough", TravelTime: 2, IsTransfer: true}), 1e-9)

	// No transfer, missing station (neutral 5): 0.5*2 + 0.35*2.5
	assert.InDelta(t, 1.875, p.Weight(routing.WeightContext{ToStation: "Elsewhere", TravelTime: 2}), 1e-9)
}

func TestCustomPolicy(t *testing.T) {
	p := routing.CustomPolicy("ScenicRoute", func(ctx routing.WeightContext) float64 {
		return 42
	})
	assert.Equal(t, "ScenicRoute", p.Name())
	assert.Equal(t, 42.0, p.Weight(routing.WeightContext{}))
}
