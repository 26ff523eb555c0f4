package routing

// Crime weighting constants shared by the canonical policies.
const (
	// neutralCrimeCount stands in for stations absent from the crime map.
	// Absence means "typical", not "safe".
	neutralCrimeCount = 5
	// crimeCap clamps per-station incident counts before weighting.
	crimeCap = 20

	safeTransferPenalty = 5.0
	fastTransferPenalty = 8.0
)

// Policy is a named, exhaustively testable weight policy. The three
// canonical policies are constructed from a crime snapshot; arbitrary
// closures remain pluggable through CustomPolicy.
type Policy struct {
	name string
	fn   WeightFunc
}

// Name returns the policy's route label (e.g. "SafeRoute").
func (p Policy) Name() string { return p.name }

// Weight prices a single edge under this policy.
func (p Policy) Weight(ctx WeightContext) float64 { return p.fn(ctx) }

// Func returns the policy's weight function.
func (p Policy) Func() WeightFunc { return p.fn }

// clampedCrime looks up the incident count at a station, defaulting missing
// stations to the neutral baseline and clamping to the cap.
func clampedCrime(crime map[string]int, station string) float64 {
	c, ok := crime[station]
	if !ok {
		c = neutralCrimeCount
	}
	if c > crimeCap {
		c = crimeCap
	}
	return float64(c)
}

// SafePolicy scales travel time by crime at the edge's destination station
// (0 incidents = 1x, 20+ = 3x) and adds a flat 5-minute transfer penalty:
// transfers stay undesirable even when optimizing for safety.
func SafePolicy(crime map[string]int) Policy {
	return Policy{
		name: "SafeRoute",
		fn: func(ctx WeightContext) float64 {
			w := float64(ctx.TravelTime) * (1.0 + clampedCrime(crime, ctx.ToStation)/10.0)
			if ctx.IsTransfer {
				w += safeTransferPenalty
			}
			return w
		},
	}
}

// FastPolicy prices edges by travel time plus an 8-minute transfer penalty
// (platform walk plus average wait for the next train). The penalty is
// deliberately higher than SafePolicy's so the fast route prefers fewer
// transfers, not just less ride time.
func FastPolicy() Policy {
	return Policy{
		name: "FastRoute",
		fn: func(ctx WeightContext) float64 {
			w := float64(ctx.TravelTime)
			if ctx.IsTransfer {
				w += fastTransferPenalty
			}
			return w
		},
	}
}

// BalancedPolicy blends 50% travel time, 35% crime avoidance and 15%
// transfer avoidance.
func BalancedPolicy(crime map[string]int) Policy {
	return Policy{
		name: "BalancedRoute",
		fn: func(ctx WeightContext) float64 {
			crimeCost := clampedCrime(crime, ctx.ToStation) * 0.5
			transferCost := 0.0
			if ctx.IsTransfer {
				transferCost = 6.0
			}
			return float64(ctx.TravelTime)*0.5 + crimeCost*0.35 + transferCost*0.15
		},
	}
}

// CustomPolicy wraps an arbitrary weight function under a caller-chosen name.
func CustomPolicy(name string, fn WeightFunc) Policy {
	return Policy{name: name, fn: fn}
}

// TimeOnlyWeight prices edges by raw travel time. Used when FindPath is
// given a nil weight function.
func TimeOnlyWeight(ctx WeightContext) float64 {
	return float64(ctx.TravelTime)
}
