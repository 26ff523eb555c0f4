package scoring

// ScoreKind selects which scale Interpret describes.
type ScoreKind string

const (
	KindSafety      ScoreKind = "safety"
	KindReliability ScoreKind = "reliability"
	KindEfficiency  ScoreKind = "efficiency"
)

// Interpret returns a short human-readable label for a score. These are
// static display strings, not generated prose.
func Interpret(kind ScoreKind, score int) string {
	switch kind {
	case KindSafety:
		switch {
		case score >= 9:
			return "Very safe"
		case score >= 7:
			return "Safe"
		case score >= 5:
			return "Moderate"
		case score >= 3:
			return "Less safe"
		default:
			return "Avoid if possible"
		}
	case KindReliability:
		switch {
		case score >= 9:
			return "Excellent (95%+ on-time)"
		case score >= 7:
			return "Good (90-95% on-time)"
		case score >= 5:
			return "Average (85-90% on-time)"
		case score >= 3:
			return "Poor (75-85% on-time)"
		default:
			return "Very unreliable (<75%)"
		}
	case KindEfficiency:
		switch {
		case score >= 9:
			return "Direct (0 transfers)"
		case score >= 7:
			return "Very efficient (1 transfer)"
		case score >= 5:
			return "Efficient (2 transfers)"
		case score >= 3:
			return "Multiple transfers (3)"
		default:
			return "Many transfers (4+)"
		}
	}
	return "Unknown score type"
}
