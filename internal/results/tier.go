// internal/results/tier.go
package results

// Tier buckets a pass percentage for color coding.
type Tier string

const (
	TierHigh    Tier = "high"
	TierGood    Tier = "good"
	TierWarning Tier = "warning"
	TierPoor    Tier = "poor"
)

// PerformanceTier classifies a percentage: >=80 high, >=60 good, >=40 warning, else poor.
func PerformanceTier(p float64) Tier {
	switch {
	case p >= 80:
		return TierHigh
	case p >= 60:
		return TierGood
	case p >= 40:
		return TierWarning
	default:
		return TierPoor
	}
}

// TableClass returns the Bootstrap contextual table class for the tier.
func (t Tier) TableClass() string {
	switch t {
	case TierHigh:
		return "table-success"
	case TierGood:
		return "table-primary"
	case TierWarning:
		return "table-warning"
	default:
		return "table-danger"
	}
}
