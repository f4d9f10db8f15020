package partner

import "logistics/internal/core/domain/model/kernel"

// AxisScores holds the per-axis normalised scores of one candidate. Each
// axis is scaled to [0, 100] across the candidate set.
type AxisScores struct {
	Cost        float64
	Speed       float64
	Reliability float64
}

// Option is one partner's priced, scored candidacy for a specific shipment.
// Options are computed fresh per selection request and never persisted; only
// the chosen partner's identity lands on the shipment.
type Option struct {
	PartnerID   kernel.UUID
	PartnerCode string
	PartnerName string

	// Rate is the total quoted charge for this shipment, freight plus COD fee.
	Rate float64

	// EstimatedTATDays is the quoted transit time in days.
	EstimatedTATDays int

	// ReliabilityScore is the trailing performance metric on a 0 to 100 scale.
	ReliabilityScore float64

	Scores     AxisScores
	FinalScore float64
}

// SelectionResult is the outcome of one partner selection run. Recommended is
// nil when no partner services the route, which is a normal business outcome
// rather than an error. Alternatives hold the remaining candidates sorted by
// descending final score.
type SelectionResult struct {
	Recommended  *Option
	Alternatives []Option
}
