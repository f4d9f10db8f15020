package services

import (
	"sort"

	"logistics/internal/core/domain/model/partner"
	"logistics/internal/pkg/errs"
)

// SelectionWeights are the relative importance of each scoring axis. They are
// used as linear coefficients and need not sum to one; callers are
// responsible for meaningful scale.
type SelectionWeights struct {
	Cost        float64
	Speed       float64
	Reliability float64
}

// DefaultSelectionWeights favour cost, then speed, then reliability.
func DefaultSelectionWeights() SelectionWeights {
	return SelectionWeights{Cost: 0.5, Speed: 0.3, Reliability: 0.2}
}

// Validate rejects negative axis weights.
func (w SelectionWeights) Validate() error {
	if w.Cost < 0 || w.Speed < 0 || w.Reliability < 0 {
		return errs.NewValueIsInvalidError("selectionWeights")
	}
	return nil
}

// PartnerSelector is a pure domain service ranking serviceable partners for a
// shipment. It quotes every candidate, normalises cost and speed across the
// candidate set with min-max scaling, and combines the axes with the caller's
// weights.
//
// The selector performs no I/O: serviceability entries are fetched by the
// caller and passed in, so selection stays deterministic and unit-testable.
// An empty candidate set is a normal business outcome and yields a result
// with a nil recommendation, not an error.
type PartnerSelector struct {
	rates RateCalculator
}

// NewPartnerSelector creates a new PartnerSelector instance.
func NewPartnerSelector() PartnerSelector {
	return PartnerSelector{rates: NewRateCalculator()}
}

// Select ranks the given serviceability entries for a shipment of the given
// chargeable weight. COD shipments drop candidates that do not support COD or
// whose COD ceiling is below the collectable amount.
//
// Ties on final score break deterministically: lower rate first, then lower
// transit time, then partner code.
func (s PartnerSelector) Select(
	entries []partner.ServiceabilityEntry,
	weightKg float64,
	isCOD bool,
	codAmount float64,
	weights SelectionWeights,
) (partner.SelectionResult, error) {
	if weightKg <= 0 {
		return partner.SelectionResult{}, errs.NewValueIsInvalidError("weightKg")
	}
	if codAmount < 0 {
		return partner.SelectionResult{}, errs.NewValueIsInvalidError("codAmount")
	}
	if err := weights.Validate(); err != nil {
		return partner.SelectionResult{}, err
	}

	options := make([]partner.Option, 0, len(entries))
	for _, entry := range entries {
		if isCOD && (!entry.SupportsCOD || (entry.MaxCODAmount > 0 && codAmount > entry.MaxCODAmount)) {
			continue
		}

		rate, err := s.rates.Quote(entry, weightKg, isCOD, codAmount)
		if err != nil {
			return partner.SelectionResult{}, err
		}

		options = append(options, partner.Option{
			PartnerID:        entry.TransporterID,
			PartnerCode:      entry.PartnerCode,
			PartnerName:      entry.PartnerName,
			Rate:             rate,
			EstimatedTATDays: entry.TATDays,
			ReliabilityScore: entry.Reliability,
		})
	}

	if len(options) == 0 {
		return partner.SelectionResult{Recommended: nil, Alternatives: []partner.Option{}}, nil
	}

	score(options, weights)

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].FinalScore != options[j].FinalScore {
			return options[i].FinalScore > options[j].FinalScore
		}
		if options[i].Rate != options[j].Rate {
			return options[i].Rate < options[j].Rate
		}
		if options[i].EstimatedTATDays != options[j].EstimatedTATDays {
			return options[i].EstimatedTATDays < options[j].EstimatedTATDays
		}
		return options[i].PartnerCode < options[j].PartnerCode
	})

	return partner.SelectionResult{
		Recommended:  &options[0],
		Alternatives: options[1:],
	}, nil
}

// score fills in the normalised axis scores and the weighted final score for
// every option in place.
func score(options []partner.Option, weights SelectionWeights) {
	minRate, maxRate := options[0].Rate, options[0].Rate
	minTAT, maxTAT := options[0].EstimatedTATDays, options[0].EstimatedTATDays
	for _, opt := range options[1:] {
		if opt.Rate < minRate {
			minRate = opt.Rate
		}
		if opt.Rate > maxRate {
			maxRate = opt.Rate
		}
		if opt.EstimatedTATDays < minTAT {
			minTAT = opt.EstimatedTATDays
		}
		if opt.EstimatedTATDays > maxTAT {
			maxTAT = opt.EstimatedTATDays
		}
	}

	rateRange := maxRate - minRate
	tatRange := float64(maxTAT - minTAT)

	for i := range options {
		// when an axis has zero spread every candidate scores 100 on it,
		// so no candidate is arbitrarily advantaged
		costScore := 100.0
		if rateRange > 0 {
			costScore = 100 * (1 - (options[i].Rate-minRate)/rateRange)
		}
		speedScore := 100.0
		if tatRange > 0 {
			speedScore = 100 * (1 - float64(options[i].EstimatedTATDays-minTAT)/tatRange)
		}

		options[i].Scores = partner.AxisScores{
			Cost:        costScore,
			Speed:       speedScore,
			Reliability: options[i].ReliabilityScore,
		}
		options[i].FinalScore = weights.Cost*costScore +
			weights.Speed*speedScore +
			weights.Reliability*options[i].ReliabilityScore
	}
}
