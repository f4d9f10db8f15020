package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/partner"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryWith(code string, baseRate float64, tatDays int, reliability float64) partner.ServiceabilityEntry {
	return partner.ServiceabilityEntry{
		TransporterID: kernel.NewUUID(),
		PartnerCode:   code,
		PartnerName:   code + " Logistics",
		BaseRate:      baseRate,
		RatePerKg:     0,
		SupportsCOD:   true,
		MaxCODAmount:  100000,
		TATDays:       tatDays,
		Reliability:   reliability,
	}
}

func TestPartnerSelector_Select(t *testing.T) {
	selector := services.NewPartnerSelector()
	weights := services.SelectionWeights{Cost: 0.5, Speed: 0.3, Reliability: 0.2}

	t.Run("cheaper but slower partner wins under cost-heavy weights", func(t *testing.T) {
		entries := []partner.ServiceabilityEntry{
			entryWith("AAA", 100, 2, 90),
			entryWith("BBB", 80, 4, 70),
		}

		result, err := selector.Select(entries, 1, false, 0, weights)

		require.NoError(t, err)
		require.NotNil(t, result.Recommended)
		assert.Equal(t, "BBB", result.Recommended.PartnerCode)
		assert.InDelta(t, 50.0, result.Recommended.FinalScore, 1e-9)

		require.Len(t, result.Alternatives, 1)
		assert.Equal(t, "AAA", result.Alternatives[0].PartnerCode)
		assert.InDelta(t, 48.0, result.Alternatives[0].FinalScore, 1e-9)

		// axis scores at the extremes of the min-max scale
		assert.InDelta(t, 0.0, result.Alternatives[0].Scores.Cost, 1e-9)
		assert.InDelta(t, 100.0, result.Alternatives[0].Scores.Speed, 1e-9)
		assert.InDelta(t, 100.0, result.Recommended.Scores.Cost, 1e-9)
		assert.InDelta(t, 0.0, result.Recommended.Scores.Speed, 1e-9)
	})

	t.Run("empty candidate set is a normal outcome", func(t *testing.T) {
		result, err := selector.Select(nil, 1, false, 0, weights)

		require.NoError(t, err)
		assert.Nil(t, result.Recommended)
		assert.NotNil(t, result.Alternatives)
		assert.Empty(t, result.Alternatives)
	})

	t.Run("single candidate scores 100 on every normalised axis", func(t *testing.T) {
		result, err := selector.Select(
			[]partner.ServiceabilityEntry{entryWith("AAA", 120, 3, 85)},
			1, false, 0, weights,
		)

		require.NoError(t, err)
		require.NotNil(t, result.Recommended)
		assert.InDelta(t, 100.0, result.Recommended.Scores.Cost, 1e-9)
		assert.InDelta(t, 100.0, result.Recommended.Scores.Speed, 1e-9)
		assert.InDelta(t, 85.0, result.Recommended.Scores.Reliability, 1e-9)
		assert.Empty(t, result.Alternatives)
	})

	t.Run("cod filter drops partners without cod support or with a low ceiling", func(t *testing.T) {
		noCOD := entryWith("AAA", 50, 2, 90)
		noCOD.SupportsCOD = false
		lowCeiling := entryWith("BBB", 60, 2, 90)
		lowCeiling.MaxCODAmount = 1000
		ok := entryWith("CCC", 70, 2, 90)

		result, err := selector.Select(
			[]partner.ServiceabilityEntry{noCOD, lowCeiling, ok},
			1, true, 5000, weights,
		)

		require.NoError(t, err)
		require.NotNil(t, result.Recommended)
		assert.Equal(t, "CCC", result.Recommended.PartnerCode)
		assert.Empty(t, result.Alternatives)
	})

	t.Run("ties break by rate then tat then partner code", func(t *testing.T) {
		// identical commercial terms, only the code differs
		entries := []partner.ServiceabilityEntry{
			entryWith("ZZZ", 100, 3, 80),
			entryWith("MMM", 100, 3, 80),
			entryWith("AAA", 100, 3, 80),
		}

		result, err := selector.Select(entries, 1, false, 0, weights)

		require.NoError(t, err)
		require.NotNil(t, result.Recommended)
		assert.Equal(t, "AAA", result.Recommended.PartnerCode)
		require.Len(t, result.Alternatives, 2)
		assert.Equal(t, "MMM", result.Alternatives[0].PartnerCode)
		assert.Equal(t, "ZZZ", result.Alternatives[1].PartnerCode)
	})

	t.Run("equal score with differing rate prefers the cheaper partner", func(t *testing.T) {
		// zero weights make every final score zero
		entries := []partner.ServiceabilityEntry{
			entryWith("AAA", 200, 2, 80),
			entryWith("BBB", 100, 4, 80),
		}

		result, err := selector.Select(entries, 1, false, 0, services.SelectionWeights{})

		require.NoError(t, err)
		require.NotNil(t, result.Recommended)
		assert.Equal(t, "BBB", result.Recommended.PartnerCode)
	})

	t.Run("selection is deterministic across runs", func(t *testing.T) {
		entries := []partner.ServiceabilityEntry{
			entryWith("AAA", 100, 2, 90),
			entryWith("BBB", 80, 4, 70),
			entryWith("CCC", 90, 3, 80),
		}

		first, err := selector.Select(entries, 1, false, 0, weights)
		require.NoError(t, err)
		second, err := selector.Select(entries, 1, false, 0, weights)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("score bounds hold for every candidate", func(t *testing.T) {
		entries := []partner.ServiceabilityEntry{
			entryWith("AAA", 100, 2, 90),
			entryWith("BBB", 80, 4, 70),
			entryWith("CCC", 95, 7, 55),
			entryWith("DDD", 130, 1, 99),
		}

		result, err := selector.Select(entries, 2.5, true, 1500, weights)
		require.NoError(t, err)
		require.NotNil(t, result.Recommended)

		all := append([]partner.Option{*result.Recommended}, result.Alternatives...)
		for _, opt := range all {
			assert.GreaterOrEqual(t, opt.Scores.Cost, 0.0)
			assert.LessOrEqual(t, opt.Scores.Cost, 100.0)
			assert.GreaterOrEqual(t, opt.Scores.Speed, 0.0)
			assert.LessOrEqual(t, opt.Scores.Speed, 100.0)
			assert.GreaterOrEqual(t, opt.Scores.Reliability, 0.0)
			assert.LessOrEqual(t, opt.Scores.Reliability, 100.0)
		}
		for _, alt := range result.Alternatives {
			assert.GreaterOrEqual(t, result.Recommended.FinalScore, alt.FinalScore)
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		entries := []partner.ServiceabilityEntry{entryWith("AAA", 100, 2, 90)}

		_, err := selector.Select(entries, 0, false, 0, weights)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = selector.Select(entries, 1, true, -1, weights)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = selector.Select(entries, 1, false, 0, services.SelectionWeights{Cost: -0.5})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
