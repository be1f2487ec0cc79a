package riskrating

import (
	"testing"

	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDowngrade(t *testing.T) {
	t.Run("zero notches is the identity", func(t *testing.T) {
		for _, outcome := range ScorecardOrder {
			assert.Equal(t, outcome, Downgrade(outcome, 0))
		}
	})

	t.Run("negative notches never improve", func(t *testing.T) {
		assert.Equal(t, dtos.ScorecardYellow, Downgrade(dtos.ScorecardYellow, -3))
	})

	t.Run("is monotonically non-improving in notch count", func(t *testing.T) {
		for _, outcome := range ScorecardOrder {
			prev := scorecardIndex(Downgrade(outcome, 0))
			for notches := 1; notches <= 10; notches++ {
				cur := scorecardIndex(Downgrade(outcome, notches))
				assert.GreaterOrEqual(t, cur, prev)
				prev = cur
			}
		}
	})

	t.Run("red is absorbing", func(t *testing.T) {
		for notches := 0; notches <= 10; notches++ {
			assert.Equal(t, dtos.ScorecardRed, Downgrade(dtos.ScorecardRed, notches))
		}
	})

	t.Run("caps at red instead of failing", func(t *testing.T) {
		assert.Equal(t, dtos.ScorecardRed, Downgrade(dtos.ScorecardGreen, 100))
	})

	t.Run("unknown outcomes pass through unchanged", func(t *testing.T) {
		assert.Equal(t, dtos.ScorecardOutcome("Purple"), Downgrade("Purple", 3))
	})
}

func TestNormalizeTierLabel(t *testing.T) {
	cases := map[string]*dtos.ResidualTier{
		"High":      utils.Ptr(dtos.ResidualTierHigh),
		"HIGH":      utils.Ptr(dtos.ResidualTierHigh),
		" medium ":  utils.Ptr(dtos.ResidualTierMedium),
		"low":       utils.Ptr(dtos.ResidualTierLow),
		"Very Low":  utils.Ptr(dtos.ResidualTierVeryLow),
		"VERY_LOW":  utils.Ptr(dtos.ResidualTierVeryLow),
		"very-low":  utils.Ptr(dtos.ResidualTierVeryLow),
		"Tier 1":    nil,
		"":          nil,
		"Uncharted": nil,
	}

	for label, want := range cases {
		got := NormalizeTierLabel(label)
		if want == nil {
			assert.Nilf(t, got, "label %q", label)
			continue
		}
		require.NotNilf(t, got, "label %q", label)
		assert.Equalf(t, *want, *got, "label %q", label)
	}
}

func fullMatrix() Matrix {
	matrix := make(Matrix)
	tiers := []dtos.ResidualTier{
		dtos.ResidualTierHigh,
		dtos.ResidualTierMedium,
		dtos.ResidualTierLow,
		dtos.ResidualTierVeryLow,
	}
	for _, tier := range tiers {
		matrix[tier] = make(map[dtos.ScorecardOutcome]dtos.RiskLevel)
		for i, outcome := range ScorecardOrder {
			switch {
			case tier == dtos.ResidualTierHigh && i >= 3:
				matrix[tier][outcome] = dtos.RiskLevelHigh
			case i >= 5:
				matrix[tier][outcome] = dtos.RiskLevelHigh
			case i >= 2:
				matrix[tier][outcome] = dtos.RiskLevelMedium
			default:
				matrix[tier][outcome] = dtos.RiskLevelLow
			}
		}
	}
	return matrix
}

func TestComputeFinalRanking(t *testing.T) {
	buckets := validBuckets()
	matrix := fullMatrix()

	t.Run("applies the bucket penalty before the matrix lookup", func(t *testing.T) {
		ranking := ComputeFinalRanking("High", utils.Ptr(120), buckets, utils.Ptr(dtos.ScorecardGreen), matrix)

		require.NotNil(t, ranking)
		assert.Equal(t, dtos.ScorecardGreen, ranking.ScorecardOutcome)
		assert.Equal(t, 2, ranking.DowngradeNotches)
		assert.Equal(t, dtos.ScorecardYellowPlus, ranking.AdjustedOutcome)
		assert.Equal(t, "91-180 days", utils.SafeDereference(ranking.BucketLabel))
		assert.Equal(t, dtos.RiskLevelMedium, ranking.FinalRating)
		assert.Equal(t, dtos.RiskLevelLow, ranking.BaselineRating)
	})

	t.Run("no matching bucket means zero notches", func(t *testing.T) {
		ranking := ComputeFinalRanking("Low", utils.Ptr(120), nil, utils.Ptr(dtos.ScorecardGreen), matrix)

		require.NotNil(t, ranking)
		assert.Equal(t, 0, ranking.DowngradeNotches)
		assert.Equal(t, ranking.FinalRating, ranking.BaselineRating)
	})

	t.Run("nil days overdue means zero notches", func(t *testing.T) {
		ranking := ComputeFinalRanking("Medium", nil, buckets, utils.Ptr(dtos.ScorecardYellow), matrix)

		require.NotNil(t, ranking)
		assert.Equal(t, 0, ranking.DowngradeNotches)
		assert.Equal(t, dtos.ScorecardYellow, ranking.AdjustedOutcome)
	})

	t.Run("missing scorecard outcome yields nil instead of a guess", func(t *testing.T) {
		assert.Nil(t, ComputeFinalRanking("High", utils.Ptr(10), buckets, nil, matrix))
	})

	t.Run("unrecognized tier label yields nil", func(t *testing.T) {
		assert.Nil(t, ComputeFinalRanking("Critical", utils.Ptr(10), buckets, utils.Ptr(dtos.ScorecardGreen), matrix))
	})

	t.Run("absent matrix configuration yields nil", func(t *testing.T) {
		assert.Nil(t, ComputeFinalRanking("High", utils.Ptr(10), buckets, utils.Ptr(dtos.ScorecardGreen), nil))
	})

	t.Run("incomplete matrix row yields nil", func(t *testing.T) {
		partial := Matrix{
			dtos.ResidualTierHigh: {
				dtos.ScorecardGreen: dtos.RiskLevelLow,
			},
		}
		// adjusted outcome is missing from the row
		assert.Nil(t, ComputeFinalRanking("High", utils.Ptr(120), buckets, utils.Ptr(dtos.ScorecardGreen), partial))
	})
}
