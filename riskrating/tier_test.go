package riskrating

import (
	"testing"

	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessment(weight float64, rating *dtos.RiskLevel) models.FactorAssessment {
	return models.FactorAssessment{
		WeightSnapshot: weight,
		Rating:         rating,
	}
}

func TestQualitativeScore(t *testing.T) {
	t.Run("weighted score over rated factors", func(t *testing.T) {
		score, level := QualitativeScore([]models.FactorAssessment{
			assessment(0.30, utils.Ptr(dtos.RiskLevelHigh)),
			assessment(0.30, utils.Ptr(dtos.RiskLevelMedium)),
			assessment(0.20, utils.Ptr(dtos.RiskLevelLow)),
			assessment(0.20, utils.Ptr(dtos.RiskLevelLow)),
		})

		require.NotNil(t, score)
		require.NotNil(t, level)
		assert.InDelta(t, 1.90, *score, 0.001)
		assert.Equal(t, dtos.RiskLevelMedium, *level)
	})

	t.Run("no rated entries means no score and no level", func(t *testing.T) {
		score, level := QualitativeScore([]models.FactorAssessment{
			assessment(0.50, nil),
			assessment(0.50, nil),
		})
		assert.Nil(t, score)
		assert.Nil(t, level)
	})

	t.Run("unrated entries are skipped without renormalizing", func(t *testing.T) {
		// only 0.30 of the weight is rated; the score is "as rated so far"
		score, level := QualitativeScore([]models.FactorAssessment{
			assessment(0.30, utils.Ptr(dtos.RiskLevelHigh)),
			assessment(0.70, nil),
		})
		require.NotNil(t, score)
		assert.InDelta(t, 0.90, *score, 0.001)
		assert.Equal(t, dtos.RiskLevelLow, *level)
	})

	t.Run("level boundaries", func(t *testing.T) {
		cases := []struct {
			weight   float64
			expected dtos.RiskLevel
		}{
			{0.70, dtos.RiskLevelHigh},   // 0.70 * 3 = 2.10
			{0.75, dtos.RiskLevelHigh},   // 2.25
			{0.65, dtos.RiskLevelMedium}, // 1.95
			{0.50, dtos.RiskLevelLow},    // 1.50
		}
		for _, tc := range cases {
			_, level := QualitativeScore([]models.FactorAssessment{
				assessment(tc.weight, utils.Ptr(dtos.RiskLevelHigh)),
			})
			require.NotNil(t, level)
			assert.Equalf(t, tc.expected, *level, "weight %v", tc.weight)
		}

		// exact threshold values
		_, level := QualitativeScore([]models.FactorAssessment{
			assessment(0.80, utils.Ptr(dtos.RiskLevelMedium)), // 1.60
		})
		require.NotNil(t, level)
		assert.Equal(t, dtos.RiskLevelMedium, *level)
	})
}

func TestInherentRisk(t *testing.T) {
	t.Run("is total over the 3x3 domain", func(t *testing.T) {
		expected := map[dtos.RiskLevel]map[dtos.RiskLevel]dtos.RiskLevel{
			dtos.RiskLevelHigh: {
				dtos.RiskLevelHigh:   dtos.RiskLevelHigh,
				dtos.RiskLevelMedium: dtos.RiskLevelMedium,
				dtos.RiskLevelLow:    dtos.RiskLevelLow,
			},
			dtos.RiskLevelMedium: {
				dtos.RiskLevelHigh:   dtos.RiskLevelMedium,
				dtos.RiskLevelMedium: dtos.RiskLevelMedium,
				dtos.RiskLevelLow:    dtos.RiskLevelLow,
			},
			dtos.RiskLevelLow: {
				dtos.RiskLevelHigh:   dtos.RiskLevelLow,
				dtos.RiskLevelMedium: dtos.RiskLevelLow,
				dtos.RiskLevelLow:    dtos.RiskLevelVeryLow,
			},
		}

		for quant, row := range expected {
			for qual, want := range row {
				got := InherentRisk(utils.Ptr(quant), utils.Ptr(qual))
				require.NotNilf(t, got, "%s/%s", quant, qual)
				assert.Equalf(t, want, *got, "%s/%s", quant, qual)
			}
		}
	})

	t.Run("is nil outside the domain", func(t *testing.T) {
		assert.Nil(t, InherentRisk(nil, utils.Ptr(dtos.RiskLevelHigh)))
		assert.Nil(t, InherentRisk(utils.Ptr(dtos.RiskLevelHigh), nil))
		assert.Nil(t, InherentRisk(utils.Ptr(dtos.RiskLevelVeryLow), utils.Ptr(dtos.RiskLevelHigh)))
		assert.Nil(t, InherentRisk(utils.Ptr(dtos.RiskLevel("BANANA")), utils.Ptr(dtos.RiskLevelLow)))
	})
}

func TestTierCode(t *testing.T) {
	cases := map[dtos.RiskLevel]dtos.TierCode{
		dtos.RiskLevelHigh:    dtos.TierCode1,
		dtos.RiskLevelMedium:  dtos.TierCode2,
		dtos.RiskLevelLow:     dtos.TierCode3,
		dtos.RiskLevelVeryLow: dtos.TierCode4,
	}
	for tier, want := range cases {
		got := TierCode(utils.Ptr(tier))
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	}

	assert.Nil(t, TierCode(nil))
	assert.Nil(t, TierCode(utils.Ptr(dtos.RiskLevel("unknown"))))
}

func TestEffective(t *testing.T) {
	base := models.RiskAssessment{
		QuantitativeRating: utils.Ptr(dtos.RiskLevelHigh),
		FactorAssessments: []models.FactorAssessment{
			assessment(1.0, utils.Ptr(dtos.RiskLevelHigh)),
		},
	}

	t.Run("without overrides the derived tier flows through", func(t *testing.T) {
		eff := Effective(base)

		require.NotNil(t, eff.DerivedTier)
		assert.Equal(t, dtos.RiskLevelHigh, *eff.DerivedTier)
		assert.Equal(t, dtos.RiskLevelHigh, *eff.Tier)
		assert.Equal(t, dtos.TierCode1, *eff.Code)
	})

	t.Run("final override changes only the tier and code", func(t *testing.T) {
		withOverride := base
		withOverride.TierOverride = utils.Ptr(dtos.RiskLevelLow)

		eff := Effective(withOverride)
		plain := Effective(base)

		assert.Equal(t, plain.Quantitative, eff.Quantitative)
		assert.Equal(t, plain.Qualitative, eff.Qualitative)
		assert.Equal(t, plain.DerivedTier, eff.DerivedTier)

		assert.Equal(t, dtos.RiskLevelLow, *eff.Tier)
		assert.Equal(t, dtos.TierCode3, *eff.Code)
	})

	t.Run("each override slot is independent", func(t *testing.T) {
		a := base
		a.QuantitativeOverride = utils.Ptr(dtos.RiskLevelLow)

		eff := Effective(a)
		assert.Equal(t, dtos.RiskLevelLow, *eff.Quantitative)
		// HIGH qualitative x LOW quantitative
		assert.Equal(t, dtos.RiskLevelLow, *eff.DerivedTier)
	})

	t.Run("a missing upstream value propagates to nil", func(t *testing.T) {
		empty := models.RiskAssessment{}
		eff := Effective(empty)

		assert.Nil(t, eff.QualitativeScore)
		assert.Nil(t, eff.Quantitative)
		assert.Nil(t, eff.Qualitative)
		assert.Nil(t, eff.DerivedTier)
		assert.Nil(t, eff.Tier)
		assert.Nil(t, eff.Code)
	})

	t.Run("a final override alone still yields a tier", func(t *testing.T) {
		a := models.RiskAssessment{
			TierOverride: utils.Ptr(dtos.RiskLevelMedium),
		}
		eff := Effective(a)

		assert.Nil(t, eff.DerivedTier)
		require.NotNil(t, eff.Tier)
		assert.Equal(t, dtos.RiskLevelMedium, *eff.Tier)
		assert.Equal(t, dtos.TierCode2, *eff.Code)
	})
}
