// Copyright (C) 2025 the modelward contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package riskrating

import (
	"math"

	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
)

var ratingPoints = map[dtos.RiskLevel]float64{
	dtos.RiskLevelHigh:   3,
	dtos.RiskLevelMedium: 2,
	dtos.RiskLevelLow:    1,
}

const (
	qualitativeHighThreshold   = 2.10
	qualitativeMediumThreshold = 1.60
)

// QualitativeScore computes the weighted qualitative score over the rated
// assessments only, rounded to two decimals, plus the level it maps to.
// Unrated entries are skipped and partial weight coverage is NOT renormalized:
// the score is "as rated so far". No rated entries at all means no score and
// no level.
func QualitativeScore(assessments []models.FactorAssessment) (*float64, *dtos.RiskLevel) {
	rated := utils.Filter(assessments, func(a models.FactorAssessment) bool {
		return a.Rating != nil
	})
	if len(rated) == 0 {
		return nil, nil
	}

	var sum float64
	for _, a := range rated {
		sum += a.WeightSnapshot * ratingPoints[*a.Rating]
	}
	score := math.Round(sum*100) / 100

	level := dtos.RiskLevelLow
	switch {
	case score >= qualitativeHighThreshold:
		level = dtos.RiskLevelHigh
	case score >= qualitativeMediumThreshold:
		level = dtos.RiskLevelMedium
	}
	return &score, &level
}

// quantitative x qualitative -> inherent risk tier
var inherentRiskTable = map[dtos.RiskLevel]map[dtos.RiskLevel]dtos.RiskLevel{
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

// InherentRisk combines the quantitative and qualitative ratings through the
// fixed 3x3 table. Anything outside {HIGH, MEDIUM, LOW} on either axis yields
// nil, never a guess.
func InherentRisk(quantitative, qualitative *dtos.RiskLevel) *dtos.RiskLevel {
	if quantitative == nil || qualitative == nil {
		return nil
	}
	row, ok := inherentRiskTable[*quantitative]
	if !ok {
		return nil
	}
	tier, ok := row[*qualitative]
	if !ok {
		return nil
	}
	return &tier
}

// TierCode maps an inherent risk tier to its regulatory tier code.
func TierCode(tier *dtos.RiskLevel) *dtos.TierCode {
	if tier == nil {
		return nil
	}
	switch *tier {
	case dtos.RiskLevelHigh:
		return utils.Ptr(dtos.TierCode1)
	case dtos.RiskLevelMedium:
		return utils.Ptr(dtos.TierCode2)
	case dtos.RiskLevelLow:
		return utils.Ptr(dtos.TierCode3)
	case dtos.RiskLevelVeryLow:
		return utils.Ptr(dtos.TierCode4)
	}
	return nil
}

// EffectiveValues resolves the three independent override slots of an
// assessment. Each override only shadows its own slot; a missing upstream
// value legitimately propagates to nil without substitution.
type EffectiveValues struct {
	QualitativeScore *float64
	QualitativeLevel *dtos.RiskLevel

	Quantitative *dtos.RiskLevel
	Qualitative  *dtos.RiskLevel
	DerivedTier  *dtos.RiskLevel
	Tier         *dtos.RiskLevel
	Code         *dtos.TierCode
}

// Effective computes the override-resolved values for an assessment. The
// qualitative score and level are recomputed from the factor snapshots rather
// than read back from the stored columns, so stale persisted values can never
// leak into the result.
func Effective(assessment models.RiskAssessment) EffectiveValues {
	score, level := QualitativeScore(assessment.FactorAssessments)

	effQuant := utils.Or(assessment.QuantitativeOverride, assessment.QuantitativeRating)
	effQual := utils.Or(assessment.QualitativeOverride, level)
	derived := InherentRisk(effQuant, effQual)
	effTier := utils.Or(assessment.TierOverride, derived)

	return EffectiveValues{
		QualitativeScore: score,
		QualitativeLevel: level,
		Quantitative:     effQuant,
		Qualitative:      effQual,
		DerivedTier:      derived,
		Tier:             effTier,
		Code:             TierCode(effTier),
	}
}
