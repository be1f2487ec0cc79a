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
	"strings"

	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
)

// ScorecardOrder lists the scorecard outcomes best to worst. Downgrading
// moves right through this slice.
var ScorecardOrder = []dtos.ScorecardOutcome{
	dtos.ScorecardGreen,
	dtos.ScorecardGreenMinus,
	dtos.ScorecardYellowPlus,
	dtos.ScorecardYellow,
	dtos.ScorecardYellowMinus,
	dtos.ScorecardRed,
}

func scorecardIndex(outcome dtos.ScorecardOutcome) int {
	for i, o := range ScorecardOrder {
		if o == outcome {
			return i
		}
	}
	return -1
}

// Downgrade worsens a scorecard outcome by the given number of notches,
// capped at Red. An unknown outcome or a non-positive notch count returns
// the outcome unchanged; a downgrade never improves and never fails.
func Downgrade(outcome dtos.ScorecardOutcome, notches int) dtos.ScorecardOutcome {
	idx := scorecardIndex(outcome)
	if idx < 0 || notches <= 0 {
		return outcome
	}
	idx += notches
	if idx >= len(ScorecardOrder) {
		idx = len(ScorecardOrder) - 1
	}
	return ScorecardOrder[idx]
}

// NormalizeTierLabel maps a free-form model tier label onto the canonical
// matrix axis. Unrecognized labels yield nil so the caller reports "cannot
// compute" instead of guessing.
func NormalizeTierLabel(label string) *dtos.ResidualTier {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")

	switch normalized {
	case "high":
		return utils.Ptr(dtos.ResidualTierHigh)
	case "medium":
		return utils.Ptr(dtos.ResidualTierMedium)
	case "low":
		return utils.Ptr(dtos.ResidualTierLow)
	case "very low":
		return utils.Ptr(dtos.ResidualTierVeryLow)
	}
	return nil
}

// Matrix is the active residual risk configuration, keyed by normalized tier
// and scorecard outcome. It is built once per request or batch run and passed
// around immutably.
type Matrix map[dtos.ResidualTier]map[dtos.ScorecardOutcome]dtos.RiskLevel

// BuildMatrix indexes the entries of the active matrix configuration.
func BuildMatrix(entries []models.ResidualRiskMatrixEntry) Matrix {
	matrix := make(Matrix)
	for _, e := range entries {
		row, ok := matrix[e.Tier]
		if !ok {
			row = make(map[dtos.ScorecardOutcome]dtos.RiskLevel)
			matrix[e.Tier] = row
		}
		row[e.Outcome] = e.Rating
	}
	return matrix
}

func (m Matrix) lookup(tier dtos.ResidualTier, outcome dtos.ScorecardOutcome) *dtos.RiskLevel {
	row, ok := m[tier]
	if !ok {
		return nil
	}
	rating, ok := row[outcome]
	if !ok {
		return nil
	}
	return &rating
}

// ComputeFinalRanking downgrades the measured scorecard outcome by the
// matching past-due bucket's notch count and looks the result up in the
// residual risk matrix. It returns nil whenever an input cannot be
// interpreted: no scorecard outcome, an unrecognized tier label, or an
// absent/incomplete matrix. The caller decides whether nil is an exclusion
// or a reportable failure.
func ComputeFinalRanking(tierLabel string, daysOverdue *int, buckets []models.PastDueBucket, outcome *dtos.ScorecardOutcome, matrix Matrix) *dtos.FinalRankingDTO {
	if outcome == nil {
		return nil
	}

	tier := NormalizeTierLabel(tierLabel)
	if tier == nil {
		return nil
	}

	if len(matrix) == 0 {
		return nil
	}

	notches := 0
	var bucketLabel *string
	if daysOverdue != nil {
		if bucket := MatchBucket(buckets, *daysOverdue); bucket != nil {
			notches = bucket.DowngradeNotches
			bucketLabel = &bucket.Label
		}
	}

	adjusted := Downgrade(*outcome, notches)

	final := matrix.lookup(*tier, adjusted)
	if final == nil {
		return nil
	}
	// baseline without the overdue penalty, for side-by-side display
	baseline := matrix.lookup(*tier, *outcome)
	if baseline == nil {
		return nil
	}

	return &dtos.FinalRankingDTO{
		ScorecardOutcome: *outcome,
		AdjustedOutcome:  adjusted,
		DowngradeNotches: notches,
		BucketLabel:      bucketLabel,
		Tier:             *tier,
		FinalRating:      *final,
		BaselineRating:   *baseline,
	}
}
