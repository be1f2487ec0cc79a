package dtos

// RiskLevel is the shared qualitative scale used for factor ratings,
// quantitative ratings and inherent risk tiers. VERY_LOW only ever appears as
// a derived tier, never as an input rating.
type RiskLevel string

const (
	RiskLevelHigh    RiskLevel = "HIGH"
	RiskLevelMedium  RiskLevel = "MEDIUM"
	RiskLevelLow     RiskLevel = "LOW"
	RiskLevelVeryLow RiskLevel = "VERY_LOW"
)

// IsRating reports whether the level is a valid input rating for the inherent
// risk lookup.
func (l RiskLevel) IsRating() bool {
	switch l {
	case RiskLevelHigh, RiskLevelMedium, RiskLevelLow:
		return true
	}
	return false
}

// TierCode is the regulatory tier designation derived from the effective risk
// tier.
type TierCode string

const (
	TierCode1 TierCode = "TIER_1"
	TierCode2 TierCode = "TIER_2"
	TierCode3 TierCode = "TIER_3"
	TierCode4 TierCode = "TIER_4"
)

// ResidualTier is the canonical tier axis of the residual risk matrix.
type ResidualTier string

const (
	ResidualTierHigh    ResidualTier = "High"
	ResidualTierMedium  ResidualTier = "Medium"
	ResidualTierLow     ResidualTier = "Low"
	ResidualTierVeryLow ResidualTier = "Very Low"
)

// ScorecardOutcome is the ordered outcome of a validation scorecard,
// best to worst.
type ScorecardOutcome string

const (
	ScorecardGreen       ScorecardOutcome = "Green"
	ScorecardGreenMinus  ScorecardOutcome = "Green-"
	ScorecardYellowPlus  ScorecardOutcome = "Yellow+"
	ScorecardYellow      ScorecardOutcome = "Yellow"
	ScorecardYellowMinus ScorecardOutcome = "Yellow-"
	ScorecardRed         ScorecardOutcome = "Red"
)

// EffectiveRiskDTO reports the override-resolved values of a risk assessment.
// A nil field means the value could not be derived from the inputs; it is
// never substituted.
type EffectiveRiskDTO struct {
	QualitativeScore       *float64   `json:"qualitativeScore"`
	QualitativeLevel       *RiskLevel `json:"qualitativeLevel"`
	EffectiveQuantitative  *RiskLevel `json:"effectiveQuantitative"`
	EffectiveQualitative   *RiskLevel `json:"effectiveQualitative"`
	DerivedTier            *RiskLevel `json:"derivedTier"`
	EffectiveRiskTier      *RiskLevel `json:"effectiveRiskTier"`
	TierCode               *TierCode  `json:"tierCode"`
}

// FinalRankingDTO is the residual risk result after the overdue penalty.
type FinalRankingDTO struct {
	ScorecardOutcome ScorecardOutcome `json:"scorecardOutcome"`
	AdjustedOutcome  ScorecardOutcome `json:"adjustedOutcome"`
	DowngradeNotches int              `json:"downgradeNotches"`
	BucketLabel      *string          `json:"bucketLabel,omitempty"`
	Tier             ResidualTier     `json:"tier"`
	FinalRating      RiskLevel        `json:"finalRating"`
	// BaselineRating is the matrix result without the overdue penalty, for
	// side-by-side display.
	BaselineRating RiskLevel `json:"baselineRating"`
}
