package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ModelCreateRequest struct {
	Name            string     `json:"name" validate:"required"`
	Slug            string     `json:"slug" validate:"required"`
	TierLabel       string     `json:"tierLabel" validate:"required"`
	UseApprovalDate *time.Time `json:"useApprovalDate"`
}

type PolicyUpsertRequest struct {
	TierLabel              string `json:"tierLabel" validate:"required"`
	FrequencyMonths        int    `json:"frequencyMonths" validate:"required,gt=0"`
	GracePeriodMonths      int    `json:"gracePeriodMonths" validate:"gte=0"`
	SubmissionLeadTimeDays int    `json:"submissionLeadTimeDays" validate:"gte=0"`
}

type BucketUpsertRequest struct {
	Label            string `json:"label" validate:"required"`
	MinDays          *int   `json:"minDays"`
	MaxDays          *int   `json:"maxDays"`
	DowngradeNotches int    `json:"downgradeNotches" validate:"gte=0"`
}

type MatrixEntryRequest struct {
	Tier    ResidualTier     `json:"tier" validate:"required"`
	Outcome ScorecardOutcome `json:"outcome" validate:"required"`
	Rating  RiskLevel        `json:"rating" validate:"required"`
}

type MatrixUpsertRequest struct {
	Name    string               `json:"name" validate:"required"`
	Entries []MatrixEntryRequest `json:"entries" validate:"required,dive"`
}

type AssessmentFactorRequest struct {
	FactorID uuid.UUID  `json:"factorId" validate:"required"`
	Rating   *RiskLevel `json:"rating"`
}

type AssessmentUpsertRequest struct {
	Region *string `json:"region"`

	QuantitativeRating   *RiskLevel `json:"quantitativeRating"`
	QuantitativeOverride *RiskLevel `json:"quantitativeOverride"`
	QualitativeOverride  *RiskLevel `json:"qualitativeOverride"`
	TierOverride         *RiskLevel `json:"tierOverride"`

	Factors []AssessmentFactorRequest `json:"factors" validate:"dive"`
}
