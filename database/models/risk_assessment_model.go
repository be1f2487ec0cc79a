package models

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/dtos"
)

// QualitativeFactor is an admin-managed risk factor with its current weight.
// Weights sum to 1.0 by convention but partial coverage is never renormalized
// at scoring time.
type QualitativeFactor struct {
	Model
	Name   string  `json:"name" gorm:"not null;uniqueIndex;"`
	Weight float64 `json:"weight" gorm:"not null;"`
}

func (f QualitativeFactor) TableName() string {
	return "qualitative_factors"
}

// FactorAssessment is one rated factor inside a risk assessment. The weight
// is snapshotted at assessment time and never updated, even if the factor's
// current weight changes later. Rating is nullable to support partial saves.
type FactorAssessment struct {
	Model
	RiskAssessmentID uuid.UUID `json:"riskAssessmentId" gorm:"type:uuid;not null;index;"`
	FactorID         uuid.UUID `json:"factorId" gorm:"type:uuid;not null;"`

	WeightSnapshot float64         `json:"weightSnapshot" gorm:"not null;"`
	Rating         *dtos.RiskLevel `json:"rating"`
}

func (a FactorAssessment) TableName() string {
	return "factor_assessments"
}

// RiskAssessment holds the inherent risk inputs and their three independent
// override slots for one (model, region) pair. Region nil means global.
type RiskAssessment struct {
	Model
	ModelID uuid.UUID `json:"modelId" gorm:"type:uuid;not null;index:idx_assessment_model_region,unique;"`
	Region  *string   `json:"region" gorm:"index:idx_assessment_model_region,unique;"`

	QuantitativeRating   *dtos.RiskLevel `json:"quantitativeRating"`
	QuantitativeOverride *dtos.RiskLevel `json:"quantitativeOverride"`

	QualitativeScore    *float64        `json:"qualitativeScore"`
	QualitativeLevel    *dtos.RiskLevel `json:"qualitativeLevel"`
	QualitativeOverride *dtos.RiskLevel `json:"qualitativeOverride"`

	DerivedTier  *dtos.RiskLevel `json:"derivedTier"`
	TierOverride *dtos.RiskLevel `json:"tierOverride"`
	FinalTier    *dtos.RiskLevel `json:"finalTier"`

	FactorAssessments []FactorAssessment `json:"factorAssessments,omitempty" gorm:"foreignKey:RiskAssessmentID;constraint:OnDelete:CASCADE;"`
}

func (a RiskAssessment) TableName() string {
	return "risk_assessments"
}
