package models

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/dtos"
)

// ResidualRiskMatrix is one matrix configuration. At most one configuration
// is active; an inactive or missing configuration makes the final ranking
// undefined rather than guessed.
type ResidualRiskMatrix struct {
	Model
	Name   string `json:"name" gorm:"not null;"`
	Active bool   `json:"active" gorm:"index;"`

	Entries []ResidualRiskMatrixEntry `json:"entries,omitempty" gorm:"foreignKey:MatrixID;constraint:OnDelete:CASCADE;"`
}

func (m ResidualRiskMatrix) TableName() string {
	return "residual_risk_matrices"
}

// ResidualRiskMatrixEntry is one cell: normalized tier x scorecard outcome ->
// residual risk rating.
type ResidualRiskMatrixEntry struct {
	Model
	MatrixID uuid.UUID `json:"matrixId" gorm:"type:uuid;not null;index;"`

	Tier    dtos.ResidualTier     `json:"tier" gorm:"not null;"`
	Outcome dtos.ScorecardOutcome `json:"outcome" gorm:"not null;"`
	Rating  dtos.RiskLevel        `json:"rating" gorm:"not null;"`
}

func (e ResidualRiskMatrixEntry) TableName() string {
	return "residual_risk_matrix_entries"
}
