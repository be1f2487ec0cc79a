package models

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/dtos"
)

// StatusHistory is the append-only approval status journal. Exactly one row
// is written per actual change; recomputes that land on the same status write
// nothing.
type StatusHistory struct {
	Model
	ModelID uuid.UUID `json:"modelId" gorm:"type:uuid;not null;index;"`

	OldStatus *dtos.ApprovalStatus `json:"oldStatus"`
	NewStatus dtos.ApprovalStatus  `json:"newStatus" gorm:"not null;"`
	Trigger   dtos.StatusTrigger   `json:"trigger" gorm:"not null;"`
}

func (h StatusHistory) TableName() string {
	return "status_histories"
}
