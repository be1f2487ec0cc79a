package models

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/dtos"
)

// ApprovalRecord is a single sign-off attached to a validation request.
// Voided records are ignored everywhere.
type ApprovalRecord struct {
	Model
	ValidationRequestID uuid.UUID `json:"validationRequestId" gorm:"type:uuid;not null;index;"`

	Role     string                `json:"role" gorm:"not null;"`
	Required bool                  `json:"required"`
	Status   dtos.ApprovalDecision `json:"status" gorm:"not null;default:'pending';"`
	Voided   bool                  `json:"voided"`
}

func (a ApprovalRecord) TableName() string {
	return "approval_records"
}
