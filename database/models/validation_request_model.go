package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/dtos"
)

// ValidationRequest is one validation engagement in a model's history. A
// request is active while its status is not terminal.
type ValidationRequest struct {
	Model
	ModelID uuid.UUID `json:"modelId" gorm:"type:uuid;not null;index;"`

	Type   dtos.ValidationType `json:"type" gorm:"not null;"`
	Status dtos.RequestStatus  `json:"status" gorm:"not null;default:'intake';"`

	CompletionDate         *time.Time `json:"completionDate"`
	SubmissionReceivedDate *time.Time `json:"submissionReceivedDate"`
	// ExpirationDate is set when an interim validation gets approved; interim
	// validations are time-boxed and defer the comprehensive revalidation
	// only until this date.
	ExpirationDate *time.Time `json:"expirationDate"`

	ScorecardOutcome *dtos.ScorecardOutcome `json:"scorecardOutcome"`

	Approvals []ApprovalRecord `json:"approvals,omitempty" gorm:"foreignKey:ValidationRequestID;constraint:OnDelete:CASCADE;"`
}

func (r ValidationRequest) TableName() string {
	return "validation_requests"
}

// IsActive reports whether the request still participates in compliance
// calculations.
func (r ValidationRequest) IsActive() bool {
	return !r.Status.IsTerminal()
}

// IsApproved reports whether the request finished with an approval.
func (r ValidationRequest) IsApproved() bool {
	return r.Status == dtos.RequestStatusApproved
}
