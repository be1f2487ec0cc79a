package dtos

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the model's overall approval state. It is recomputed from
// scratch on every trigger, never updated incrementally.
type ApprovalStatus string

const (
	ApprovalStatusNeverValidated       ApprovalStatus = "NEVER_VALIDATED"
	ApprovalStatusApproved             ApprovalStatus = "APPROVED"
	ApprovalStatusInterimApproved      ApprovalStatus = "INTERIM_APPROVED"
	ApprovalStatusValidationInProgress ApprovalStatus = "VALIDATION_IN_PROGRESS"
	ApprovalStatusExpired              ApprovalStatus = "EXPIRED"
)

// ApprovalDecision is the status of a single approval record on a validation
// request.
type ApprovalDecision string

const (
	ApprovalDecisionPending  ApprovalDecision = "pending"
	ApprovalDecisionApproved ApprovalDecision = "approved"
	ApprovalDecisionRejected ApprovalDecision = "rejected"
)

// RoleConditionalApprover marks approvals that additionally require the
// model's use-approval date to be set before the paperwork counts as
// complete.
const RoleConditionalApprover = "conditionalApprover"

// StatusTrigger names the event that caused an approval status recompute.
type StatusTrigger string

const (
	TriggerValidationApproved     StatusTrigger = "validationApproved"
	TriggerRequestCreated         StatusTrigger = "requestCreated"
	TriggerSubmissionReceived     StatusTrigger = "submissionReceived"
	TriggerScheduledRecalculation StatusTrigger = "scheduledRecalculation"
	TriggerManualRefresh          StatusTrigger = "manualRefresh"
)

// StatusHistoryDTO is one journal row of the approval status audit trail.
type StatusHistoryDTO struct {
	ID        uuid.UUID       `json:"id"`
	ModelID   uuid.UUID       `json:"modelId"`
	OldStatus *ApprovalStatus `json:"oldStatus"`
	NewStatus ApprovalStatus  `json:"newStatus"`
	Trigger   StatusTrigger   `json:"trigger"`
	CreatedAt time.Time       `json:"createdAt"`
}
