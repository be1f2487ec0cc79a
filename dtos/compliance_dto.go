package dtos

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceStatus is the revalidation-timeliness status of a model. It is a
// closed enum: every consumer (API, reports, the approval state machine)
// switches exhaustively over these values.
type ComplianceStatus string

const (
	// No validation policy is configured for the model's risk tier. Models in
	// this state are excluded from every aggregate.
	ComplianceStatusNoPolicyConfigured ComplianceStatus = "noPolicyConfigured"

	// A live interim validation defers the comprehensive revalidation.
	ComplianceStatusPendingFullValidation ComplianceStatus = "pendingFullValidation"

	// The interim validation expires within the submission lead time and no
	// comprehensive submission has been received.
	ComplianceStatusInterimSubmissionOverdue ComplianceStatus = "interimSubmissionOverdue"

	// The interim validation has expired; a full validation is required.
	ComplianceStatusInterimExpired ComplianceStatus = "interimExpired"

	// The model has no approved comprehensive validation at all. Not counted
	// as overdue.
	ComplianceStatusNeverValidated ComplianceStatus = "neverValidated"

	// Inside the compliance window, no revalidation request open yet.
	ComplianceStatusUpcoming ComplianceStatus = "upcoming"

	// A revalidation request is open but no submission has been received.
	ComplianceStatusAwaitingSubmission ComplianceStatus = "awaitingSubmission"

	// A revalidation request is open and the submission has been received.
	ComplianceStatusValidationInProgress ComplianceStatus = "validationInProgress"

	// Past the submission due date but still inside the grace period.
	ComplianceStatusInGracePeriod ComplianceStatus = "inGracePeriod"

	// Past the grace period end and no submission has been received, whether
	// or not a revalidation request exists.
	ComplianceStatusSubmissionOverdue ComplianceStatus = "submissionOverdue"

	// Past the grace period end, a submission was received, and the validation
	// itself has blown through its lead time.
	ComplianceStatusValidationOverdue ComplianceStatus = "validationOverdue"
)

// ValidationType distinguishes a time-boxed interim validation from a full
// comprehensive one.
type ValidationType string

const (
	ValidationTypeInterim       ValidationType = "INTERIM"
	ValidationTypeComprehensive ValidationType = "COMPREHENSIVE"
)

// RequestStatus is the workflow status of a validation request.
type RequestStatus string

const (
	RequestStatusIntake          RequestStatus = "intake"
	RequestStatusPlanning        RequestStatus = "planning"
	RequestStatusAssigned        RequestStatus = "assigned"
	RequestStatusInProgress      RequestStatus = "inProgress"
	RequestStatusReview          RequestStatus = "review"
	RequestStatusPendingApproval RequestStatus = "pendingApproval"
	RequestStatusApproved        RequestStatus = "approved"
	RequestStatusRejected        RequestStatus = "rejected"
	RequestStatusCancelled       RequestStatus = "cancelled"
)

// IsTerminal reports whether the request can no longer change. A request is
// "active" exactly when its status is not terminal.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// ComplianceDetail is the explanatory context returned next to a
// ComplianceStatus. Nil fields mean "not derivable for this model", never zero
// values in disguise.
type ComplianceDetail struct {
	NextSubmissionDue *time.Time `json:"nextSubmissionDue,omitempty"`
	GraceEnd          *time.Time `json:"graceEnd,omitempty"`
	LastCompletion    *time.Time `json:"lastCompletion,omitempty"`
	DaysUntilDue      *int       `json:"daysUntilDue,omitempty"`
	// DaysOverdue counts from the grace period end. Negative while the model
	// is still inside its window.
	DaysOverdue     *int       `json:"daysOverdue,omitempty"`
	ActiveRequestID *uuid.UUID `json:"activeRequestId,omitempty"`
	IsOverdue       bool       `json:"isOverdue"`
}

// ModelComplianceDTO is the per-model API response combining the compliance
// status, the approval status and the final risk ranking.
type ModelComplianceDTO struct {
	ModelID           uuid.UUID        `json:"modelId"`
	ComplianceStatus  ComplianceStatus `json:"complianceStatus"`
	Detail            ComplianceDetail `json:"detail"`
	ApprovalStatus    ApprovalStatus   `json:"approvalStatus"`
	ApprovalsComplete bool             `json:"approvalsComplete"`
	FinalRanking      *FinalRankingDTO `json:"finalRanking"`
}
