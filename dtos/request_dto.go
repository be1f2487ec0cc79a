package dtos

import "time"

type RequestCreateRequest struct {
	Type ValidationType `json:"type" validate:"required,oneof=INTERIM COMPREHENSIVE"`
}

// RequestStatusUpdateRequest moves a request through its workflow. Approval is
// deliberately absent from the allowed values, it goes through the decision
// endpoint which also records the completion data.
type RequestStatusUpdateRequest struct {
	Status RequestStatus `json:"status" validate:"required,oneof=intake planning assigned inProgress review pendingApproval rejected cancelled"`
}

type SubmissionReceivedRequest struct {
	ReceivedDate *time.Time `json:"receivedDate"`
}

type RequestApproveRequest struct {
	CompletionDate   time.Time         `json:"completionDate" validate:"required"`
	ScorecardOutcome *ScorecardOutcome `json:"scorecardOutcome" validate:"omitempty,oneof=Green Green- Yellow+ Yellow Yellow- Red"`
	// ExpirationDate is mandatory for interim validations, they are time-boxed.
	ExpirationDate *time.Time `json:"expirationDate"`
}

type ApprovalCreateRequest struct {
	Role     string `json:"role" validate:"required"`
	Required bool   `json:"required"`
}

type ApprovalDecisionRequest struct {
	Status ApprovalDecision `json:"status" validate:"required,oneof=pending approved rejected"`
	Voided bool             `json:"voided"`
}
