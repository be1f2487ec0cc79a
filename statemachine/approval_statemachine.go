// Copyright (C) 2025 the modelward contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package statemachine

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/compliance"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
)

// substantiveStatuses are request statuses that count as a validation
// actually underway. Intake is deliberately excluded: a parked request does
// not keep an expired model in VALIDATION_IN_PROGRESS.
var substantiveStatuses = map[dtos.RequestStatus]bool{
	dtos.RequestStatusPlanning:        true,
	dtos.RequestStatusAssigned:        true,
	dtos.RequestStatusInProgress:      true,
	dtos.RequestStatusReview:          true,
	dtos.RequestStatusPendingApproval: true,
}

// ApprovalResult is the recomputed approval state of a model plus the
// informational paperwork-completeness flag.
type ApprovalResult struct {
	Status dtos.ApprovalStatus
	// ApprovalsComplete reports whether all required sign-offs are in. It is
	// informational only and never gates the status: a model stays approved
	// through its compliance window even while paperwork is finishing.
	ApprovalsComplete bool
}

// ComputeApprovalStatus derives the 5-state approval status from scratch.
// There is no incremental update path: every trigger recomputes from the
// model, its history and the compliance result, so the status can never
// drift from its inputs.
func ComputeApprovalStatus(model models.InventoryModel, history []models.ValidationRequest, complianceResult compliance.Result) ApprovalResult {
	latestApproved := latestApprovedValidation(history)

	if latestApproved == nil {
		return ApprovalResult{Status: dtos.ApprovalStatusNeverValidated}
	}

	result := ApprovalResult{
		ApprovalsComplete: ApprovalsComplete(model, latestApproved.Approvals),
	}

	if !complianceResult.Detail.IsOverdue {
		if latestApproved.Type == dtos.ValidationTypeInterim {
			result.Status = dtos.ApprovalStatusInterimApproved
		} else {
			result.Status = dtos.ApprovalStatusApproved
		}
		return result
	}

	if hasSubstantiveActiveRequest(history) {
		result.Status = dtos.ApprovalStatusValidationInProgress
		return result
	}

	result.Status = dtos.ApprovalStatusExpired
	return result
}

// ApprovalsComplete checks that every required, non-voided approval on the
// governing validation is approved. If a conditional approver signed off,
// the model's use-approval date must additionally be set.
func ApprovalsComplete(model models.InventoryModel, approvals []models.ApprovalRecord) bool {
	conditionalInvolved := false
	for _, a := range approvals {
		if a.Voided {
			continue
		}
		if a.Role == dtos.RoleConditionalApprover {
			conditionalInvolved = true
		}
		if a.Required && a.Status != dtos.ApprovalDecisionApproved {
			return false
		}
	}
	if conditionalInvolved && model.UseApprovalDate == nil {
		return false
	}
	return true
}

func hasSubstantiveActiveRequest(history []models.ValidationRequest) bool {
	_, found := utils.Find(history, func(r models.ValidationRequest) bool {
		return r.IsActive() && substantiveStatuses[r.Status]
	})
	return found
}

func latestApprovedValidation(history []models.ValidationRequest) *models.ValidationRequest {
	var latest *models.ValidationRequest
	for i := range history {
		r := &history[i]
		if !r.IsApproved() || r.CompletionDate == nil {
			continue
		}
		if latest == nil || r.CompletionDate.After(*latest.CompletionDate) {
			latest = r
		}
	}
	return latest
}

// Transition decides whether a freshly computed status needs a journal row.
// It returns nil when the status matches the last recorded one: a recompute
// that lands on the same state writes nothing, a genuine change writes
// exactly one row. Callers must run read-compute-append inside a transaction
// so concurrent triggers cannot both observe the same last row.
func Transition(last *models.StatusHistory, modelID uuid.UUID, next dtos.ApprovalStatus, trigger dtos.StatusTrigger) *models.StatusHistory {
	var oldStatus *dtos.ApprovalStatus
	if last != nil {
		if last.NewStatus == next {
			return nil
		}
		oldStatus = &last.NewStatus
	}

	return &models.StatusHistory{
		ModelID:   modelID,
		OldStatus: oldStatus,
		NewStatus: next,
		Trigger:   trigger,
	}
}
