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

// Package compliance derives a model's revalidation timeliness from its
// validation history as of a given day. Everything here is pure: no I/O, no
// clock reads, no shared state. Callers load the policy and history once and
// pass the same snapshot into every call.
package compliance

import (
	"time"

	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
)

// Result is a compliance status with its explanatory context.
type Result struct {
	Status dtos.ComplianceStatus
	Detail dtos.ComplianceDetail
}

// Evaluate computes the compliance status of a model as of today.
//
// The latest approved validation governs the branch taken: an interim
// validation defers the comprehensive clock until its expiration, a
// comprehensive one starts the frequency/grace window at its completion date.
// The due date itself already counts as in grace: a model is on time strictly
// before nextSubmissionDue, in grace through graceEnd, overdue after.
//
// IsOverdue is true for every past-grace state (including a validation that
// is still in progress past grace) plus the two interim-overdue states. It is
// false for NeverValidated and NoPolicyConfigured: those models are excluded,
// not late.
func Evaluate(policy *models.ValidationPolicy, history []models.ValidationRequest, today time.Time) Result {
	if policy == nil {
		return Result{Status: dtos.ComplianceStatusNoPolicyConfigured}
	}

	detail := dtos.ComplianceDetail{}

	activeRequest := latestActiveRequest(history)
	if activeRequest != nil {
		detail.ActiveRequestID = utils.Ptr(activeRequest.ID)
	}

	latestApproved := latestApprovedValidation(history)
	if latestApproved == nil {
		return Result{Status: dtos.ComplianceStatusNeverValidated, Detail: detail}
	}

	if latestApproved.Type == dtos.ValidationTypeInterim {
		return evaluateInterim(policy, *latestApproved, detail, today)
	}

	completion := *latestApproved.CompletionDate
	nextDue := completion.AddDate(0, policy.FrequencyMonths, 0)
	graceEnd := nextDue.AddDate(0, policy.GracePeriodMonths, 0)

	detail.LastCompletion = &completion
	detail.NextSubmissionDue = &nextDue
	detail.GraceEnd = &graceEnd
	detail.DaysUntilDue = utils.Ptr(daysBetween(today, nextDue))
	// negative while the model is still inside its window
	detail.DaysOverdue = utils.Ptr(daysBetween(graceEnd, today))

	if today.Before(nextDue) {
		if activeRequest != nil {
			if activeRequest.SubmissionReceivedDate != nil {
				return Result{Status: dtos.ComplianceStatusValidationInProgress, Detail: detail}
			}
			return Result{Status: dtos.ComplianceStatusAwaitingSubmission, Detail: detail}
		}
		return Result{Status: dtos.ComplianceStatusUpcoming, Detail: detail}
	}

	if !today.After(graceEnd) {
		return Result{Status: dtos.ComplianceStatusInGracePeriod, Detail: detail}
	}

	// past grace: everything from here on is overdue, even a validation that
	// is still within its lead time
	detail.IsOverdue = true

	if activeRequest != nil && activeRequest.SubmissionReceivedDate != nil {
		validationDue := activeRequest.SubmissionReceivedDate.AddDate(0, 0, policy.SubmissionLeadTimeDays)
		if today.After(validationDue) {
			return Result{Status: dtos.ComplianceStatusValidationOverdue, Detail: detail}
		}
		return Result{Status: dtos.ComplianceStatusValidationInProgress, Detail: detail}
	}

	// no submission received, with or without an open request. The request's
	// existence is visible through ActiveRequestID.
	return Result{Status: dtos.ComplianceStatusSubmissionOverdue, Detail: detail}
}

func evaluateInterim(policy *models.ValidationPolicy, interim models.ValidationRequest, detail dtos.ComplianceDetail, today time.Time) Result {
	// approved interim validations carry their expiration; a missing one is
	// treated as already expired rather than as an indefinite deferral
	if interim.ExpirationDate == nil || !interim.ExpirationDate.After(today) {
		detail.IsOverdue = true
		return Result{Status: dtos.ComplianceStatusInterimExpired, Detail: detail}
	}

	expiration := *interim.ExpirationDate
	detail.NextSubmissionDue = &expiration
	detail.DaysUntilDue = utils.Ptr(daysBetween(today, expiration))

	if daysBetween(today, expiration) <= policy.SubmissionLeadTimeDays {
		detail.IsOverdue = true
		return Result{Status: dtos.ComplianceStatusInterimSubmissionOverdue, Detail: detail}
	}
	return Result{Status: dtos.ComplianceStatusPendingFullValidation, Detail: detail}
}

// latestApprovedValidation returns the newest approved validation with a
// completion date, interim or comprehensive. Approved requests without a
// completion date cannot anchor any window and are skipped.
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

func latestActiveRequest(history []models.ValidationRequest) *models.ValidationRequest {
	var latest *models.ValidationRequest
	for i := range history {
		r := &history[i]
		if !r.IsActive() {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	return latest
}

// daysBetween returns whole calendar days from one date to another, negative
// when to precedes from. Time-of-day and zone are dropped first so a late
// evening timestamp cannot shift the day count.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
