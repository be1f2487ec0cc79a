package compliance

import (
	"testing"
	"time"

	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func defaultPolicy() *models.ValidationPolicy {
	return &models.ValidationPolicy{
		TierLabel:              "High",
		FrequencyMonths:        12,
		GracePeriodMonths:      3,
		SubmissionLeadTimeDays: 90,
	}
}

func approvedComprehensive(completion time.Time) models.ValidationRequest {
	return models.ValidationRequest{
		Type:           dtos.ValidationTypeComprehensive,
		Status:         dtos.RequestStatusApproved,
		CompletionDate: &completion,
	}
}

func approvedInterim(completion, expiration time.Time) models.ValidationRequest {
	return models.ValidationRequest{
		Type:           dtos.ValidationTypeInterim,
		Status:         dtos.RequestStatusApproved,
		CompletionDate: &completion,
		ExpirationDate: &expiration,
	}
}

func activeRequest(status dtos.RequestStatus, submission *time.Time) models.ValidationRequest {
	return models.ValidationRequest{
		Type:                   dtos.ValidationTypeComprehensive,
		Status:                 status,
		SubmissionReceivedDate: submission,
	}
}

func TestEvaluateConfiguration(t *testing.T) {
	t.Run("no policy for the tier", func(t *testing.T) {
		result := Evaluate(nil, nil, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusNoPolicyConfigured, result.Status)
		assert.False(t, result.Detail.IsOverdue)
		assert.Nil(t, result.Detail.DaysOverdue)
	})

	t.Run("never validated", func(t *testing.T) {
		history := []models.ValidationRequest{
			activeRequest(dtos.RequestStatusInProgress, nil),
		}
		result := Evaluate(defaultPolicy(), history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusNeverValidated, result.Status)
		assert.False(t, result.Detail.IsOverdue)
		assert.NotNil(t, result.Detail.ActiveRequestID)
	})

	t.Run("approved validation without completion date cannot anchor a window", func(t *testing.T) {
		history := []models.ValidationRequest{
			{Type: dtos.ValidationTypeComprehensive, Status: dtos.RequestStatusApproved},
		}
		result := Evaluate(defaultPolicy(), history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusNeverValidated, result.Status)
	})
}

func TestEvaluateComprehensiveWindow(t *testing.T) {
	policy := defaultPolicy()

	t.Run("upcoming inside the window", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2025, 1, 12)),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusUpcoming, result.Status)
		assert.False(t, result.Detail.IsOverdue)
		require.NotNil(t, result.Detail.NextSubmissionDue)
		assert.Equal(t, day(2026, 1, 12), *result.Detail.NextSubmissionDue)
		assert.Equal(t, day(2026, 4, 12), *result.Detail.GraceEnd)
		assert.Equal(t, 184, *result.Detail.DaysUntilDue)
		assert.Negative(t, *result.Detail.DaysOverdue)
	})

	t.Run("awaiting submission when a request is open without a submission", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2025, 1, 12)),
			activeRequest(dtos.RequestStatusPlanning, nil),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusAwaitingSubmission, result.Status)
		assert.False(t, result.Detail.IsOverdue)
	})

	t.Run("validation in progress once the submission is in", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2025, 1, 12)),
			activeRequest(dtos.RequestStatusInProgress, utils.Ptr(day(2025, 6, 1))),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusValidationInProgress, result.Status)
		assert.False(t, result.Detail.IsOverdue)
	})

	t.Run("completion exactly one frequency ago is already in grace", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2024, 7, 12)),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusInGracePeriod, result.Status)
		assert.False(t, result.Detail.IsOverdue)
	})

	t.Run("in grace period until grace end inclusive", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2024, 1, 12)),
		}
		// graceEnd = 2025-04-12
		result := Evaluate(policy, history, day(2025, 4, 12))

		assert.Equal(t, dtos.ComplianceStatusInGracePeriod, result.Status)
		assert.False(t, result.Detail.IsOverdue)
		assert.Equal(t, 0, *result.Detail.DaysOverdue)
	})
}

func TestEvaluatePastGrace(t *testing.T) {
	policy := defaultPolicy()
	// completion 2024-01-12, next due 2025-01-12, grace end 2025-04-12
	baseline := approvedComprehensive(day(2024, 1, 12))

	t.Run("eighteen months later with no active request", func(t *testing.T) {
		result := Evaluate(policy, []models.ValidationRequest{baseline}, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusSubmissionOverdue, result.Status)
		assert.True(t, result.Detail.IsOverdue)
		assert.Equal(t, 91, *result.Detail.DaysOverdue)
		assert.Nil(t, result.Detail.ActiveRequestID)
	})

	t.Run("open request without a submission is still submission overdue", func(t *testing.T) {
		history := []models.ValidationRequest{
			baseline,
			activeRequest(dtos.RequestStatusAssigned, nil),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusSubmissionOverdue, result.Status)
		assert.True(t, result.Detail.IsOverdue)
		assert.NotNil(t, result.Detail.ActiveRequestID)
	})

	t.Run("submission received and within lead time", func(t *testing.T) {
		history := []models.ValidationRequest{
			baseline,
			activeRequest(dtos.RequestStatusInProgress, utils.Ptr(day(2025, 6, 1))),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusValidationInProgress, result.Status)
		// still overdue: past grace counts regardless of the open validation
		assert.True(t, result.Detail.IsOverdue)
	})

	t.Run("submission received but the validation blew its lead time", func(t *testing.T) {
		history := []models.ValidationRequest{
			baseline,
			activeRequest(dtos.RequestStatusReview, utils.Ptr(day(2025, 1, 20))),
		}
		// validation due 2025-01-20 + 90d = 2025-04-20
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusValidationOverdue, result.Status)
		assert.True(t, result.Detail.IsOverdue)
	})
}

func TestEvaluateInterim(t *testing.T) {
	policy := defaultPolicy()

	t.Run("live interim defers the comprehensive clock", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedComprehensive(day(2023, 1, 1)),
			approvedInterim(day(2025, 1, 1), day(2026, 1, 1)),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusPendingFullValidation, result.Status)
		assert.False(t, result.Detail.IsOverdue)
		require.NotNil(t, result.Detail.NextSubmissionDue)
		assert.Equal(t, day(2026, 1, 1), *result.Detail.NextSubmissionDue)
	})

	t.Run("interim inside the lead time window", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedInterim(day(2025, 1, 1), day(2025, 9, 1)),
		}
		// 51 days to expiration, lead time 90
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusInterimSubmissionOverdue, result.Status)
		assert.True(t, result.Detail.IsOverdue)
	})

	t.Run("expired interim requires a full validation", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedInterim(day(2024, 1, 1), day(2025, 1, 1)),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusInterimExpired, result.Status)
		assert.True(t, result.Detail.IsOverdue)
	})

	t.Run("a newer comprehensive supersedes an expired interim", func(t *testing.T) {
		history := []models.ValidationRequest{
			approvedInterim(day(2023, 1, 1), day(2024, 1, 1)),
			approvedComprehensive(day(2025, 5, 1)),
		}
		result := Evaluate(policy, history, day(2025, 7, 12))

		assert.Equal(t, dtos.ComplianceStatusUpcoming, result.Status)
		assert.False(t, result.Detail.IsOverdue)
	})
}
