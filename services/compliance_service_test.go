package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
	"github.com/modelward-dev/modelward/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// The fakes embed the repository interface and only implement the methods the
// service actually calls. Anything else panics, which is exactly what we want
// in a test.

type fakeModelRepository struct {
	shared.InventoryModelRepository
	models []models.InventoryModel
}

func (f *fakeModelRepository) AllActive() ([]models.InventoryModel, error) {
	return f.models, nil
}

func (f *fakeModelRepository) Read(id uuid.UUID) (models.InventoryModel, error) {
	for _, m := range f.models {
		if m.ID == id {
			return m, nil
		}
	}
	return models.InventoryModel{}, fmt.Errorf("model %s not found", id)
}

type fakePolicyRepository struct {
	shared.ValidationPolicyRepository
	policies map[string]*models.ValidationPolicy
}

func (f *fakePolicyRepository) FindByTierLabel(tierLabel string) (*models.ValidationPolicy, error) {
	return f.policies[tierLabel], nil
}

type fakeRequestRepository struct {
	shared.ValidationRequestRepository
	byModel map[uuid.UUID][]models.ValidationRequest
}

func (f *fakeRequestRepository) FindByModelID(modelID uuid.UUID) ([]models.ValidationRequest, error) {
	return f.byModel[modelID], nil
}

type fakeBucketRepository struct {
	shared.PastDueBucketRepository
	buckets  []models.PastDueBucket
	allCalls int
}

func (f *fakeBucketRepository) All() ([]models.PastDueBucket, error) {
	f.allCalls++
	return f.buckets, nil
}

type fakeMatrixRepository struct {
	shared.ResidualRiskMatrixRepository
	active *models.ResidualRiskMatrix
}

func (f *fakeMatrixRepository) FindActive() (*models.ResidualRiskMatrix, error) {
	return f.active, nil
}

type fakeHistoryRepository struct {
	shared.StatusHistoryRepository
	rows []models.StatusHistory
}

func (f *fakeHistoryRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (f *fakeHistoryRepository) FindLatestByModelID(tx shared.DB, modelID uuid.UUID) (*models.StatusHistory, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].ModelID == modelID {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeHistoryRepository) Create(tx shared.DB, row *models.StatusHistory) error {
	f.rows = append(f.rows, *row)
	return nil
}

func contiguousBuckets() []models.PastDueBucket {
	return []models.PastDueBucket{
		{Label: "0-30", MaxDays: utils.Ptr(30)},
		{Label: "31-90", MinDays: utils.Ptr(31), MaxDays: utils.Ptr(90), DowngradeNotches: 1},
		{Label: "90+", MinDays: utils.Ptr(91), DowngradeNotches: 2},
	}
}

func highTierMatrix() *models.ResidualRiskMatrix {
	return &models.ResidualRiskMatrix{
		Name:   "default",
		Active: true,
		Entries: []models.ResidualRiskMatrixEntry{
			{Tier: dtos.ResidualTierHigh, Outcome: dtos.ScorecardYellow, Rating: dtos.RiskLevelMedium},
			{Tier: dtos.ResidualTierHigh, Outcome: dtos.ScorecardRed, Rating: dtos.RiskLevelHigh},
		},
	}
}

func approvedComprehensive(completion time.Time, outcome dtos.ScorecardOutcome) models.ValidationRequest {
	return models.ValidationRequest{
		Type:             dtos.ValidationTypeComprehensive,
		Status:           dtos.RequestStatusApproved,
		CompletionDate:   utils.Ptr(completion),
		ScorecardOutcome: utils.Ptr(outcome),
		Approvals: []models.ApprovalRecord{
			{Role: "validator", Required: true, Status: dtos.ApprovalDecisionApproved},
		},
	}
}

func newServiceUnderTest(model models.InventoryModel, policy *models.ValidationPolicy, history []models.ValidationRequest, buckets []models.PastDueBucket, matrix *models.ResidualRiskMatrix) (*ComplianceService, *fakeBucketRepository, *fakeHistoryRepository) {
	bucketRepository := &fakeBucketRepository{buckets: buckets}
	historyRepository := &fakeHistoryRepository{}

	svc := NewComplianceService(
		&fakeModelRepository{models: []models.InventoryModel{model}},
		&fakePolicyRepository{policies: map[string]*models.ValidationPolicy{model.TierLabel: policy}},
		&fakeRequestRepository{byModel: map[uuid.UUID][]models.ValidationRequest{model.ID: history}},
		bucketRepository,
		&fakeMatrixRepository{active: matrix},
		historyRepository,
	)
	return svc, bucketRepository, historyRepository
}

func TestEvaluateModel(t *testing.T) {
	policy := &models.ValidationPolicy{TierLabel: "High", FrequencyMonths: 12, GracePeriodMonths: 3, SubmissionLeadTimeDays: 60}
	model := models.InventoryModel{Model: models.Model{ID: uuid.New()}, Name: "pd-corp", Slug: "pd-corp", TierLabel: "High", Active: true}

	t.Run("should downgrade the scorecard by the matching bucket and look the result up in the matrix", func(t *testing.T) {
		history := []models.ValidationRequest{approvedComprehensive(day(2023, time.January, 15), dtos.ScorecardYellow)}
		svc, _, _ := newServiceUnderTest(model, policy, history, contiguousBuckets(), highTierMatrix())

		// grace ended 2024-04-15, so the model is 412 days overdue
		result, err := svc.EvaluateModel(model, day(2025, time.June, 1))
		require.NoError(t, err)

		assert.Equal(t, dtos.ComplianceStatusSubmissionOverdue, result.ComplianceStatus)
		assert.True(t, result.Detail.IsOverdue)
		assert.Equal(t, dtos.ApprovalStatusExpired, result.ApprovalStatus)
		assert.True(t, result.ApprovalsComplete)

		require.NotNil(t, result.FinalRanking)
		assert.Equal(t, dtos.ScorecardYellow, result.FinalRanking.ScorecardOutcome)
		assert.Equal(t, dtos.ScorecardRed, result.FinalRanking.AdjustedOutcome)
		assert.Equal(t, 2, result.FinalRanking.DowngradeNotches)
		assert.Equal(t, "90+", *result.FinalRanking.BucketLabel)
		assert.Equal(t, dtos.RiskLevelHigh, result.FinalRanking.FinalRating)
		assert.Equal(t, dtos.RiskLevelMedium, result.FinalRanking.BaselineRating)
	})

	t.Run("should report no policy configured when the tier has no policy", func(t *testing.T) {
		history := []models.ValidationRequest{approvedComprehensive(day(2023, time.January, 15), dtos.ScorecardYellow)}
		svc, _, _ := newServiceUnderTest(model, nil, history, contiguousBuckets(), highTierMatrix())

		result, err := svc.EvaluateModel(model, day(2025, time.June, 1))
		require.NoError(t, err)

		assert.Equal(t, dtos.ComplianceStatusNoPolicyConfigured, result.ComplianceStatus)
		assert.False(t, result.Detail.IsOverdue)
	})

	t.Run("should skip the overdue penalty when the bucket configuration is broken", func(t *testing.T) {
		// gap between 30 and 60 days
		broken := []models.PastDueBucket{
			{Label: "0-30", MaxDays: utils.Ptr(30)},
			{Label: "60+", MinDays: utils.Ptr(60), DowngradeNotches: 2},
		}
		history := []models.ValidationRequest{approvedComprehensive(day(2023, time.January, 15), dtos.ScorecardYellow)}
		svc, _, _ := newServiceUnderTest(model, policy, history, broken, highTierMatrix())

		result, err := svc.EvaluateModel(model, day(2025, time.June, 1))
		require.NoError(t, err)

		require.NotNil(t, result.FinalRanking)
		assert.Equal(t, 0, result.FinalRanking.DowngradeNotches)
		assert.Nil(t, result.FinalRanking.BucketLabel)
		assert.Equal(t, dtos.ScorecardYellow, result.FinalRanking.AdjustedOutcome)
		assert.Equal(t, dtos.RiskLevelMedium, result.FinalRanking.FinalRating)
	})

	t.Run("should return no ranking when no matrix is active", func(t *testing.T) {
		history := []models.ValidationRequest{approvedComprehensive(day(2023, time.January, 15), dtos.ScorecardYellow)}
		svc, _, _ := newServiceUnderTest(model, policy, history, contiguousBuckets(), nil)

		result, err := svc.EvaluateModel(model, day(2025, time.June, 1))
		require.NoError(t, err)

		assert.Nil(t, result.FinalRanking)
	})

	t.Run("should load the bucket and matrix configuration once until invalidated", func(t *testing.T) {
		history := []models.ValidationRequest{approvedComprehensive(day(2023, time.January, 15), dtos.ScorecardYellow)}
		svc, bucketRepository, _ := newServiceUnderTest(model, policy, history, contiguousBuckets(), highTierMatrix())

		_, err := svc.EvaluateModel(model, day(2025, time.June, 1))
		require.NoError(t, err)
		_, err = svc.EvaluateModel(model, day(2025, time.June, 2))
		require.NoError(t, err)
		assert.Equal(t, 1, bucketRepository.allCalls)

		svc.InvalidateConfig()
		_, err = svc.EvaluateModel(model, day(2025, time.June, 3))
		require.NoError(t, err)
		assert.Equal(t, 2, bucketRepository.allCalls)
	})
}

func TestRefreshApprovalStatus(t *testing.T) {
	policy := &models.ValidationPolicy{TierLabel: "High", FrequencyMonths: 12, GracePeriodMonths: 3, SubmissionLeadTimeDays: 60}
	model := models.InventoryModel{Model: models.Model{ID: uuid.New()}, Name: "pd-corp", Slug: "pd-corp", TierLabel: "High", Active: true}
	// completed long ago, so the model is expired no matter when the test runs
	history := []models.ValidationRequest{approvedComprehensive(day(2019, time.March, 1), dtos.ScorecardYellow)}

	t.Run("should journal the first transition and stay silent on a recompute", func(t *testing.T) {
		svc, _, historyRepository := newServiceUnderTest(model, policy, history, contiguousBuckets(), highTierMatrix())

		row, err := svc.RefreshApprovalStatus(model.ID, dtos.TriggerManualRefresh)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Nil(t, row.OldStatus)
		assert.Equal(t, dtos.ApprovalStatusExpired, row.NewStatus)
		assert.Equal(t, dtos.TriggerManualRefresh, row.Trigger)
		assert.Len(t, historyRepository.rows, 1)

		row, err = svc.RefreshApprovalStatus(model.ID, dtos.TriggerScheduledRecalculation)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Len(t, historyRepository.rows, 1)
	})

	t.Run("refresh all should count only actual changes", func(t *testing.T) {
		svc, _, historyRepository := newServiceUnderTest(model, policy, history, contiguousBuckets(), highTierMatrix())

		changed, err := svc.RefreshAll(dtos.TriggerScheduledRecalculation)
		require.NoError(t, err)
		assert.Equal(t, 1, changed)
		assert.Len(t, historyRepository.rows, 1)

		changed, err = svc.RefreshAll(dtos.TriggerScheduledRecalculation)
		require.NoError(t, err)
		assert.Equal(t, 0, changed)
	})
}

func TestLatestScorecardOutcome(t *testing.T) {
	older := approvedComprehensive(day(2022, time.May, 1), dtos.ScorecardGreen)
	newer := approvedComprehensive(day(2024, time.May, 1), dtos.ScorecardYellowMinus)

	withoutOutcome := approvedComprehensive(day(2025, time.May, 1), dtos.ScorecardRed)
	withoutOutcome.ScorecardOutcome = nil

	rejected := approvedComprehensive(day(2025, time.June, 1), dtos.ScorecardRed)
	rejected.Status = dtos.RequestStatusRejected

	outcome := latestScorecardOutcome([]models.ValidationRequest{older, withoutOutcome, newer, rejected})
	require.NotNil(t, outcome)
	assert.Equal(t, dtos.ScorecardYellowMinus, *outcome)

	assert.Nil(t, latestScorecardOutcome(nil))
	assert.Nil(t, latestScorecardOutcome([]models.ValidationRequest{withoutOutcome, rejected}))
}
