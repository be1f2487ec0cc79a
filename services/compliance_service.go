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

package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/modelward-dev/modelward/compliance"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/monitoring"
	"github.com/modelward-dev/modelward/riskrating"
	"github.com/modelward-dev/modelward/shared"
	"github.com/modelward-dev/modelward/statemachine"
)

const configSnapshotKey = "ranking-config"

// configSnapshot bundles the admin-configured bucket and matrix state that
// every evaluation reads. It is loaded once per TTL so a full inventory sweep
// does not hit the configuration tables per model.
type configSnapshot struct {
	buckets []models.PastDueBucket
	matrix  riskrating.Matrix
}

type ComplianceService struct {
	modelRepository   shared.InventoryModelRepository
	policyRepository  shared.ValidationPolicyRepository
	requestRepository shared.ValidationRequestRepository
	bucketRepository  shared.PastDueBucketRepository
	matrixRepository  shared.ResidualRiskMatrixRepository
	historyRepository shared.StatusHistoryRepository

	snapshotCache *expirable.LRU[string, configSnapshot]
}

func NewComplianceService(modelRepository shared.InventoryModelRepository, policyRepository shared.ValidationPolicyRepository, requestRepository shared.ValidationRequestRepository, bucketRepository shared.PastDueBucketRepository, matrixRepository shared.ResidualRiskMatrixRepository, historyRepository shared.StatusHistoryRepository) *ComplianceService {
	return &ComplianceService{
		modelRepository:   modelRepository,
		policyRepository:  policyRepository,
		requestRepository: requestRepository,
		bucketRepository:  bucketRepository,
		matrixRepository:  matrixRepository,
		historyRepository: historyRepository,

		snapshotCache: expirable.NewLRU[string, configSnapshot](1, nil, 5*time.Minute),
	}
}

func (s *ComplianceService) InvalidateConfig() {
	s.snapshotCache.Purge()
}

func (s *ComplianceService) rankingConfig() (configSnapshot, error) {
	if snap, ok := s.snapshotCache.Get(configSnapshotKey); ok {
		return snap, nil
	}

	buckets, err := s.bucketRepository.All()
	if err != nil {
		return configSnapshot{}, err
	}
	if err := riskrating.ValidateBuckets(buckets); err != nil {
		// a broken bucket configuration disables the overdue penalty instead
		// of failing every single evaluation
		slog.Warn("past due bucket configuration is invalid, skipping overdue penalties", "err", err)
		buckets = nil
	}

	var matrix riskrating.Matrix
	active, err := s.matrixRepository.FindActive()
	if err != nil {
		return configSnapshot{}, err
	}
	if active != nil {
		matrix = riskrating.BuildMatrix(active.Entries)
	}

	snap := configSnapshot{buckets: buckets, matrix: matrix}
	s.snapshotCache.Add(configSnapshotKey, snap)
	return snap, nil
}

func (s *ComplianceService) EvaluateModel(model models.InventoryModel, today time.Time) (dtos.ModelComplianceDTO, error) {
	policy, err := s.policyRepository.FindByTierLabel(model.TierLabel)
	if err != nil {
		return dtos.ModelComplianceDTO{}, err
	}

	history, err := s.requestRepository.FindByModelID(model.ID)
	if err != nil {
		return dtos.ModelComplianceDTO{}, err
	}

	result := compliance.Evaluate(policy, history, today)
	approval := statemachine.ComputeApprovalStatus(model, history, result)

	snap, err := s.rankingConfig()
	if err != nil {
		return dtos.ModelComplianceDTO{}, err
	}

	ranking := riskrating.ComputeFinalRanking(model.TierLabel, result.Detail.DaysOverdue, snap.buckets, latestScorecardOutcome(history), snap.matrix)

	return dtos.ModelComplianceDTO{
		ModelID:           model.ID,
		ComplianceStatus:  result.Status,
		Detail:            result.Detail,
		ApprovalStatus:    approval.Status,
		ApprovalsComplete: approval.ApprovalsComplete,
		FinalRanking:      ranking,
	}, nil
}

func (s *ComplianceService) EvaluateModelByID(modelID uuid.UUID, today time.Time) (dtos.ModelComplianceDTO, error) {
	model, err := s.modelRepository.Read(modelID)
	if err != nil {
		return dtos.ModelComplianceDTO{}, err
	}
	return s.EvaluateModel(model, today)
}

// RefreshApprovalStatus recomputes the approval status from scratch and
// appends a journal row when it changed. The read of the last row and the
// append share one transaction so concurrent triggers cannot journal
// duplicate transitions.
func (s *ComplianceService) RefreshApprovalStatus(modelID uuid.UUID, trigger dtos.StatusTrigger) (*models.StatusHistory, error) {
	model, err := s.modelRepository.Read(modelID)
	if err != nil {
		return nil, err
	}

	history, err := s.requestRepository.FindByModelID(modelID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policyRepository.FindByTierLabel(model.TierLabel)
	if err != nil {
		return nil, err
	}

	result := compliance.Evaluate(policy, history, time.Now())
	approval := statemachine.ComputeApprovalStatus(model, history, result)

	var row *models.StatusHistory
	err = s.historyRepository.Transaction(func(tx shared.DB) error {
		last, err := s.historyRepository.FindLatestByModelID(tx, modelID)
		if err != nil {
			return err
		}

		row = statemachine.Transition(last, modelID, approval.Status, trigger)
		if row == nil {
			return nil
		}
		return s.historyRepository.Create(tx, row)
	})
	if err != nil {
		return nil, err
	}

	if row != nil {
		monitoring.StatusTransitionsAmount.WithLabelValues(string(trigger)).Inc()
	}
	return row, nil
}

// RefreshAll sweeps the active inventory and returns how many models actually
// changed status. Per-model failures are logged and skipped so one broken
// model cannot stall the whole recalculation.
func (s *ComplianceService) RefreshAll(trigger dtos.StatusTrigger) (int, error) {
	start := time.Now()

	ms, err := s.modelRepository.AllActive()
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, model := range ms {
		row, err := s.RefreshApprovalStatus(model.ID, trigger)
		if err != nil {
			slog.Error("could not refresh approval status", "modelID", model.ID, "err", err)
			continue
		}
		if row != nil {
			changed++
		}
	}

	monitoring.ComplianceRecalculationDuration.Observe(time.Since(start).Seconds())
	return changed, nil
}

// latestScorecardOutcome picks the scorecard of the most recently completed
// approved validation. Requests without an outcome are skipped.
func latestScorecardOutcome(history []models.ValidationRequest) *dtos.ScorecardOutcome {
	var latest *models.ValidationRequest
	for i, request := range history {
		if !request.IsApproved() || request.CompletionDate == nil || request.ScorecardOutcome == nil {
			continue
		}
		if latest == nil || request.CompletionDate.After(*latest.CompletionDate) {
			latest = &history[i]
		}
	}
	if latest == nil {
		return nil
	}
	return latest.ScorecardOutcome
}
