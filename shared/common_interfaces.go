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

package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/utils"
)

type InventoryModelRepository interface {
	utils.Repository[uuid.UUID, models.InventoryModel, DB]
	FindBySlug(slug string) (models.InventoryModel, error)
	AllActive() ([]models.InventoryModel, error)
}

type ValidationPolicyRepository interface {
	utils.Repository[uuid.UUID, models.ValidationPolicy, DB]
	FindByTierLabel(tierLabel string) (*models.ValidationPolicy, error)
}

type ValidationRequestRepository interface {
	utils.Repository[uuid.UUID, models.ValidationRequest, DB]
	// FindByModelID returns the full validation history of a model including
	// its approval records, oldest first.
	FindByModelID(modelID uuid.UUID) ([]models.ValidationRequest, error)
}

type ApprovalRecordRepository interface {
	utils.Repository[uuid.UUID, models.ApprovalRecord, DB]
}

type PastDueBucketRepository interface {
	utils.Repository[uuid.UUID, models.PastDueBucket, DB]
}

type ResidualRiskMatrixRepository interface {
	utils.Repository[uuid.UUID, models.ResidualRiskMatrix, DB]
	// FindActive returns the active matrix configuration with its entries, or
	// nil if none is active.
	FindActive() (*models.ResidualRiskMatrix, error)
	// MakeActive activates the given matrix and deactivates every other one
	// inside a single transaction.
	MakeActive(id uuid.UUID) error
}

type QualitativeFactorRepository interface {
	utils.Repository[uuid.UUID, models.QualitativeFactor, DB]
}

type RiskAssessmentRepository interface {
	utils.Repository[uuid.UUID, models.RiskAssessment, DB]
	FindByModelAndRegion(modelID uuid.UUID, region *string) (models.RiskAssessment, error)
	ListByModelID(modelID uuid.UUID) ([]models.RiskAssessment, error)
}

type StatusHistoryRepository interface {
	utils.Repository[uuid.UUID, models.StatusHistory, DB]
	FindLatestByModelID(tx DB, modelID uuid.UUID) (*models.StatusHistory, error)
	ListByModelID(modelID uuid.UUID) ([]models.StatusHistory, error)
}

type ComplianceService interface {
	EvaluateModel(model models.InventoryModel, today time.Time) (dtos.ModelComplianceDTO, error)
	EvaluateModelByID(modelID uuid.UUID, today time.Time) (dtos.ModelComplianceDTO, error)
	// RefreshApprovalStatus recomputes the approval status and journals a
	// status history row if it changed. Returns nil when nothing changed.
	RefreshApprovalStatus(modelID uuid.UUID, trigger dtos.StatusTrigger) (*models.StatusHistory, error)
	RefreshAll(trigger dtos.StatusTrigger) (int, error)
	// InvalidateConfig drops the cached bucket and matrix configuration.
	InvalidateConfig()
}

type AssessmentService interface {
	SaveAssessment(assessment *models.RiskAssessment) (dtos.EffectiveRiskDTO, error)
	EffectiveByModel(modelID uuid.UUID) ([]dtos.EffectiveRiskDTO, error)
}

type ReportService interface {
	KPIReport(today time.Time) (dtos.KPIReportDTO, error)
	InvalidateCache()
}
