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

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/database"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
	"github.com/modelward-dev/modelward/transformer"
	"github.com/modelward-dev/modelward/utils"
)

type ModelController struct {
	modelRepository      shared.InventoryModelRepository
	historyRepository    shared.StatusHistoryRepository
	assessmentRepository shared.RiskAssessmentRepository
	complianceService    shared.ComplianceService
	assessmentService    shared.AssessmentService
}

func NewModelController(modelRepository shared.InventoryModelRepository, historyRepository shared.StatusHistoryRepository, assessmentRepository shared.RiskAssessmentRepository, complianceService shared.ComplianceService, assessmentService shared.AssessmentService) *ModelController {
	return &ModelController{
		modelRepository:      modelRepository,
		historyRepository:    historyRepository,
		assessmentRepository: assessmentRepository,
		complianceService:    complianceService,
		assessmentService:    assessmentService,
	}
}

func (h *ModelController) Create(c shared.Context) error {
	var req dtos.ModelCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	model := models.InventoryModel{
		Name:            req.Name,
		Slug:            shared.SanitizeParam(req.Slug),
		TierLabel:       req.TierLabel,
		Active:          true,
		UseApprovalDate: req.UseApprovalDate,
	}

	if err := h.modelRepository.Create(nil, &model); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a model with this slug already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create model").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, model)
}

func (h *ModelController) List(c shared.Context) error {
	ms, err := h.modelRepository.AllActive()
	if err != nil {
		return echo.NewHTTPError(500, "could not list models").WithInternal(err)
	}
	return c.JSON(http.StatusOK, ms)
}

func (h *ModelController) Read(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// Compliance evaluates the full picture for a single model: compliance
// status, approval status and the overdue-adjusted final ranking.
func (h *ModelController) Compliance(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}

	result, err := h.complianceService.EvaluateModel(model, time.Now())
	if err != nil {
		return echo.NewHTTPError(500, "could not evaluate model compliance").WithInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ModelController) StatusHistory(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}

	rows, err := h.historyRepository.ListByModelID(model.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read status history").WithInternal(err)
	}

	return c.JSON(http.StatusOK, utils.Map(rows, transformer.StatusHistoryToDTO))
}

// RefreshStatus forces a status recompute for one model. Returns the journal
// row on change, 204 otherwise.
func (h *ModelController) RefreshStatus(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}

	row, err := h.complianceService.RefreshApprovalStatus(model.ID, dtos.TriggerManualRefresh)
	if err != nil {
		return echo.NewHTTPError(500, "could not refresh approval status").WithInternal(err)
	}
	if row == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, transformer.StatusHistoryToDTO(*row))
}

func (h *ModelController) EffectiveRisk(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}

	results, err := h.assessmentService.EffectiveByModel(model.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not compute effective risk").WithInternal(err)
	}

	return c.JSON(http.StatusOK, results)
}

func (h *ModelController) SaveAssessment(c shared.Context) error {
	model, err := h.readModel(c)
	if err != nil {
		return err
	}

	var req dtos.AssessmentUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	assessment, err := h.mergeAssessment(model.ID, req)
	if err != nil {
		return err
	}

	result, err := h.assessmentService.SaveAssessment(&assessment)
	if err != nil {
		return echo.NewHTTPError(500, "could not save risk assessment").WithInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}

// mergeAssessment applies the request on top of the stored assessment for the
// (model, region) pair, creating it if it does not exist yet. Existing factor
// rows keep their id so the weight snapshot survives the update.
func (h *ModelController) mergeAssessment(modelID uuid.UUID, req dtos.AssessmentUpsertRequest) (models.RiskAssessment, error) {
	assessment, err := h.assessmentRepository.FindByModelAndRegion(modelID, req.Region)
	if err != nil {
		// not found is fine, we create a fresh assessment
		assessment = models.RiskAssessment{
			ModelID: modelID,
			Region:  req.Region,
		}
	}

	assessment.QuantitativeRating = req.QuantitativeRating
	assessment.QuantitativeOverride = req.QuantitativeOverride
	assessment.QualitativeOverride = req.QualitativeOverride
	assessment.TierOverride = req.TierOverride

	existingByFactor := make(map[uuid.UUID]models.FactorAssessment, len(assessment.FactorAssessments))
	for _, factorAssessment := range assessment.FactorAssessments {
		existingByFactor[factorAssessment.FactorID] = factorAssessment
	}

	merged := make([]models.FactorAssessment, 0, len(req.Factors))
	for _, factor := range req.Factors {
		if factor.Rating != nil && !factor.Rating.IsRating() {
			return models.RiskAssessment{}, echo.NewHTTPError(400, fmt.Sprintf("%s is not a valid factor rating", *factor.Rating))
		}

		if existing, ok := existingByFactor[factor.FactorID]; ok {
			existing.Rating = factor.Rating
			merged = append(merged, existing)
			continue
		}
		merged = append(merged, models.FactorAssessment{
			FactorID: factor.FactorID,
			Rating:   factor.Rating,
		})
	}
	assessment.FactorAssessments = merged

	return assessment, nil
}

func (h *ModelController) readModel(c shared.Context) (models.InventoryModel, error) {
	id, err := uuid.Parse(shared.GetParam(c, "modelID"))
	if err != nil {
		return models.InventoryModel{}, echo.NewHTTPError(400, "invalid model id")
	}

	model, err := h.modelRepository.Read(id)
	if err != nil {
		return models.InventoryModel{}, echo.NewHTTPError(404, "model not found").WithInternal(err)
	}
	return model, nil
}
