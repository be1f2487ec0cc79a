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
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
	"github.com/modelward-dev/modelward/utils"
)

// RequestController drives the validation request lifecycle. Every event that
// can move the model's approval status triggers a recompute with the matching
// trigger, so the status journal names what actually happened.
type RequestController struct {
	modelRepository    shared.InventoryModelRepository
	requestRepository  shared.ValidationRequestRepository
	approvalRepository shared.ApprovalRecordRepository
	complianceService  shared.ComplianceService
	reportService      shared.ReportService
}

func NewRequestController(modelRepository shared.InventoryModelRepository, requestRepository shared.ValidationRequestRepository, approvalRepository shared.ApprovalRecordRepository, complianceService shared.ComplianceService, reportService shared.ReportService) *RequestController {
	return &RequestController{
		modelRepository:    modelRepository,
		requestRepository:  requestRepository,
		approvalRepository: approvalRepository,
		complianceService:  complianceService,
		reportService:      reportService,
	}
}

func (h *RequestController) List(c shared.Context) error {
	modelID, err := uuid.Parse(shared.GetParam(c, "modelID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid model id")
	}

	requests, err := h.requestRepository.FindByModelID(modelID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list validation requests").WithInternal(err)
	}

	return c.JSON(http.StatusOK, requests)
}

func (h *RequestController) Create(c shared.Context) error {
	modelID, err := uuid.Parse(shared.GetParam(c, "modelID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid model id")
	}
	if _, err := h.modelRepository.Read(modelID); err != nil {
		return echo.NewHTTPError(404, "model not found").WithInternal(err)
	}

	var req dtos.RequestCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	request := models.ValidationRequest{
		ModelID: modelID,
		Type:    req.Type,
		Status:  dtos.RequestStatusIntake,
	}
	if err := h.requestRepository.Create(nil, &request); err != nil {
		return echo.NewHTTPError(500, "could not create validation request").WithInternal(err)
	}

	h.refresh(modelID, dtos.TriggerRequestCreated)
	return c.JSON(http.StatusCreated, request)
}

func (h *RequestController) UpdateStatus(c shared.Context) error {
	request, err := h.readRequest(c)
	if err != nil {
		return err
	}
	if request.Status.IsTerminal() {
		return echo.NewHTTPError(409, "validation request is already closed")
	}

	var req dtos.RequestStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	request.Status = req.Status
	if err := h.requestRepository.Save(nil, &request); err != nil {
		return echo.NewHTTPError(500, "could not update validation request").WithInternal(err)
	}

	h.refresh(request.ModelID, dtos.TriggerManualRefresh)
	return c.JSON(http.StatusOK, request)
}

// SubmissionReceived records the arrival of the revalidation submission, which
// starts the validation lead time clock.
func (h *RequestController) SubmissionReceived(c shared.Context) error {
	request, err := h.readRequest(c)
	if err != nil {
		return err
	}
	if request.Status.IsTerminal() {
		return echo.NewHTTPError(409, "validation request is already closed")
	}

	var req dtos.SubmissionReceivedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	received := time.Now()
	if req.ReceivedDate != nil {
		received = *req.ReceivedDate
	}
	request.SubmissionReceivedDate = &received

	if err := h.requestRepository.Save(nil, &request); err != nil {
		return echo.NewHTTPError(500, "could not update validation request").WithInternal(err)
	}

	h.refresh(request.ModelID, dtos.TriggerSubmissionReceived)
	return c.JSON(http.StatusOK, request)
}

// Approve closes the request with an approval and records the completion data
// the calculators anchor their windows on.
func (h *RequestController) Approve(c shared.Context) error {
	request, err := h.readRequest(c)
	if err != nil {
		return err
	}
	if request.Status.IsTerminal() {
		return echo.NewHTTPError(409, "validation request is already closed")
	}

	var req dtos.RequestApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	if request.Type == dtos.ValidationTypeInterim && req.ExpirationDate == nil {
		return echo.NewHTTPError(400, "interim validations require an expiration date")
	}

	request.Status = dtos.RequestStatusApproved
	request.CompletionDate = utils.Ptr(req.CompletionDate)
	request.ScorecardOutcome = req.ScorecardOutcome
	request.ExpirationDate = req.ExpirationDate

	if err := h.requestRepository.Save(nil, &request); err != nil {
		return echo.NewHTTPError(500, "could not approve validation request").WithInternal(err)
	}

	h.refresh(request.ModelID, dtos.TriggerValidationApproved)
	return c.JSON(http.StatusOK, request)
}

func (h *RequestController) AddApproval(c shared.Context) error {
	request, err := h.readRequest(c)
	if err != nil {
		return err
	}

	var req dtos.ApprovalCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	approval := models.ApprovalRecord{
		ValidationRequestID: request.ID,
		Role:                req.Role,
		Required:            req.Required,
		Status:              dtos.ApprovalDecisionPending,
	}
	if err := h.approvalRepository.Create(nil, &approval); err != nil {
		return echo.NewHTTPError(500, "could not create approval record").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, approval)
}

func (h *RequestController) DecideApproval(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "approvalID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid approval id")
	}
	approval, err := h.approvalRepository.Read(id)
	if err != nil {
		return echo.NewHTTPError(404, "approval record not found").WithInternal(err)
	}

	var req dtos.ApprovalDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	approval.Status = req.Status
	approval.Voided = req.Voided
	if err := h.approvalRepository.Save(nil, &approval); err != nil {
		return echo.NewHTTPError(500, "could not update approval record").WithInternal(err)
	}

	return c.JSON(http.StatusOK, approval)
}

// refresh journals a status change and drops the cached report. A failed
// recompute must not fail the write that already happened, the daemon sweep
// picks it up.
func (h *RequestController) refresh(modelID uuid.UUID, trigger dtos.StatusTrigger) {
	if _, err := h.complianceService.RefreshApprovalStatus(modelID, trigger); err != nil {
		slog.Error("could not refresh approval status after request event", "modelID", modelID, "trigger", trigger, "err", err)
	}
	h.reportService.InvalidateCache()
}

func (h *RequestController) readRequest(c shared.Context) (models.ValidationRequest, error) {
	id, err := uuid.Parse(shared.GetParam(c, "requestID"))
	if err != nil {
		return models.ValidationRequest{}, echo.NewHTTPError(400, "invalid request id")
	}

	request, err := h.requestRepository.Read(id)
	if err != nil {
		return models.ValidationRequest{}, echo.NewHTTPError(404, "validation request not found").WithInternal(err)
	}
	return request, nil
}
