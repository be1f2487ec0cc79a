package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
)

type PolicyController struct {
	policyRepository shared.ValidationPolicyRepository
	reportService    shared.ReportService
}

func NewPolicyController(policyRepository shared.ValidationPolicyRepository, reportService shared.ReportService) *PolicyController {
	return &PolicyController{
		policyRepository: policyRepository,
		reportService:    reportService,
	}
}

func (h *PolicyController) List(c shared.Context) error {
	policies, err := h.policyRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list validation policies").WithInternal(err)
	}
	return c.JSON(http.StatusOK, policies)
}

func (h *PolicyController) Create(c shared.Context) error {
	req, err := bindPolicyRequest(c)
	if err != nil {
		return err
	}

	existing, err := h.policyRepository.FindByTierLabel(req.TierLabel)
	if err != nil {
		return echo.NewHTTPError(500, "could not check existing policies").WithInternal(err)
	}
	if existing != nil {
		return echo.NewHTTPError(409, fmt.Sprintf("a policy for tier %q already exists", req.TierLabel))
	}

	policy := models.ValidationPolicy{
		TierLabel:              req.TierLabel,
		FrequencyMonths:        req.FrequencyMonths,
		GracePeriodMonths:      req.GracePeriodMonths,
		SubmissionLeadTimeDays: req.SubmissionLeadTimeDays,
	}

	if err := h.policyRepository.Create(nil, &policy); err != nil {
		return echo.NewHTTPError(500, "could not create validation policy").WithInternal(err)
	}

	h.invalidate()
	return c.JSON(http.StatusCreated, policy)
}

func (h *PolicyController) Update(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "policyID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid policy id")
	}

	req, err := bindPolicyRequest(c)
	if err != nil {
		return err
	}

	policy, err := h.policyRepository.Read(id)
	if err != nil {
		return echo.NewHTTPError(404, "policy not found").WithInternal(err)
	}

	policy.TierLabel = req.TierLabel
	policy.FrequencyMonths = req.FrequencyMonths
	policy.GracePeriodMonths = req.GracePeriodMonths
	policy.SubmissionLeadTimeDays = req.SubmissionLeadTimeDays

	if err := h.policyRepository.Save(nil, &policy); err != nil {
		return echo.NewHTTPError(500, "could not update validation policy").WithInternal(err)
	}

	h.invalidate()
	return c.JSON(http.StatusOK, policy)
}

func (h *PolicyController) Delete(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "policyID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid policy id")
	}

	if err := h.policyRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete validation policy").WithInternal(err)
	}

	h.invalidate()
	return c.NoContent(http.StatusNoContent)
}

func (h *PolicyController) invalidate() {
	h.reportService.InvalidateCache()
}

func bindPolicyRequest(c shared.Context) (dtos.PolicyUpsertRequest, error) {
	var req dtos.PolicyUpsertRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return req, echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return req, nil
}
