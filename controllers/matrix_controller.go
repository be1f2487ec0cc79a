package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/riskrating"
	"github.com/modelward-dev/modelward/shared"
)

var residualTiers = []dtos.ResidualTier{
	dtos.ResidualTierHigh,
	dtos.ResidualTierMedium,
	dtos.ResidualTierLow,
	dtos.ResidualTierVeryLow,
}

type MatrixController struct {
	matrixRepository  shared.ResidualRiskMatrixRepository
	complianceService shared.ComplianceService
	reportService     shared.ReportService
}

func NewMatrixController(matrixRepository shared.ResidualRiskMatrixRepository, complianceService shared.ComplianceService, reportService shared.ReportService) *MatrixController {
	return &MatrixController{
		matrixRepository:  matrixRepository,
		complianceService: complianceService,
		reportService:     reportService,
	}
}

func (h *MatrixController) List(c shared.Context) error {
	matrices, err := h.matrixRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list matrices").WithInternal(err)
	}
	return c.JSON(http.StatusOK, matrices)
}

func (h *MatrixController) Active(c shared.Context) error {
	matrix, err := h.matrixRepository.FindActive()
	if err != nil {
		return echo.NewHTTPError(500, "could not read active matrix").WithInternal(err)
	}
	if matrix == nil {
		return echo.NewHTTPError(404, "no active matrix configured")
	}
	return c.JSON(http.StatusOK, matrix)
}

// Create stores a new matrix configuration in inactive state. The
// configuration must cover every tier and outcome combination, partial
// matrices would make the final ranking undefined for some models.
func (h *MatrixController) Create(c shared.Context) error {
	var req dtos.MatrixUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := validateMatrixCompleteness(req.Entries); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	matrix := models.ResidualRiskMatrix{
		Name:   req.Name,
		Active: false,
	}
	for _, entry := range req.Entries {
		matrix.Entries = append(matrix.Entries, models.ResidualRiskMatrixEntry{
			Tier:    entry.Tier,
			Outcome: entry.Outcome,
			Rating:  entry.Rating,
		})
	}

	if err := h.matrixRepository.Create(nil, &matrix); err != nil {
		return echo.NewHTTPError(500, "could not create matrix").WithInternal(err)
	}

	return c.JSON(http.StatusCreated, matrix)
}

func (h *MatrixController) Activate(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "matrixID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid matrix id")
	}

	if err := h.matrixRepository.MakeActive(id); err != nil {
		return echo.NewHTTPError(404, "matrix not found").WithInternal(err)
	}

	h.complianceService.InvalidateConfig()
	h.reportService.InvalidateCache()
	return c.NoContent(http.StatusNoContent)
}

func validateMatrixCompleteness(entries []dtos.MatrixEntryRequest) error {
	covered := make(map[dtos.ResidualTier]map[dtos.ScorecardOutcome]bool)
	for _, entry := range entries {
		if covered[entry.Tier] == nil {
			covered[entry.Tier] = make(map[dtos.ScorecardOutcome]bool)
		}
		if covered[entry.Tier][entry.Outcome] {
			return fmt.Errorf("duplicate entry for tier %q and outcome %q", entry.Tier, entry.Outcome)
		}
		covered[entry.Tier][entry.Outcome] = true
	}

	for _, tier := range residualTiers {
		for _, outcome := range riskrating.ScorecardOrder {
			if !covered[tier][outcome] {
				return fmt.Errorf("matrix is missing the cell for tier %q and outcome %q", tier, outcome)
			}
		}
	}
	return nil
}
