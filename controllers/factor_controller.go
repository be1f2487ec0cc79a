package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/shared"
)

type factorUpsertRequest struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0,lte=1"`
}

type FactorController struct {
	factorRepository shared.QualitativeFactorRepository
}

func NewFactorController(factorRepository shared.QualitativeFactorRepository) *FactorController {
	return &FactorController{
		factorRepository: factorRepository,
	}
}

func (h *FactorController) List(c shared.Context) error {
	factors, err := h.factorRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list qualitative factors").WithInternal(err)
	}
	return c.JSON(http.StatusOK, factors)
}

// Save changes only the factor's current weight. Snapshots inside existing
// assessments are untouched.
func (h *FactorController) Save(c shared.Context) error {
	var req factorUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	factor := models.QualitativeFactor{
		Name:   req.Name,
		Weight: req.Weight,
	}

	if idParam := shared.GetParam(c, "factorID"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return echo.NewHTTPError(400, "invalid factor id")
		}
		factor.ID = id
	}

	if err := h.factorRepository.Save(nil, &factor); err != nil {
		return echo.NewHTTPError(500, "could not save qualitative factor").WithInternal(err)
	}

	return c.JSON(http.StatusOK, factor)
}

func (h *FactorController) Delete(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "factorID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid factor id")
	}

	if err := h.factorRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete qualitative factor").WithInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
