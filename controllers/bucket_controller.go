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
	"github.com/modelward-dev/modelward/transformer"
	"github.com/modelward-dev/modelward/utils"
)

type BucketController struct {
	bucketRepository  shared.PastDueBucketRepository
	complianceService shared.ComplianceService
	reportService     shared.ReportService
}

func NewBucketController(bucketRepository shared.PastDueBucketRepository, complianceService shared.ComplianceService, reportService shared.ReportService) *BucketController {
	return &BucketController{
		bucketRepository:  bucketRepository,
		complianceService: complianceService,
		reportService:     reportService,
	}
}

func (h *BucketController) List(c shared.Context) error {
	buckets, err := h.bucketRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list buckets").WithInternal(err)
	}
	return c.JSON(http.StatusOK, utils.Map(buckets, transformer.BucketToDTO))
}

// Save simulates the change against the stored configuration before
// committing. A gap or overlap rejects the save with the offending day range
// in the message.
func (h *BucketController) Save(c shared.Context) error {
	var req dtos.BucketUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	candidate := models.PastDueBucket{
		Label:            req.Label,
		MinDays:          req.MinDays,
		MaxDays:          req.MaxDays,
		DowngradeNotches: req.DowngradeNotches,
	}

	if idParam := shared.GetParam(c, "bucketID"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return echo.NewHTTPError(400, "invalid bucket id")
		}
		candidate.ID = id
	}

	existing, err := h.bucketRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not load bucket configuration").WithInternal(err)
	}

	if err := riskrating.ValidateBucketChange(existing, candidate); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if err := h.bucketRepository.Save(nil, &candidate); err != nil {
		return echo.NewHTTPError(500, "could not save bucket").WithInternal(err)
	}

	h.invalidate()
	return c.JSON(http.StatusOK, transformer.BucketToDTO(candidate))
}

// Delete refuses to leave a hole in the covered day ranges.
func (h *BucketController) Delete(c shared.Context) error {
	id, err := uuid.Parse(shared.GetParam(c, "bucketID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid bucket id")
	}

	existing, err := h.bucketRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not load bucket configuration").WithInternal(err)
	}

	remaining := utils.Filter(existing, func(b models.PastDueBucket) bool {
		return b.ID != id
	})
	if len(remaining) == len(existing) {
		return echo.NewHTTPError(404, "bucket not found")
	}

	if err := riskrating.ValidateBuckets(remaining); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("deleting this bucket would break the configuration: %s", err.Error()))
	}

	if err := h.bucketRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete bucket").WithInternal(err)
	}

	h.invalidate()
	return c.NoContent(http.StatusNoContent)
}

func (h *BucketController) invalidate() {
	h.complianceService.InvalidateConfig()
	h.reportService.InvalidateCache()
}
