package transformer

import (
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
)

func BucketToDTO(b models.PastDueBucket) dtos.BucketDTO {
	return dtos.BucketDTO{
		Label:            b.Label,
		MinDays:          b.MinDays,
		MaxDays:          b.MaxDays,
		DowngradeNotches: b.DowngradeNotches,
	}
}

func StatusHistoryToDTO(h models.StatusHistory) dtos.StatusHistoryDTO {
	return dtos.StatusHistoryDTO{
		ID:        h.ID,
		ModelID:   h.ModelID,
		OldStatus: h.OldStatus,
		NewStatus: h.NewStatus,
		Trigger:   h.Trigger,
		CreatedAt: h.CreatedAt,
	}
}
