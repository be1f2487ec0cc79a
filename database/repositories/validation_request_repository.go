package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type validationRequestRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ValidationRequest, *gorm.DB]
}

func NewValidationRequestRepository(db *gorm.DB) *validationRequestRepository {
	return &validationRequestRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ValidationRequest](db),
	}
}

func (r *validationRequestRepository) FindByModelID(modelID uuid.UUID) ([]models.ValidationRequest, error) {
	var requests []models.ValidationRequest
	if err := r.db.Preload("Approvals").
		Where("model_id = ?", modelID).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
