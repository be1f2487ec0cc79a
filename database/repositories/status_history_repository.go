package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type statusHistoryRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.StatusHistory, *gorm.DB]
}

func NewStatusHistoryRepository(db *gorm.DB) *statusHistoryRepository {
	return &statusHistoryRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.StatusHistory](db),
	}
}

// FindLatestByModelID accepts a tx so status recomputation can read the last
// journal row and append the next one atomically.
func (r *statusHistoryRepository) FindLatestByModelID(tx *gorm.DB, modelID uuid.UUID) (*models.StatusHistory, error) {
	var row models.StatusHistory
	err := r.GetDB(tx).Where("model_id = ?", modelID).Order("created_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *statusHistoryRepository) ListByModelID(modelID uuid.UUID) ([]models.StatusHistory, error) {
	var rows []models.StatusHistory
	if err := r.db.Where("model_id = ?", modelID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
