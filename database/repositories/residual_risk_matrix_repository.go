package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type residualRiskMatrixRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ResidualRiskMatrix, *gorm.DB]
}

func NewResidualRiskMatrixRepository(db *gorm.DB) *residualRiskMatrixRepository {
	return &residualRiskMatrixRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ResidualRiskMatrix](db),
	}
}

func (r *residualRiskMatrixRepository) FindActive() (*models.ResidualRiskMatrix, error) {
	var matrix models.ResidualRiskMatrix
	err := r.db.Preload("Entries").Where("active = true").First(&matrix).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &matrix, nil
}

// MakeActive flips the active flag to the given matrix. The deactivate and
// activate steps share one transaction so there is never a moment with two
// active configurations.
func (r *residualRiskMatrixRepository) MakeActive(id uuid.UUID) error {
	return r.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ResidualRiskMatrix{}).Where("active = true").Update("active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.ResidualRiskMatrix{}).Where("id = ?", id).Update("active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
