package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type inventoryModelRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.InventoryModel, *gorm.DB]
}

func NewInventoryModelRepository(db *gorm.DB) *inventoryModelRepository {
	return &inventoryModelRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.InventoryModel](db),
	}
}

func (r *inventoryModelRepository) FindBySlug(slug string) (models.InventoryModel, error) {
	var model models.InventoryModel
	err := r.db.Where("slug = ?", slug).First(&model).Error
	return model, err
}

func (r *inventoryModelRepository) AllActive() ([]models.InventoryModel, error) {
	var ms []models.InventoryModel
	if err := r.db.Where("active = true").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}
