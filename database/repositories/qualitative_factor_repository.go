package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type qualitativeFactorRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.QualitativeFactor, *gorm.DB]
}

func NewQualitativeFactorRepository(db *gorm.DB) *qualitativeFactorRepository {
	return &qualitativeFactorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.QualitativeFactor](db),
	}
}
