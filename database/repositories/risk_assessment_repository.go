package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type riskAssessmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.RiskAssessment, *gorm.DB]
}

func NewRiskAssessmentRepository(db *gorm.DB) *riskAssessmentRepository {
	return &riskAssessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.RiskAssessment](db),
	}
}

func (r *riskAssessmentRepository) FindByModelAndRegion(modelID uuid.UUID, region *string) (models.RiskAssessment, error) {
	var assessment models.RiskAssessment
	query := r.db.Preload("FactorAssessments").Where("model_id = ?", modelID)
	if region == nil {
		query = query.Where("region IS NULL")
	} else {
		query = query.Where("region = ?", *region)
	}
	err := query.First(&assessment).Error
	return assessment, err
}

func (r *riskAssessmentRepository) ListByModelID(modelID uuid.UUID) ([]models.RiskAssessment, error) {
	var assessments []models.RiskAssessment
	if err := r.db.Preload("FactorAssessments").
		Where("model_id = ?", modelID).
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
