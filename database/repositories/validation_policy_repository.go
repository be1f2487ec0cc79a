package repositories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type validationPolicyRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ValidationPolicy, *gorm.DB]
}

func NewValidationPolicyRepository(db *gorm.DB) *validationPolicyRepository {
	return &validationPolicyRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ValidationPolicy](db),
	}
}

// FindByTierLabel matches case-insensitively. A missing policy is reported as
// nil, not as an error: it is an expected configuration state.
func (r *validationPolicyRepository) FindByTierLabel(tierLabel string) (*models.ValidationPolicy, error) {
	var policy models.ValidationPolicy
	err := r.db.Where("LOWER(tier_label) = ?", strings.ToLower(strings.TrimSpace(tierLabel))).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}
