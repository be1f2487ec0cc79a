package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type pastDueBucketRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.PastDueBucket, *gorm.DB]
}

func NewPastDueBucketRepository(db *gorm.DB) *pastDueBucketRepository {
	return &pastDueBucketRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.PastDueBucket](db),
	}
}

func (r *pastDueBucketRepository) Save(tx *gorm.DB, bucket *models.PastDueBucket) error {
	err := r.Repository.Save(tx, bucket)
	if err != nil && isUniqueViolationError(err) {
		return errors.Wrapf(err, "a bucket labeled %q already exists", bucket.Label)
	}
	return err
}
