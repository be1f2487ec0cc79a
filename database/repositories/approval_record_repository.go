package repositories

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"gorm.io/gorm"
)

type approvalRecordRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ApprovalRecord, *gorm.DB]
}

func NewApprovalRecordRepository(db *gorm.DB) *approvalRecordRepository {
	return &approvalRecordRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ApprovalRecord](db),
	}
}
