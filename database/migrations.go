package database

import (
	"log/slog"

	"github.com/modelward-dev/modelward/database/models"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date for all inventory, configuration
// and journaling tables.
func RunMigrations(db *gorm.DB) error {
	slog.Info("running database migrations")

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.InventoryModel{},
		&models.ValidationPolicy{},
		&models.ValidationRequest{},
		&models.ApprovalRecord{},
		&models.PastDueBucket{},
		&models.QualitativeFactor{},
		&models.FactorAssessment{},
		&models.RiskAssessment{},
		&models.ResidualRiskMatrix{},
		&models.ResidualRiskMatrixEntry{},
		&models.StatusHistory{},
	)
}
