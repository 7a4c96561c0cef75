package helpers

import (
	"time"

	"asset-app/models"

	"gorm.io/gorm"
)

// InsertScanHistory records a mutating scan action in the audit trail.
func InsertScanHistory(db *gorm.DB, companyID uint, code, mode, status, detail, entityType string, entityID uint, actor int) error {
	history := models.ScanHistory{
		CompanyID:  companyID,
		Code:       code,
		Mode:       mode,
		Status:     status,
		Detail:     detail,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		CreatedBy:  actor,
	}

	if err := db.Create(&history).Error; err != nil {
		return err
	}

	return nil
}
