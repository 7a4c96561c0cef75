package migration

import (
	"asset-app/models"
	"asset-app/wms/master/company"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&company.Company{},
		&models.User{},
		&models.UserSession{},
		&models.AssetTag{},
		&models.Equipment{},
		&models.Case{},
		&models.Article{},
		&models.Location{},
		&models.Job{},
		&models.JobBookedItem{},
		&models.JobPackedItem{},
		&models.ScanHistory{},
	)
}
