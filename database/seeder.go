package database

import (
	"fmt"

	"asset-app/controllers/idgen"
	"asset-app/models"
	"asset-app/types"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// RunSeeders creates a demo user plus a handful of tagged entities so a fresh
// install has something to scan.
func RunSeeders(db *gorm.DB) {
	seedAdminUser(db)
	seedDemoAssets(db)
}

func seedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@demo.local").First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Failed to hash seed password:", err)
		return
	}

	user := models.User{
		CompanyID: 1,
		Name:      "Admin",
		Email:     "admin@demo.local",
		Password:  string(hashed),
		IsActive:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		fmt.Println("Failed to seed admin user:", err)
	}
}

func seedDemoAssets(db *gorm.DB) {
	var count int64
	db.Model(&models.AssetTag{}).Count(&count)
	if count > 0 {
		return
	}

	companyID := uint(1)

	warehouse := models.Location{CompanyID: &companyID, Code: "WH-01", Name: "Lager", IsActive: true}
	if err := db.Create(&warehouse).Error; err != nil {
		fmt.Println("Failed to seed location:", err)
		return
	}

	for i := 0; i < 10; i++ {
		tag := models.AssetTag{
			CompanyID:   &companyID,
			SerialID:    types.SnowflakeID(idgen.GenerateID()),
			PrintedCode: fmt.Sprintf("EQP-%04d", i+1),
		}
		if err := db.Create(&tag).Error; err != nil {
			fmt.Println("Failed to seed asset tag:", err)
			continue
		}

		equipment := models.Equipment{
			CompanyID:         &companyID,
			AssetTagID:        &tag.ID,
			Name:              fmt.Sprintf("Demo Equipment %d", i+1),
			SerialNumber:      fmt.Sprintf("SN%06d", rand.Intn(999999)),
			CurrentLocationID: &warehouse.ID,
		}
		if err := db.Create(&equipment).Error; err != nil {
			fmt.Println("Failed to seed equipment:", err)
		}
	}
}
