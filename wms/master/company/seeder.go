package company

import (
	"fmt"

	"gorm.io/gorm"
)

func SeedCompany(db *gorm.DB) {
	companies := []Company{
		{Code: "DEMO", Name: "Demo Rental GmbH", Description: "Seeded demo company"},
	}

	for _, c := range companies {
		var existing Company
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			fmt.Println("Failed to seed company:", c.Code, err)
		}
	}
}
