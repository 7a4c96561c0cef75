package models

import (
	"gorm.io/gorm"
)

type Equipment struct {
	gorm.Model
	CompanyID         *uint  `json:"company_id" gorm:"index"`
	AssetTagID        *uint  `json:"asset_tag_id" gorm:"index"`
	Name              string `json:"name"`
	SerialNumber      string `json:"serial_number"`
	CurrentLocationID *uint  `json:"current_location_id"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}
