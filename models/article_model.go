package models

import (
	"gorm.io/gorm"
)

type Article struct {
	gorm.Model
	CompanyID         *uint  `json:"company_id" gorm:"index"`
	AssetTagID        *uint  `json:"asset_tag_id" gorm:"index"`
	Name              string `json:"name"`
	DefaultLocationID *uint  `json:"default_location_id"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}
