package models

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	CompanyID  *uint  `json:"company_id" gorm:"index"`
	AssetTagID *uint  `json:"asset_tag_id" gorm:"index"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
