package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Case is a transport container. CaseEquipmentID points to the equipment row
// that physically represents the case; Contents is the ordered list of
// equipment ids currently packed inside it.
type Case struct {
	gorm.Model
	CompanyID       *uint                     `json:"company_id" gorm:"index"`
	AssetTagID      *uint                     `json:"asset_tag_id" gorm:"index"`
	Name            string                    `json:"name"`
	CaseEquipmentID *uint                     `json:"case_equipment_id"`
	Contents        datatypes.JSONSlice[uint] `json:"contents"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
