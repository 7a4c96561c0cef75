package models

import (
	"asset-app/types"

	"gorm.io/gorm"
)

// AssetTag is the printed-code identifier record. Exactly one carrier
// (equipment, case, article or location) may reference a tag; a tag without a
// carrier is a valid, unassigned state. SerialID is the node-unique 64-bit
// serial assigned at registration; it goes over the wire as a string.
type AssetTag struct {
	gorm.Model
	CompanyID         *uint             `json:"company_id" gorm:"index"`
	SerialID          types.SnowflakeID `json:"serial_id" gorm:"index"`
	PrintedCode       string            `json:"printed_code" gorm:"uniqueIndex;not null" validate:"required"`
	PrintedApplied    bool              `json:"printed_applied" gorm:"default:false"`
	PrintedTemplateID *uint             `json:"printed_template_id"`
	NfcTagID          string            `json:"nfc_tag_id"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}
