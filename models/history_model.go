package models

import "time"

// ScanHistory keeps an audit trail of mutating scan actions. The live session
// feed itself is in-memory only; this table survives the session.
type ScanHistory struct {
	ID         uint   `gorm:"primaryKey"`
	CompanyID  uint   `json:"company_id" gorm:"index"`
	Code       string `json:"code"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
	Detail     string `json:"detail"`
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	CreatedAt  time.Time
	CreatedBy  int
}
