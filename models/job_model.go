package models

import (
	"time"

	"gorm.io/gorm"
)

type Job struct {
	gorm.Model
	CompanyID uint      `json:"company_id" gorm:"index"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// JobBookedItem reserves an equipment or case for a job. Exactly one of
// EquipmentID / CaseID is set; a (job, equipment) or (job, case) pair appears
// at most once.
type JobBookedItem struct {
	gorm.Model
	CompanyID   uint  `json:"company_id" gorm:"index"`
	JobID       uint  `json:"job_id" gorm:"index"`
	EquipmentID *uint `json:"equipment_id"`
	CaseID      *uint `json:"case_id"`
	CreatedBy   int
}

// JobPackedItem marks an equipment or case as physically loaded for a job.
// Same shape and uniqueness rule as JobBookedItem.
type JobPackedItem struct {
	gorm.Model
	CompanyID   uint  `json:"company_id" gorm:"index"`
	JobID       uint  `json:"job_id" gorm:"index"`
	EquipmentID *uint `json:"equipment_id"`
	CaseID      *uint `json:"case_id"`
	CreatedBy   int
}
