package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	CompanyID uint   `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique" validate:"required,email"`
	Password  string `json:"-"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint64    `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
