package models

import "time"

// Promoter is a field agent who captures orders at activity locations.
// Login is OTP-over-SMS; the signed session token is stored so that only a
// single session is valid at a time.
type Promoter struct {
	Base
	Name         string     `json:"name" binding:"required"`
	Phone        string     `json:"phone" gorm:"size:20;uniqueIndex" binding:"required"`
	DeviceInfo   string     `json:"deviceInfo" gorm:"size:255"`
	Otp          string     `json:"-" gorm:"size:8"`
	OtpExpiresAt *time.Time `json:"-"`
	SessionToken string     `json:"-" gorm:"type:text"`
	LastActiveAt *time.Time `json:"lastActiveAt"`
	Status       string     `json:"status" gorm:"size:16;default:ACTIVE"`
}

// PromoterProject attaches a promoter to a project. A promoter may not be
// attached to the same project twice.
type PromoterProject struct {
	Base
	PromoterID string `json:"promoterId" gorm:"type:char(36);uniqueIndex:idx_promoter_project"`
	ProjectID  string `json:"projectId" gorm:"type:char(36);uniqueIndex:idx_promoter_project"`
}
