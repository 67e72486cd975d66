package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	OrderStatusPending  = "PENDING"
	OrderStatusApproved = "APPROVED"
	OrderStatusRejected = "REJECTED"
)

const (
	EntryTypeOrder  = "order"
	EntryTypeSignup = "signup"
	EntryTypeBoth   = "both"
)

type CapturedOrder struct {
	Base
	OrderID       *string `json:"orderId" gorm:"size:191;uniqueIndex:idx_orders_project_order,priority:2"`
	CustomerName  string  `json:"customerName" gorm:"size:191"`
	CustomerPhone *string `json:"customerPhone" gorm:"size:20;uniqueIndex:idx_orders_project_phone,priority:2"`

	ProjectID     *string `json:"projectId" gorm:"type:char(36);uniqueIndex:idx_orders_project_order,priority:1;uniqueIndex:idx_orders_project_phone,priority:1"`
	VendorID      *string `json:"vendorId" gorm:"type:char(36);index"`
	PromoterID    *string `json:"promoterId" gorm:"type:char(36);index"`
	ActivityID    *string `json:"activityId" gorm:"type:char(36)"`
	ActivityLocID *string `json:"activityLocId" gorm:"type:char(36)"`

	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Vendor   *Vendor   `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Promoter *Promoter `json:"promoter,omitempty" gorm:"foreignKey:PromoterID"`

	OrderAddress   string          `json:"orderAddress" gorm:"size:500"`
	CashbackAmount decimal.Decimal `json:"cashbackAmount" gorm:"type:decimal(10,2);default:0"`
	OrderPlacedAt  string          `json:"orderPlacedAt" gorm:"size:191"`

	OrderImageURL        string `json:"orderImageUrl" gorm:"size:500"`
	ProfileImageURL      string `json:"profileImageUrl" gorm:"size:500"`
	OrderHistoryImageURL string `json:"orderHistoryImageUrl" gorm:"size:500"`

	RawExtraction datatypes.JSON `json:"rawExtraction,omitempty"`

	Status    string `json:"status" gorm:"size:16;default:PENDING;index"`
	IsFlagged bool   `json:"isFlagged" gorm:"default:false"`

	Latitude   string `json:"latitude" gorm:"size:32"`
	Longitude  string `json:"longitude" gorm:"size:32"`
	Location   string `json:"location" gorm:"size:255"`
	DeviceInfo string `json:"deviceInfo" gorm:"size:255"`
}
