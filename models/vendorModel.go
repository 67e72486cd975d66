package models

// Vendor is a shop or outlet on whose behalf promoters capture orders.
type Vendor struct {
	Base
	Name      string  `json:"name" gorm:"size:191" binding:"required"`
	OwnerName string  `json:"ownerName" gorm:"size:191"`
	Phone     string  `json:"phone" gorm:"size:20"`
	Address   string  `json:"address" gorm:"size:512"`
	AreaID    *string `json:"areaId" gorm:"type:char(36);index"`
	Status    string  `json:"status" gorm:"size:16;default:ACTIVE"`
}
