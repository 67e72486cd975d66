package models

// Project is one campaign run by a brand. Captured orders are deduplicated
// within a project's scope.
type Project struct {
	Base
	BrandID string `json:"brandId" gorm:"type:char(36);index" binding:"required"`
	Brand   *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Name    string `json:"name" gorm:"size:191" binding:"required"`
	Slug    string `json:"slug" gorm:"size:191;uniqueIndex" binding:"required"`
	Status  string `json:"status" gorm:"size:16;default:ACTIVE"`
}

// ProjectPromoCode is a voucher code valid for one project. A code may not
// be registered twice for the same project.
type ProjectPromoCode struct {
	Base
	ProjectID string `json:"projectId" gorm:"type:char(36);uniqueIndex:idx_project_promo_code"`
	Code      string `json:"code" gorm:"size:64;uniqueIndex:idx_project_promo_code" binding:"required"`
	Discount  string `json:"discount" gorm:"size:64"`
	Status    string `json:"status" gorm:"size:16;default:ACTIVE"`
}
