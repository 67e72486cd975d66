package models

// Brand is a tenant running promotional campaigns. OcrPrompt, when set,
// replaces the default prompt sent to the extraction model for every
// project under this brand.
type Brand struct {
	Base
	Name      string `json:"name" gorm:"size:191;uniqueIndex" binding:"required"`
	LogoURL   string `json:"logoUrl" gorm:"size:512"`
	OcrPrompt string `json:"ocrPrompt" gorm:"type:text"`
	Status    string `json:"status" gorm:"size:16;default:ACTIVE"`
}
