package models

type City struct {
	Base
	Name   string `json:"name" gorm:"size:191;uniqueIndex" binding:"required"`
	Status string `json:"status" gorm:"size:16;default:ACTIVE"`
}

// Area is a neighbourhood or market zone within a city.
type Area struct {
	Base
	CityID string `json:"cityId" gorm:"type:char(36);uniqueIndex:idx_city_area"`
	Name   string `json:"name" gorm:"size:191;uniqueIndex:idx_city_area" binding:"required"`
	Status string `json:"status" gorm:"size:16;default:ACTIVE"`
}
