package models

// Activity is a marketing drive within a project, e.g. a week of in-store
// sampling.
type Activity struct {
	Base
	ProjectID string             `json:"projectId" gorm:"type:char(36);index" binding:"required"`
	Name      string             `json:"name" gorm:"size:191" binding:"required"`
	Status    string             `json:"status" gorm:"size:16;default:ACTIVE"`
	Locations []ActivityLocation `json:"locations,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// ActivityLocation is a physical site where an activity runs.
type ActivityLocation struct {
	Base
	ActivityID string  `json:"activityId" gorm:"type:char(36);index"`
	AreaID     *string `json:"areaId" gorm:"type:char(36);index"`
	Name       string  `json:"name" gorm:"size:191" binding:"required"`
	Address    string  `json:"address" gorm:"size:512"`
	Latitude   string  `json:"latitude" gorm:"size:32"`
	Longitude  string  `json:"longitude" gorm:"size:32"`
	Status     string  `json:"status" gorm:"size:16;default:ACTIVE"`
}
