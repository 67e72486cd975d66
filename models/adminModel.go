package models

type Admin struct {
	Base
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" gorm:"size:191;uniqueIndex" binding:"required,email"`
	Password string `json:"-" gorm:"size:255"`
	Status   string `json:"status" gorm:"size:16;default:ACTIVE"`
}

type AdminLoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
