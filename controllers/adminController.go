package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgAdminExists        = "Admin with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CreateAdmin registers a dashboard account.
func CreateAdmin(ctx *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.Admin
	result := initializers.DB.Where("email = ?", body.Email).Find(&existing)
	if result.Error != nil {
		log.Println("Database error during admin check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgAdminExists)
		return
	}

	hashedPassword, err := hashPassword(body.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	admin := models.Admin{
		Name:     body.Name,
		Email:    body.Email,
		Password: hashedPassword,
	}
	if err := initializers.DB.Create(&admin).Error; err != nil {
		log.Println("Admin creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Admin created successfully.",
		"admin":   admin,
	})
}

// AdminLogin checks credentials and returns the admin profile. Dashboard
// calls are authorized by the shared API key, the login only verifies who
// is behind it.
func AdminLogin(ctx *gin.Context) {
	var loginData models.AdminLoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var admin models.Admin
	if err := initializers.DB.Where("email = ?", loginData.Email).First(&admin).Error; err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(admin.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if admin.Status != models.StatusActive {
		sendErrorResponse(ctx, http.StatusForbidden, "Account is inactive")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"admin": admin})
}

func GetAdmins(ctx *gin.Context) {
	var admins []models.Admin
	if result := initializers.DB.Find(&admins); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch admins", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"admins": admins})
}

func DeleteAdmin(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Admin{}, "id = ?", ctx.Param("adminId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete admin", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Admin not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully."})
}
