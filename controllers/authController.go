package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/utils"
	"gorm.io/gorm"
)

const (
	// Length of the numeric login code sent over SMS
	otpLength = 6

	// Standard response messages
	msgInvalidInput        = "Invalid input"
	msgPromoterNotFound    = "Promoter not found"
	msgPromoterInactive    = "Account is inactive"
	msgOtpSent             = "OTP sent successfully."
	msgOtpSendFailed       = "Failed to send OTP. Try again later."
	msgOtpInvalid          = "Invalid or expired OTP"
	msgTokenError          = "Failed to generate token"
	msgLoggedOut           = "Logged out successfully."
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func findPromoterByPhone(phone string) (models.Promoter, error) {
	var promoter models.Promoter
	result := initializers.DB.Where("phone = ?", phone).First(&promoter)
	return promoter, result.Error
}

// SendOtp generates a login code for a registered promoter and delivers
// it over SMS.
func SendOtp(ctx *gin.Context) {
	var body struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	promoter, err := findPromoterByPhone(body.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgPromoterNotFound)
		} else {
			log.Println("Database error during promoter lookup:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if promoter.Status != models.StatusActive {
		sendErrorResponse(ctx, http.StatusForbidden, msgPromoterInactive)
		return
	}

	otp, err := utils.GenerateOTP(otpLength)
	if err != nil {
		log.Println("OTP generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	expiresAt := time.Now().Add(AppConfig.OtpTTL)
	if err := initializers.DB.Model(&promoter).Updates(map[string]any{
		"otp":            otp,
		"otp_expires_at": expiresAt,
	}).Error; err != nil {
		log.Println("Error saving OTP:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	message := fmt.Sprintf("Your login code is %s. It expires in %d minutes.", otp, int(AppConfig.OtpTTL.Minutes()))
	if err := SMS.Send(promoter.Phone, message); err != nil {
		log.Println("Error sending OTP:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOtpSendFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgOtpSent})
}

// VerifyOtp exchanges a valid code for a session token. The token is also
// stored on the promoter row, so logging in on a second device logs the
// first one out.
func VerifyOtp(ctx *gin.Context) {
	var body struct {
		Phone      string `json:"phone" binding:"required"`
		Otp        string `json:"otp" binding:"required"`
		DeviceInfo string `json:"deviceInfo"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	promoter, err := findPromoterByPhone(body.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgPromoterNotFound)
		} else {
			log.Println("Database error during promoter lookup:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if promoter.Otp == "" || promoter.Otp != body.Otp ||
		promoter.OtpExpiresAt == nil || promoter.OtpExpiresAt.Before(time.Now()) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgOtpInvalid)
		return
	}

	token, err := utils.GeneratePromoterToken(AppConfig.JWTSecret, promoter.ID, promoter.Phone, AppConfig.SessionTTL)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgTokenError)
		return
	}

	if err := initializers.DB.Model(&promoter).Updates(map[string]any{
		"otp":            "",
		"otp_expires_at": nil,
		"session_token":  token,
		"device_info":    body.DeviceInfo,
		"last_active_at": time.Now(),
	}).Error; err != nil {
		log.Println("Error saving session:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token":    token,
		"promoter": promoter,
	})
}

// Logout clears the stored session token for the authenticated promoter.
func Logout(ctx *gin.Context) {
	value, exists := ctx.Get("promoter")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Promoter not found in context")
		return
	}
	promoter := value.(models.Promoter)

	if err := initializers.DB.Model(&promoter).Update("session_token", "").Error; err != nil {
		log.Println("Error clearing session:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}
