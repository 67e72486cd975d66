package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"gorm.io/gorm"
)

// City handlers
func CreateCity(ctx *gin.Context) {
	var city models.City
	if err := ctx.ShouldBindJSON(&city); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&city).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create city", err)
		return
	}

	ctx.JSON(http.StatusCreated, city)
}

func GetCities(ctx *gin.Context) {
	var cities []models.City

	query := initializers.DB.Order("name asc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if result := query.Find(&cities); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch cities", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cities": cities})
}

func UpdateCity(ctx *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.City{}).
		Where("id = ?", ctx.Param("cityId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update city", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "City not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "City updated successfully."})
}

func DeleteCity(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.City{}, "id = ?", ctx.Param("cityId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete city", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "City not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "City deleted successfully."})
}

// Area handlers
func CreateArea(ctx *gin.Context) {
	var area models.Area
	if err := ctx.ShouldBindJSON(&area); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	area.CityID = ctx.Param("cityId")

	var city models.City
	if err := initializers.DB.First(&city, "id = ?", area.CityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "City not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate city", err)
		}
		return
	}

	if err := initializers.DB.Create(&area).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create area", err)
		return
	}

	ctx.JSON(http.StatusCreated, area)
}

func GetAreas(ctx *gin.Context) {
	var areas []models.Area

	query := initializers.DB.Where("city_id = ?", ctx.Param("cityId")).Order("name asc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if result := query.Find(&areas); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch areas", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"areas": areas})
}

func UpdateArea(ctx *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Area{}).
		Where("id = ?", ctx.Param("areaId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update area", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Area not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Area updated successfully."})
}

func DeleteArea(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Area{}, "id = ?", ctx.Param("areaId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete area", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Area not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Area deleted successfully."})
}
