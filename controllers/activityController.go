package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"gorm.io/gorm"
)

// Activity handlers
func CreateActivity(ctx *gin.Context) {
	var activity models.Activity
	if err := ctx.ShouldBindJSON(&activity); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var project models.Project
	if err := initializers.DB.First(&project, "id = ?", activity.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Project not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate project", err)
		}
		return
	}

	if err := initializers.DB.Create(&activity).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create activity", err)
		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

func GetActivities(ctx *gin.Context) {
	var activities []models.Activity

	query := initializers.DB.Preload("Locations")
	if projectID := ctx.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if result := query.Find(&activities); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch activities", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"activities": activities})
}

func GetActivity(ctx *gin.Context) {
	var activity models.Activity
	result := initializers.DB.Preload("Locations").First(&activity, "id = ?", ctx.Param("activityId"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Activity not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve activity", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

func UpdateActivity(ctx *gin.Context) {
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

	result := initializers.DB.Model(&models.Activity{}).
		Where("id = ?", ctx.Param("activityId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update activity", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Activity not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Activity updated successfully."})
}

func DeleteActivity(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Activity{}, "id = ?", ctx.Param("activityId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete activity", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Activity not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully."})
}

// Activity location handlers
func CreateActivityLocation(ctx *gin.Context) {
	var location models.ActivityLocation
	if err := ctx.ShouldBindJSON(&location); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	location.ActivityID = ctx.Param("activityId")

	var activity models.Activity
	if err := initializers.DB.First(&activity, "id = ?", location.ActivityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Activity not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate activity", err)
		}
		return
	}

	if err := initializers.DB.Create(&location).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create activity location", err)
		return
	}

	ctx.JSON(http.StatusCreated, location)
}

func GetActivityLocations(ctx *gin.Context) {
	var locations []models.ActivityLocation

	query := initializers.DB.Where("activity_id = ?", ctx.Param("activityId"))
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if result := query.Find(&locations); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch activity locations", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}

func UpdateActivityLocation(ctx *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		Address   string `json:"address"`
		AreaID    string `json:"areaId"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
		Status    string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Address != "" {
		updates["address"] = body.Address
	}
	if body.AreaID != "" {
		updates["area_id"] = body.AreaID
	}
	if body.Latitude != "" {
		updates["latitude"] = body.Latitude
	}
	if body.Longitude != "" {
		updates["longitude"] = body.Longitude
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.ActivityLocation{}).
		Where("id = ?", ctx.Param("locationId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update activity location", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Activity location not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Activity location updated successfully."})
}

func DeleteActivityLocation(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.ActivityLocation{}, "id = ?", ctx.Param("locationId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete activity location", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Activity location not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Activity location deleted successfully."})
}
