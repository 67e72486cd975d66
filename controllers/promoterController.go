package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"gorm.io/gorm"
)

// Promoter handlers
func CreatePromoter(ctx *gin.Context) {
	var promoter models.Promoter
	if err := ctx.ShouldBindJSON(&promoter); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.Promoter
	result := initializers.DB.Where("phone = ?", promoter.Phone).Find(&existing)
	if result.Error != nil {
		log.Println("Database error during promoter check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Promoter with this phone already exists")
		return
	}

	if err := initializers.DB.Create(&promoter).Error; err != nil {
		log.Println("Promoter creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, promoter)
}

func GetPromoters(ctx *gin.Context) {
	var promoters []models.Promoter

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if search := ctx.Query("search"); search != "" {
			query = query.Where("name LIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		return query
	}

	result := applyFilters(initializers.DB).Limit(limit).Offset(offset).Find(&promoters)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promoters", result.Error)
		return
	}

	var count int64
	applyFilters(initializers.DB.Model(&models.Promoter{})).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"promoters": promoters,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetPromoter(ctx *gin.Context) {
	var promoter models.Promoter
	result := initializers.DB.First(&promoter, "id = ?", ctx.Param("promoterId"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, msgPromoterNotFound, nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve promoter", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, promoter)
}

func UpdatePromoter(ctx *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	result := initializers.DB.Model(&models.Promoter{}).
		Where("id = ?", ctx.Param("promoterId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update promoter", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, msgPromoterNotFound, nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promoter updated successfully."})
}

func UpdatePromoterStatus(ctx *gin.Context) {
	var body struct {
		IDs    []string `json:"ids" binding:"required"`
		Status string   `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || len(body.IDs) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if body.Status != models.StatusActive && body.Status != models.StatusInactive {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status")
		return
	}

	result := initializers.DB.Model(&models.Promoter{}).
		Where("id IN ?", body.IDs).
		Update("status", body.Status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update promoter status", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Promoter status updated successfully.",
		"updated": result.RowsAffected,
	})
}

func DeletePromoter(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Promoter{}, "id = ?", ctx.Param("promoterId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete promoter", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, msgPromoterNotFound, nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promoter deleted successfully."})
}

// AttachPromoterProject assigns a promoter to a campaign. A promoter may
// not be attached to the same project twice.
func AttachPromoterProject(ctx *gin.Context) {
	promoterID := ctx.Param("promoterId")

	var body struct {
		ProjectID string `json:"projectId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.PromoterProject
	err := initializers.DB.
		Where("promoter_id = ? AND project_id = ?", promoterID, body.ProjectID).
		First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Promoter is already attached to this project")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error during attachment check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	attachment := models.PromoterProject{
		PromoterID: promoterID,
		ProjectID:  body.ProjectID,
	}
	if err := initializers.DB.Create(&attachment).Error; err != nil {
		log.Println("Attachment create error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to attach promoter to project")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Promoter attached to project successfully.",
		"id":      attachment.ID,
	})
}

func DetachPromoterProject(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.PromoterProject{},
		"promoter_id = ? AND project_id = ?", ctx.Param("promoterId"), ctx.Param("projectId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to detach promoter from project", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Attachment not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promoter detached from project successfully."})
}

func promoterProjects(promoterID string) ([]models.Project, error) {
	var projects []models.Project
	err := initializers.DB.
		Joins("JOIN promoter_projects ON promoter_projects.project_id = projects.id").
		Where("promoter_projects.promoter_id = ?", promoterID).
		Preload("Brand").
		Find(&projects).Error
	return projects, err
}

func GetPromoterProjects(ctx *gin.Context) {
	projects, err := promoterProjects(ctx.Param("promoterId"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promoter projects", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"projects": projects})
}

// GetMyProjects lists the campaigns assigned to the authenticated
// promoter, used by the app to populate its project picker.
func GetMyProjects(ctx *gin.Context) {
	value, exists := ctx.Get("promoter")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Promoter not found in context")
		return
	}
	promoter := value.(models.Promoter)

	projects, err := promoterProjects(promoter.ID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promoter projects", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"projects": projects})
}
