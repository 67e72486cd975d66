package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"gorm.io/gorm"
)

// Project handlers
func CreateProject(ctx *gin.Context) {
	var project models.Project
	if err := ctx.ShouldBindJSON(&project); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// The brand must exist before a campaign can run under it.
	var brand models.Brand
	if err := initializers.DB.First(&brand, "id = ?", project.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate brand", err)
		}
		return
	}

	if err := initializers.DB.Create(&project).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create project", err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func GetProjects(ctx *gin.Context) {
	var projects []models.Project

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if brandID := ctx.Query("brandId"); brandID != "" {
			query = query.Where("brand_id = ?", brandID)
		}
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if search := ctx.Query("search"); search != "" {
			query = query.Where("name LIKE ? OR slug LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		return query
	}

	result := applyFilters(initializers.DB.Preload("Brand")).Limit(limit).Offset(offset).Find(&projects)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch projects", result.Error)
		return
	}

	var count int64
	applyFilters(initializers.DB.Model(&models.Project{})).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProject(ctx *gin.Context) {
	var project models.Project
	result := initializers.DB.Preload("Brand").First(&project, "id = ?", ctx.Param("projectId"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Project not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve project", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func UpdateProject(ctx *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Slug   string `json:"slug"`
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
	if body.Slug != "" {
		updates["slug"] = body.Slug
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Project{}).
		Where("id = ?", ctx.Param("projectId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update project", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Project not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project updated successfully."})
}

func UpdateProjectStatus(ctx *gin.Context) {
	var body struct {
		IDs    []string `json:"ids" binding:"required"`
		Status string   `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || len(body.IDs) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.Status != models.StatusActive && body.Status != models.StatusInactive {
		respondWithError(ctx, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	result := initializers.DB.Model(&models.Project{}).
		Where("id IN ?", body.IDs).
		Update("status", body.Status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update project status", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Project status updated successfully.",
		"updated": result.RowsAffected,
	})
}

func DeleteProject(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Project{}, "id = ?", ctx.Param("projectId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete project", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Project not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully."})
}

// Promo code handlers
func CreateProjectPromoCode(ctx *gin.Context) {
	var promoCode models.ProjectPromoCode
	if err := ctx.ShouldBindJSON(&promoCode); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	promoCode.ProjectID = ctx.Param("projectId")

	var project models.Project
	if err := initializers.DB.First(&project, "id = ?", promoCode.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Project not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate project", err)
		}
		return
	}

	if err := initializers.DB.Create(&promoCode).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create promo code", err)
		return
	}

	ctx.JSON(http.StatusCreated, promoCode)
}

func GetProjectPromoCodes(ctx *gin.Context) {
	var promoCodes []models.ProjectPromoCode
	result := initializers.DB.
		Where("project_id = ?", ctx.Param("projectId")).
		Find(&promoCodes)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch promo codes", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"promoCodes": promoCodes})
}

func DeleteProjectPromoCode(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.ProjectPromoCode{},
		"id = ? AND project_id = ?", ctx.Param("promoCodeId"), ctx.Param("projectId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete promo code", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Promo code not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promo code deleted successfully."})
}
