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

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Brand handlers
func CreateBrand(ctx *gin.Context) {
	var brand models.Brand
	if err := ctx.ShouldBindJSON(&brand); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&brand).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create brand", err)
		return
	}

	ctx.JSON(http.StatusCreated, brand)
}

func GetBrands(ctx *gin.Context) {
	var brands []models.Brand

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if search := ctx.Query("search"); search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		return query
	}

	result := applyFilters(initializers.DB).Limit(limit).Offset(offset).Find(&brands)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch brands", result.Error)
		return
	}

	var count int64
	applyFilters(initializers.DB.Model(&models.Brand{})).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"brands": brands,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetBrand(ctx *gin.Context) {
	var brand models.Brand
	result := initializers.DB.First(&brand, "id = ?", ctx.Param("brandId"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve brand", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, brand)
}

func UpdateBrand(ctx *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		LogoURL   string `json:"logoUrl"`
		OcrPrompt string `json:"ocrPrompt"`
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
	if body.LogoURL != "" {
		updates["logo_url"] = body.LogoURL
	}
	if body.OcrPrompt != "" {
		updates["ocr_prompt"] = body.OcrPrompt
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Brand{}).
		Where("id = ?", ctx.Param("brandId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update brand", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Brand updated successfully."})
}

// UpdateBrandStatus activates or deactivates brands in bulk.
func UpdateBrandStatus(ctx *gin.Context) {
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

	result := initializers.DB.Model(&models.Brand{}).
		Where("id IN ?", body.IDs).
		Update("status", body.Status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update brand status", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Brand status updated successfully.",
		"updated": result.RowsAffected,
	})
}

func DeleteBrand(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Brand{}, "id = ?", ctx.Param("brandId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete brand", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully."})
}
