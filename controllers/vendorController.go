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

// Vendor handlers
func CreateVendor(ctx *gin.Context) {
	var vendor models.Vendor
	if err := ctx.ShouldBindJSON(&vendor); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&vendor).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create vendor", err)
		return
	}

	ctx.JSON(http.StatusCreated, vendor)
}

func GetVendors(ctx *gin.Context) {
	var vendors []models.Vendor

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if areaID := ctx.Query("areaId"); areaID != "" {
			query = query.Where("area_id = ?", areaID)
		}
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if search := ctx.Query("search"); search != "" {
			query = query.Where("name LIKE ? OR owner_name LIKE ? OR phone LIKE ?",
				"%"+search+"%", "%"+search+"%", "%"+search+"%")
		}
		return query
	}

	result := applyFilters(initializers.DB).Limit(limit).Offset(offset).Find(&vendors)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch vendors", result.Error)
		return
	}

	var count int64
	applyFilters(initializers.DB.Model(&models.Vendor{})).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetVendor(ctx *gin.Context) {
	var vendor models.Vendor
	result := initializers.DB.First(&vendor, "id = ?", ctx.Param("vendorId"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Vendor not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve vendor", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

func UpdateVendor(ctx *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		OwnerName string `json:"ownerName"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		AreaID    string `json:"areaId"`
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
	if body.OwnerName != "" {
		updates["owner_name"] = body.OwnerName
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}
	if body.Address != "" {
		updates["address"] = body.Address
	}
	if body.AreaID != "" {
		updates["area_id"] = body.AreaID
	}
	if body.Status != "" {
		updates["status"] = body.Status
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Vendor{}).
		Where("id = ?", ctx.Param("vendorId")).
		Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update vendor", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Vendor not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Vendor updated successfully."})
}

func UpdateVendorStatus(ctx *gin.Context) {
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

	result := initializers.DB.Model(&models.Vendor{}).
		Where("id IN ?", body.IDs).
		Update("status", body.Status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update vendor status", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Vendor status updated successfully.",
		"updated": result.RowsAffected,
	})
}

func DeleteVendor(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.Vendor{}, "id = ?", ctx.Param("vendorId"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete vendor", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Vendor not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully."})
}
