package controllers

import (
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/services/capture"
	"gorm.io/gorm"
)

// CaptureOrder ingests a promoter submission: up to 50 images under the
// "images" field plus form fields describing where and for whom the
// capture happened. Validation rejections come back as 400s with the
// reason, everything else as a generic 500.
func CaptureOrder(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	input := capture.Input{
		EntryType:     ctx.PostForm("entryType"),
		ProjectID:     ctx.PostForm("projectId"),
		PromoterID:    ctx.PostForm("promoterId"),
		VendorID:      ctx.PostForm("vendorId"),
		ActivityID:    ctx.PostForm("activityId"),
		ActivityLocID: ctx.PostForm("activityLocId"),
		Name:          ctx.PostForm("name"),
		Phone:         ctx.PostForm("phone"),
		Latitude:      ctx.PostForm("latitude"),
		Longitude:     ctx.PostForm("longitude"),
		Location:      ctx.PostForm("location"),
		DeviceInfo:    ctx.PostForm("deviceInfo"),
	}

	for _, file := range form.File["images"] {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			continue
		}
		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			log.Printf("Error reading file %s: %v", file.Filename, readErr)
			continue
		}
		input.Images = append(input.Images, capture.Image{
			Data:        data,
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
		})
	}

	order, err := Capture.Capture(ctx.Request.Context(), input)
	if err != nil {
		var reject capture.RejectError
		if errors.As(err, &reject) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": reject.Error()})
			return
		}
		log.Println("Order capture failed:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Order processing failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order captured successfully.",
		"order":   order,
	})
}

// OrderFeed upgrades the connection and streams newly captured orders to
// dashboard clients.
func OrderFeed(ctx *gin.Context) {
	Feed.Serve(ctx.Writer, ctx.Request)
}

func GetOrders(ctx *gin.Context) {
	var orders []models.CapturedOrder

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if projectID := ctx.Query("projectId"); projectID != "" {
			query = query.Where("project_id = ?", projectID)
		}
		if promoterID := ctx.Query("promoterId"); promoterID != "" {
			query = query.Where("promoter_id = ?", promoterID)
		}
		if vendorID := ctx.Query("vendorId"); vendorID != "" {
			query = query.Where("vendor_id = ?", vendorID)
		}
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if ctx.Query("flagged") == "true" {
			query = query.Where("is_flagged = ?", true)
		}
		if search := ctx.Query("search"); search != "" {
			query = query.Where("order_id LIKE ? OR customer_phone LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		return query
	}

	query := applyFilters(initializers.DB.Preload("Project").Preload("Vendor").Preload("Promoter"))
	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	applyFilters(initializers.DB.Model(&models.CapturedOrder{})).Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrderById(ctx *gin.Context) {
	var order models.CapturedOrder
	err := initializers.DB.
		Preload("Project").Preload("Vendor").Preload("Promoter").
		First(&order, "id = ?", ctx.Param("orderId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	switch body.Status {
	case models.OrderStatusPending, models.OrderStatusApproved, models.OrderStatusRejected:
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
		return
	}

	result := initializers.DB.Model(&models.CapturedOrder{}).
		Where("id = ?", ctx.Param("orderId")).
		Update("status", body.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func FlagOrder(ctx *gin.Context) {
	var body struct {
		IsFlagged *bool `json:"isFlagged" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	result := initializers.DB.Model(&models.CapturedOrder{}).
		Where("id = ?", ctx.Param("orderId")).
		Update("is_flagged", *body.IsFlagged)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order flag")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order flag updated successfully."})
}

func BulkDeleteOrders(ctx *gin.Context) {
	var body struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || len(body.IDs) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result := initializers.DB.Delete(&models.CapturedOrder{}, "id IN ?", body.IDs)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Orders deleted successfully.",
		"deleted": result.RowsAffected,
	})
}
