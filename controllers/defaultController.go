package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Promovia API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/send-otp" - Request a promoter login code
- POST "/auth/verify-otp" - Exchange the code for a session token
- POST "/auth/logout" - End the current promoter session
- POST "/admin/login" - Verify dashboard credentials

ORDER
- POST "/order" - Capture an order from receipt images
- GET "/order" - Retrieve captured orders
- GET "/order/feed" - Live feed of captured orders (websocket)
- GET "/order/:orderId" - Get a captured order by ID
- PATCH "/order/:orderId/status" - Approve or reject an order
- PATCH "/order/:orderId/flag" - Flag an order for review
- POST "/order/bulk-delete" - Delete captured orders

CATALOG
- "/brand" - Brand CRUD
- "/project" - Project CRUD and promo codes
- "/promoter" - Promoter CRUD and project attachments
- "/vendor" - Vendor CRUD
- "/city" - City and area CRUD
- "/activity" - Activity and location CRUD`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
