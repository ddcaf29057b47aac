package handlers

import (
	"net/http"

	"courtside/services/fixedbooking"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operational endpoints behind the admin guard.
type AdminHandler struct {
	FixedBookings fixedbooking.FixedBookingService
}

func NewAdminHandler(fixedBookings fixedbooking.FixedBookingService) *AdminHandler {
	return &AdminHandler{FixedBookings: fixedBookings}
}

// PromoteFixedBookingsHandler answers POST /api/admin/fixed-bookings/promote,
// the manual counterpart of the daily promotion task.
func (h *AdminHandler) PromoteFixedBookingsHandler(c *gin.Context) {
	created, err := h.FixedBookings.PromoteDue(c.Request.Context())
	if err != nil {
		getLogger(c).Error("manual promotion failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// HealthHandler answers GET /health with collaborator status.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
