package handlers

import (
	"net/http"

	"courtside/services/availability"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes slot resolution endpoints.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// ResolveHandler answers GET /api/availability?coachId=...&date=...
func (h *AvailabilityHandler) ResolveHandler(c *gin.Context) {
	coachID := c.Query("coachId")
	date := c.Query("date")
	if coachID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "coachId and date are required")
		return
	}

	day, err := h.Svc.Resolve(c.Request.Context(), coachID, date)
	if err != nil {
		getLogger(c).Error("availability resolution failed",
			zap.String("coachId", coachID), zap.String("date", date), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// VenueAvailabilityHandler answers GET /api/venues/availability for the
// booking confirmation screen.
func (h *AvailabilityHandler) VenueAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("startTime")
	end := c.Query("endTime")
	if date == "" || start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "date, startTime and endTime are required")
		return
	}

	verdicts, err := h.Svc.VenueAvailability(c.Request.Context(), date, start, end)
	if err != nil {
		getLogger(c).Error("venue availability failed", zap.String("date", date), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": verdicts})
}
