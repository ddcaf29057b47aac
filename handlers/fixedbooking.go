package handlers

import (
	"net/http"
	"strconv"

	"courtside/middleware"
	"courtside/models"
	"courtside/services/fixedbooking"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FixedBookingHandler exposes recurring booking template endpoints.
type FixedBookingHandler struct {
	Svc fixedbooking.FixedBookingService
}

func NewFixedBookingHandler(svc fixedbooking.FixedBookingService) *FixedBookingHandler {
	return &FixedBookingHandler{Svc: svc}
}

// ListHandler answers GET /api/fixed-bookings with optional coachId,
// studentId, weekday and status filters.
func (h *FixedBookingHandler) ListHandler(c *gin.Context) {
	filter := models.FixedBookingFilter{
		CoachID:   c.Query("coachId"),
		StudentID: c.Query("studentId"),
	}
	if raw := c.Query("weekday"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "weekday must be 0-6")
			return
		}
		filter.Weekday = &v
	}
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "status must be 0 or 1")
			return
		}
		filter.Status = &v
	}

	session := middleware.GetSession(c)
	if session.Role == models.RoleStudent {
		filter.StudentID = session.UserID
	}

	templates, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("fixed booking list failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixedBookings": templates})
}

// CalendarHandler answers GET /api/fixed-bookings/calendar?coachId=... with
// the merged materialized occurrences and one-off bookings.
func (h *FixedBookingHandler) CalendarHandler(c *gin.Context) {
	coachID := c.Query("coachId")
	if coachID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "coachId is required")
		return
	}

	merged, err := h.Svc.Calendar(c.Request.Context(), coachID)
	if err != nil {
		getLogger(c).Error("calendar build failed", zap.String("coachId", coachID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": merged})
}

// CreateHandler answers POST /api/fixed-bookings.
func (h *FixedBookingHandler) CreateHandler(c *gin.Context) {
	var req models.FixedBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	session := middleware.GetSession(c)
	if req.StudentID == "" {
		req.StudentID = session.UserID
	}

	created, err := h.Svc.Create(c.Request.Context(), session, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler answers PUT /api/fixed-bookings/:id.
func (h *FixedBookingHandler) UpdateHandler(c *gin.Context) {
	var req models.FixedBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Svc.Update(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetStatusHandler answers PUT /api/fixed-bookings/:id/status to pause or
// resume a template.
func (h *FixedBookingHandler) SetStatusHandler(c *gin.Context) {
	var req struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Svc.SetStatus(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// DeleteHandler answers DELETE /api/fixed-bookings/:id.
func (h *FixedBookingHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
