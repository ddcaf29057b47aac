package handlers

import (
	"net/http"

	"courtside/middleware"
	"courtside/models"
	"courtside/services/booking"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes one-off booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateHandler answers POST /api/bookings.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	session := middleware.GetSession(c)

	b, err := h.Svc.Create(c.Request.Context(), session, input)
	if err != nil {
		getLogger(c).Warn("booking creation rejected",
			zap.String("userId", session.UserID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListHandler answers GET /api/bookings with optional coachId, studentId,
// venueId, date and status query filters. Status accepts repeated values.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	filter := models.BookingFilter{
		CoachID:   c.Query("coachId"),
		StudentID: c.Query("studentId"),
		VenueID:   c.Query("venueId"),
		Date:      c.Query("date"),
	}
	for _, raw := range c.QueryArray("status") {
		filter.Statuses = append(filter.Statuses, models.BookingStatus(raw))
	}

	session := middleware.GetSession(c)
	// Students only ever see their own bookings.
	if session.Role == models.RoleStudent {
		filter.StudentID = session.UserID
	}

	bookings, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("booking list failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetHandler answers GET /api/bookings/:id.
func (h *BookingHandler) GetHandler(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// TransitionHandler answers POST /api/bookings/:id/:action for the lifecycle
// actions confirm, reject, cancel and complete.
func (h *BookingHandler) TransitionHandler(action booking.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		var extra booking.TransitionExtra
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&extra); err != nil {
				utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
				return
			}
		}
		session := middleware.GetSession(c)

		b, err := h.Svc.Transition(c.Request.Context(), session, c.Param("id"), action, extra)
		if err != nil {
			getLogger(c).Warn("booking transition rejected",
				zap.String("bookingId", c.Param("id")), zap.String("action", string(action)),
				zap.String("userId", session.UserID), zap.Error(err))
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
