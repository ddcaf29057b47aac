package handlers

import (
	"net/http"
	"strconv"

	"courtside/middleware"
	"courtside/models"
	"courtside/services/coach"
	"courtside/services/schedule"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CoachHandler exposes coach profile and schedule endpoints.
type CoachHandler struct {
	Svc      coach.CoachService
	Schedule schedule.ScheduleService
}

func NewCoachHandler(svc coach.CoachService, scheduleSvc schedule.ScheduleService) *CoachHandler {
	return &CoachHandler{Svc: svc, Schedule: scheduleSvc}
}

// ListHandler answers GET /api/coaches with an optional status filter.
func (h *CoachHandler) ListHandler(c *gin.Context) {
	var status *int
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "status must be 0 or 1")
			return
		}
		status = &v
	}

	coaches, err := h.Svc.List(c.Request.Context(), status)
	if err != nil {
		getLogger(c).Error("coach list failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GetHandler answers GET /api/coaches/:id.
func (h *CoachHandler) GetHandler(c *gin.Context) {
	coachProfile, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if coachProfile == nil {
		utils.JSONError(c, http.StatusNotFound, "Coach not found", "")
		return
	}
	c.JSON(http.StatusOK, coachProfile)
}

// CreateHandler answers POST /api/coaches (admin).
func (h *CoachHandler) CreateHandler(c *gin.Context) {
	var req models.Coach
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler answers PUT /api/coaches/:id (admin or owning coach).
func (h *CoachHandler) UpdateHandler(c *gin.Context) {
	var req models.Coach
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

// DeleteHandler answers DELETE /api/coaches/:id (admin).
func (h *CoachHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetScheduleHandler answers GET /api/coaches/:id/schedule, substituting the
// default schedule when the coach has never saved one.
func (h *CoachHandler) GetScheduleHandler(c *gin.Context) {
	sched, err := h.Schedule.GetCoachSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// ReplaceScheduleHandler answers PUT /api/coaches/:id/schedule with a full
// replace of the weekly schedule and blackout dates.
func (h *CoachHandler) ReplaceScheduleHandler(c *gin.Context) {
	var sched models.Schedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	coachID := c.Param("id")
	if err := h.Schedule.ReplaceSchedule(c.Request.Context(), middleware.GetSession(c), coachID, &sched); err != nil {
		getLogger(c).Warn("schedule save rejected", zap.String("coachId", coachID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}
