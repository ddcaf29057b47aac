package handlers

import (
	"net/http"
	"strconv"

	"courtside/middleware"
	"courtside/models"
	"courtside/services/venue"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VenueHandler exposes venue endpoints.
type VenueHandler struct {
	Svc venue.VenueService
}

func NewVenueHandler(svc venue.VenueService) *VenueHandler {
	return &VenueHandler{Svc: svc}
}

// ListHandler answers GET /api/venues with an optional status filter.
func (h *VenueHandler) ListHandler(c *gin.Context) {
	var status *int
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "status must be 0 or 1")
			return
		}
		status = &v
	}

	venues, err := h.Svc.List(c.Request.Context(), status)
	if err != nil {
		getLogger(c).Error("venue list failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// GetHandler answers GET /api/venues/:id.
func (h *VenueHandler) GetHandler(c *gin.Context) {
	v, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if v == nil {
		utils.JSONError(c, http.StatusNotFound, "Venue not found", "")
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateHandler answers POST /api/venues (admin).
func (h *VenueHandler) CreateHandler(c *gin.Context) {
	var req models.Venue
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

// UpdateHandler answers PUT /api/venues/:id (admin).
func (h *VenueHandler) UpdateHandler(c *gin.Context) {
	var req models.Venue
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

// DeleteHandler answers DELETE /api/venues/:id (admin).
func (h *VenueHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
