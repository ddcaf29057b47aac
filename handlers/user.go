package handlers

import (
	"net/http"

	"courtside/middleware"
	"courtside/models"
	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

type credentialsRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname,omitempty"`
}

// RegisterHandler answers POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Svc.Register(c.Request.Context(), req.Phone, req.Password, req.Nickname)
	if err != nil {
		getLogger(c).Warn("registration rejected", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler answers POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Svc.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ProfileHandler answers GET /api/users/me.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	session := middleware.GetSession(c)
	u, err := h.Svc.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

type roleRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Role        string `json:"role" binding:"required"`
	CurrentRole string `json:"currentRole,omitempty"`
}

// SetRolesHandler answers PUT /api/users/role (admin).
func (h *UserHandler) SetRolesHandler(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.Svc.SetRoles(c.Request.Context(), middleware.GetSession(c), req.UserID,
		models.Role(req.Role), models.Role(req.CurrentRole))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
