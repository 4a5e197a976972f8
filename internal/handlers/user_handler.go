package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

type UserHandler struct {
	Auth  *service.AuthService
	Authz *service.AuthorizationService
}

func NewUserHandler(auth *service.AuthService, authz *service.AuthorizationService) *UserHandler {
	return &UserHandler{Auth: auth, Authz: authz}
}

func (h *UserHandler) List(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageUsers) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage users"})
		return
	}
	users, err := h.Auth.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageUsers) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage users"})
		return
	}
	var body struct {
		Name         string          `json:"name" binding:"required"`
		Email        string          `json:"email" binding:"required,email"`
		Username     string          `json:"username" binding:"required"`
		Password     string          `json:"password" binding:"required"`
		Role         models.UserRole `json:"role" binding:"required"`
		SupervisorID string          `json:"supervisorId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Auth.ProvisionUser(c.Request.Context(), body.Name, body.Email, body.Username, body.Password, body.Role, body.SupervisorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
