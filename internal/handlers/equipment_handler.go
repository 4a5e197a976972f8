package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

type EquipmentHandler struct {
	Equipment   *service.EquipmentService
	Maintenance *service.MaintenanceService
	Authz       *service.AuthorizationService
}

func NewEquipmentHandler(equipment *service.EquipmentService, maintenance *service.MaintenanceService, authz *service.AuthorizationService) *EquipmentHandler {
	return &EquipmentHandler{Equipment: equipment, Maintenance: maintenance, Authz: authz}
}

func (h *EquipmentHandler) List(c *gin.Context) {
	equipment, err := h.Equipment.ListEquipment(c.Request.Context(), c.Query("labId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageEquipment) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage equipment"})
		return
	}
	var eq models.Equipment
	if err := c.ShouldBindJSON(&eq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.Equipment.CreateEquipment(c.Request.Context(), &eq)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CanUse answers whether the acting user may operate the equipment.
func (h *EquipmentHandler) CanUse(c *gin.Context) {
	eq, err := h.Equipment.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"equipmentId": eq.ID,
		"canUse":      h.Authz.CanUseEquipment(c.Request.Context(), eq),
	})
}

func (h *EquipmentHandler) CreateMaintenanceTask(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageEquipment) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage equipment"})
		return
	}
	var body struct {
		Type    string    `json:"type" binding:"required"`
		Notes   string    `json:"notes"`
		DueDate time.Time `json:"dueDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.Maintenance.CreateTask(c.Request.Context(), c.Param("id"), body.Type, body.Notes, body.DueDate)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *EquipmentHandler) CompleteMaintenanceTask(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageEquipment) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage equipment"})
		return
	}
	if err := h.Maintenance.CompleteTask(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "completed"})
}

func (h *EquipmentHandler) ListMaintenanceTasks(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageEquipment) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage equipment"})
		return
	}
	tasks, err := h.Maintenance.ListTasks(c.Request.Context(), c.Query("open") == "true")
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
