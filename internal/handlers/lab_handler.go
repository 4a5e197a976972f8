package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

type LabHandler struct {
	Labs  *service.LabService
	Authz *service.AuthorizationService
}

func NewLabHandler(labs *service.LabService, authz *service.AuthorizationService) *LabHandler {
	return &LabHandler{Labs: labs, Authz: authz}
}

func (h *LabHandler) List(c *gin.Context) {
	labs, err := h.Labs.ListLabs(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, labs)
}

func (h *LabHandler) Get(c *gin.Context) {
	lab, err := h.Labs.GetLab(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, lab)
}

func (h *LabHandler) Create(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageLabs) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage labs"})
		return
	}
	var lab models.Lab
	if err := c.ShouldBindJSON(&lab); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.Labs.CreateLab(c.Request.Context(), &lab)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CanEnter answers whether the acting user may enter the lab right now.
func (h *LabHandler) CanEnter(c *gin.Context) {
	lab, err := h.Labs.GetLab(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"labId":    lab.ID,
		"canEnter": h.Authz.CanEnterLab(c.Request.Context(), lab),
	})
}

func (h *LabHandler) GetInduction(c *gin.Context) {
	test, err := h.Labs.GetInductionTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *LabHandler) UpsertInduction(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionManageLabs) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to manage labs"})
		return
	}
	var body struct {
		Questions     []models.Question `json:"questions" binding:"required"`
		PassThreshold int               `json:"passThreshold"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	test, err := h.Labs.UpsertInductionTest(c.Request.Context(), c.Param("id"), body.Questions, body.PassThreshold)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}
