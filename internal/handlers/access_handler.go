package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/minhct267/Tech-Lab-Management/internal/identity"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

var accessDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lab_access_request_decisions_total",
		Help: "Access request submissions and decisions",
	},
	[]string{"outcome"},
)

type AccessHandler struct {
	Access *service.AccessService
	Authz  *service.AuthorizationService
}

func NewAccessHandler(access *service.AccessService, authz *service.AuthorizationService) *AccessHandler {
	return &AccessHandler{Access: access, Authz: authz}
}

func (h *AccessHandler) SubmitRequest(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionSubmitAccessRequest) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to submit access requests"})
		return
	}

	var body struct {
		LabID   string `json:"labId" binding:"required"`
		TeamID  string `json:"teamId"`
		Reason  string `json:"reason"`
		Answers []int  `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := identity.UserFromContext(c.Request.Context())
	request, err := h.Access.SubmitAccessRequest(c.Request.Context(), user.ID, body.LabID, body.TeamID, body.Reason, body.Answers)
	if err != nil {
		abortWithError(c, err)
		return
	}
	accessDecisions.WithLabelValues(string(request.Status)).Inc()
	c.JSON(http.StatusCreated, request)
}

func (h *AccessHandler) Approve(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionApproveAccessReq) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to approve access requests"})
		return
	}

	user := identity.UserFromContext(c.Request.Context())
	grant, err := h.Access.ApproveAccessRequest(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	accessDecisions.WithLabelValues("approved").Inc()
	c.JSON(http.StatusOK, grant)
}

func (h *AccessHandler) Reject(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionRejectAccessReq) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to reject access requests"})
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// Body is optional on reject.
	_ = c.ShouldBindJSON(&body)

	user := identity.UserFromContext(c.Request.Context())
	if err := h.Access.RejectAccessRequest(c.Request.Context(), c.Param("id"), user.ID, body.Reason); err != nil {
		abortWithError(c, err)
		return
	}
	accessDecisions.WithLabelValues("rejected").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "rejected"})
}

func (h *AccessHandler) ListRequests(c *gin.Context) {
	var status *models.AccessRequestStatus
	if raw := c.Query("status"); raw != "" {
		s := models.AccessRequestStatus(raw)
		status = &s
	}

	requests, err := h.Access.GetAccessRequests(c.Request.Context(), status, c.Query("labId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *AccessHandler) CheckAccess(c *gin.Context) {
	labID := c.Query("labId")
	if labID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "labId is required"})
		return
	}
	user := identity.UserFromContext(c.Request.Context())
	hasAccess, err := h.Access.HasAccess(c.Request.Context(), user.ID, labID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labId": labID, "hasAccess": hasAccess})
}
