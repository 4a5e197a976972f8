package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

type AnalyticsHandler struct {
	Analytics *service.AnalyticsService
	Authz     *service.AuthorizationService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, authz *service.AuthorizationService) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: analytics, Authz: authz}
}

func (h *AnalyticsHandler) allowed(c *gin.Context) bool {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionViewAllBookings) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view analytics"})
		return false
	}
	return true
}

// rangeOrDefault parses the from/to query range. Absent values default to the
// trailing 30 days; values that were supplied but do not parse are an error.
func (h *AnalyticsHandler) rangeOrDefault(c *gin.Context) (time.Time, time.Time, error) {
	rawFrom, rawTo := c.Query("from"), c.Query("to")
	if rawFrom == "" && rawTo == "" {
		now := time.Now().UTC()
		return now.AddDate(0, 0, -30), now, nil
	}
	from, err := time.Parse(time.RFC3339, rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (h *AnalyticsHandler) BookingVolume(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	from, to, err := h.rangeOrDefault(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := h.Analytics.GetBookingVolumeByRoleAndHour(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) ApprovalRate(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	from, to, err := h.rangeOrDefault(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := h.Analytics.GetAccessApprovalRateByRole(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) InductionScores(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	rows, err := h.Analytics.GetAverageInductionScoreByLab(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) EquipmentHours(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	from, to, err := h.rangeOrDefault(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := h.Analytics.GetEquipmentBookedHoursByWeek(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
