package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/minhct267/Tech-Lab-Management/internal/identity"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
)

var bookingAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lab_access_booking_attempts_total",
		Help: "Booking attempts by outcome",
	},
	[]string{"outcome"},
)

type BookingHandler struct {
	Scheduling *service.SchedulingService
	Authz      *service.AuthorizationService
}

func NewBookingHandler(scheduling *service.SchedulingService, authz *service.AuthorizationService) *BookingHandler {
	return &BookingHandler{Scheduling: scheduling, Authz: authz}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var body struct {
		LabID       string    `json:"labId"`
		EquipmentID string    `json:"equipmentId"`
		TeamID      string    `json:"teamId"`
		Start       time.Time `json:"start" binding:"required"`
		End         time.Time `json:"end" binding:"required"`
		Purpose     string    `json:"purpose"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Authorization gates whether scheduling is consulted at all; the
	// scheduler enforces no-overlap regardless of the outcome here.
	if !h.Authz.CanCreateBooking(c.Request.Context(), body.LabID, body.EquipmentID) {
		bookingAttempts.WithLabelValues("forbidden").Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to book this resource"})
		return
	}

	user := identity.UserFromContext(c.Request.Context())
	booking := &models.Booking{
		LabID:       body.LabID,
		EquipmentID: body.EquipmentID,
		UserID:      user.ID,
		TeamID:      body.TeamID,
		Start:       body.Start,
		End:         body.End,
		Purpose:     body.Purpose,
		Status:      models.BookingPending,
	}
	if err := h.Scheduling.TryCreateBooking(c.Request.Context(), booking); err != nil {
		bookingAttempts.WithLabelValues("rejected").Inc()
		abortWithError(c, err)
		return
	}

	bookingAttempts.WithLabelValues("confirmed").Inc()
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bookings, err := h.Scheduling.GetBookingsForResource(c.Request.Context(), c.Query("labId"), c.Query("equipmentId"), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Conflicts(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	conflicts, err := h.Scheduling.GetConflicts(c.Request.Context(), c.Query("labId"), c.Query("equipmentId"), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, conflicts)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	if !h.Authz.HasPermission(c.Request.Context(), models.PermissionApproveBooking) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to reject bookings"})
		return
	}
	if err := h.Scheduling.RejectBooking(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rejected"})
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
