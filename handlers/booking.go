package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/booking"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

// BookingHandler exposes the console's booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// currentAdmin returns the operator identity placed on the context by the
// admin auth middleware.
func currentAdmin(c *gin.Context) models.AdminIdentity {
	if v, ok := c.Get("adminIdentity"); ok {
		if id, ok := v.(models.AdminIdentity); ok {
			return id
		}
	}
	return models.AdminIdentity{ID: "unknown"}
}

// ListBookingsHandler returns one page of bookings for the current filter state.
func (bh *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filters := query.Parse(c.Request.URL.Query())

	page, err := bh.Service.List(c.Request.Context(), filters)
	if err != nil {
		zap.L().Error("Failed to list bookings", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBookingHandler returns a single booking with its status history.
func (bh *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	b, err := bh.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"actions": bh.Service.Actions(b),
	})
}

// GetBookingActionsHandler returns the admin actions currently legal for a booking.
func (bh *BookingHandler) GetBookingActionsHandler(c *gin.Context) {
	id := c.Param("id")

	b, err := bh.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": bh.Service.Actions(b)})
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingHandler executes the guarded cancellation flow. An omitted
// reason is defaulted by the service, never rejected.
func (bh *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")

	var req cancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
			return
		}
	}

	b, err := bh.Service.Cancel(c.Request.Context(), currentAdmin(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
