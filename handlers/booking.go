package handlers

import (
	"errors"
	"net/http"
	"time"

	"glowbook/services/booking"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if callerID, ok := c.Get("callerID"); ok && input.CustomerID == "" {
		input.CustomerID = callerID.(string)
	}

	created, err := h.Service.CreateBooking(input)
	if err != nil {
		var cErr *booking.ConflictError
		if errors.As(err, &cErr) {
			utils.JSONError(c, http.StatusConflict, "slot unavailable", cErr.Message)
			return
		}
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// CancelBooking handles DELETE /api/bookings/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelBooking(id); err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListVendorBookings handles GET /api/bookings/vendor/:vendorId?date=YYYY-MM-DD
func (h *BookingHandler) ListVendorBookings(c *gin.Context) {
	vendorID := c.Param("vendorId")

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	bookings, err := h.Service.VendorBookings(vendorID, date)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
