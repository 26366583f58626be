package booking

import (
	"time"

	"glowbook/models"
)

// CreateBookingInput is the payload for booking a slot.
type CreateBookingInput struct {
	VendorID    string `json:"vendorId" binding:"required"`
	StaffID     string `json:"staffId" binding:"required"`
	CustomerID  string `json:"customerId" binding:"required"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime   string `json:"startTime" binding:"required"` // "HH:MM"
	Duration    int    `json:"duration"`                     // minutes, default 60
}

// BookingService creates and cancels appointments. Creating a booking
// re-checks the requested interval against the calendar immediately before
// insert; availability queries elsewhere remain point-in-time snapshots.
type BookingService interface {
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	CancelBooking(id string) error
	VendorBookings(vendorID string, date time.Time) ([]models.Booking, error)
}

// ReminderScheduler enqueues a reminder for an upcoming booking. The cron
// package provides the asynq-backed implementation.
type ReminderScheduler interface {
	Schedule(b *models.Booking) error
}
