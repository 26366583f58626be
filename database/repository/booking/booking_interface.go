package bookingRepo

import (
	"time"

	"glowbook/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// no document matches.
	GetByID(id string) (*models.Booking, error)
	// FindBlocking retrieves pending and confirmed bookings for a vendor
	// whose start falls in [from, to). An empty staffID matches all staff.
	FindBlocking(vendorID, staffID string, from, to time.Time) ([]models.Booking, error)
	// FindByVendor retrieves all bookings for a vendor in [from, to),
	// regardless of status.
	FindByVendor(vendorID string, from, to time.Time) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus sets a booking's status.
	UpdateStatus(id, status string) error
}
