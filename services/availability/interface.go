package availability

import (
	"time"

	"glowbook/models"
)

// AvailabilityService computes bookable time slots. Both entry points are
// read-only: they never write or cache, and every query is an independent
// point-in-time snapshot, not a reservation.
type AvailabilityService interface {
	// VendorAvailability returns the merged-envelope slot list for a
	// vendor's whole roster. A zero date defaults to today at local
	// midnight.
	VendorAvailability(vendorID string, date time.Time) (*models.VendorAvailability, error)
	// StaffAvailability returns the slot list for one staff member,
	// parameterized by the requested service duration in minutes
	// (0 defaults to 60).
	StaffAvailability(staffID string, date time.Time, serviceDuration int) (*models.StaffAvailability, error)
}
