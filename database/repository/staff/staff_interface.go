package staffRepo

import "glowbook/models"

// StaffRepository defines methods for staff data access.
type StaffRepository interface {
	// GetByID retrieves a staff member by its unique ID. Returns (nil, nil)
	// when no document matches.
	GetByID(id string) (*models.Staff, error)
	// GetActiveByVendor retrieves all active staff on a vendor's roster.
	GetActiveByVendor(vendorID string) ([]models.Staff, error)
	// Create inserts a new staff record.
	Create(staff *models.Staff) error
	// UpdateSchedule replaces a staff member's weekly schedule.
	UpdateSchedule(id string, schedule models.WeeklySchedule) error
	// SetActive toggles a staff member's active flag.
	SetActive(id string, active bool) error
}
