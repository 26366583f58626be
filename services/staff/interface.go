package staff

import "glowbook/models"

// CreateStaffInput is the payload for adding a staff member to a roster.
type CreateStaffInput struct {
	VendorID    string                `json:"vendorId" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	Role        string                `json:"role"`
	Specialties []string              `json:"specialties"`
	Schedule    models.WeeklySchedule `json:"schedule"`
}

// StaffService manages a vendor's staff roster and weekly schedules.
type StaffService interface {
	CreateStaff(input CreateStaffInput) (*models.Staff, error)
	GetStaff(id string) (*models.Staff, error)
	UpdateSchedule(id string, schedule models.WeeklySchedule) (*models.Staff, error)
	DeactivateStaff(id string) error
}
