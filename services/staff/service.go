package staff

import (
	"time"

	staffRepo "glowbook/database/repository/staff"
	vendorRepo "glowbook/database/repository/vendor"
	"glowbook/models"
	"glowbook/services/availability"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStaffService implements StaffService on the Mongo repositories.
// Schedule invariants are enforced here, at the write boundary, so the
// availability core can treat persisted schedules as well-formed.
type DefaultStaffService struct {
	Repo    staffRepo.StaffRepository
	Vendors vendorRepo.VendorRepository
}

// CreateStaff validates the schedule, verifies the vendor and inserts the
// new roster entry as active.
func (svc *DefaultStaffService) CreateStaff(input CreateStaffInput) (*models.Staff, error) {
	if err := availability.ValidateWeeklySchedule(input.Schedule); err != nil {
		return nil, err
	}

	vendor, err := svc.Vendors.GetByID(input.VendorID)
	if err != nil {
		return nil, availability.NewDependencyError("fetch vendor", err)
	}
	if vendor == nil || vendor.UserType != models.UserTypeVendor {
		return nil, availability.NewNotFoundError("vendor", input.VendorID)
	}

	now := time.Now()
	staff := &models.Staff{
		ID:          uuid.New().String(),
		VendorID:    input.VendorID,
		Name:        input.Name,
		Role:        input.Role,
		Specialties: input.Specialties,
		IsActive:    true,
		Schedule:    input.Schedule,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := svc.Repo.Create(staff); err != nil {
		return nil, availability.NewDependencyError("create staff", err)
	}

	utils.GetLogger().Info("staff member created",
		zap.String("staffID", staff.ID), zap.String("vendorID", staff.VendorID))
	return staff, nil
}

// GetStaff retrieves one roster entry.
func (svc *DefaultStaffService) GetStaff(id string) (*models.Staff, error) {
	staff, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, availability.NewDependencyError("fetch staff", err)
	}
	if staff == nil {
		return nil, availability.NewNotFoundError("staff", id)
	}
	return staff, nil
}

// UpdateSchedule validates and replaces the weekly schedule.
func (svc *DefaultStaffService) UpdateSchedule(id string, schedule models.WeeklySchedule) (*models.Staff, error) {
	if err := availability.ValidateWeeklySchedule(schedule); err != nil {
		return nil, err
	}

	staff, err := svc.GetStaff(id)
	if err != nil {
		return nil, err
	}
	if err := svc.Repo.UpdateSchedule(id, schedule); err != nil {
		return nil, availability.NewDependencyError("update schedule", err)
	}
	staff.Schedule = schedule
	return staff, nil
}

// DeactivateStaff removes a staff member from availability computation
// without deleting their record.
func (svc *DefaultStaffService) DeactivateStaff(id string) error {
	if _, err := svc.GetStaff(id); err != nil {
		return err
	}
	if err := svc.Repo.SetActive(id, false); err != nil {
		return availability.NewDependencyError("deactivate staff", err)
	}
	return nil
}
