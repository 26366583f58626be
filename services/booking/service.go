package booking

import (
	"fmt"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	staffRepo "glowbook/database/repository/staff"
	"glowbook/models"
	"glowbook/services/availability"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on the Mongo repositories.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Staff    staffRepo.StaffRepository

	// Reminders is optional; nil disables reminder scheduling.
	Reminders ReminderScheduler
	// Now supplies the reference instant; tests inject a fixed clock.
	Now func() time.Time
}

func (svc *DefaultBookingService) clock() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// CreateBooking validates the request, re-checks the requested interval
// against the staff member's schedule and existing commitments, and inserts
// the booking as pending.
func (svc *DefaultBookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if input.Duration < 0 {
		return nil, availability.NewValidationError("duration must be positive")
	}
	if input.Duration == 0 {
		input.Duration = availability.DefaultServiceDuration
	}
	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return nil, availability.NewValidationError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", input.Date))
	}
	startMinutes, err := availability.TimeToMinutes(input.StartTime)
	if err != nil {
		return nil, err
	}

	staff, err := svc.Staff.GetByID(input.StaffID)
	if err != nil {
		return nil, availability.NewDependencyError("fetch staff", err)
	}
	if staff == nil || !staff.IsActive {
		return nil, availability.NewNotFoundError("staff", input.StaffID)
	}
	if staff.VendorID != input.VendorID {
		return nil, availability.NewValidationError("staff member does not belong to the vendor")
	}

	ds := availability.ScheduleFor(staff, date.Weekday())
	if !ds.IsAvailable {
		return nil, NewConflictError("staff member is not working on the requested day")
	}
	windowStart, err := availability.TimeToMinutes(ds.StartTime)
	if err != nil {
		return nil, err
	}
	windowEnd, err := availability.TimeToMinutes(ds.EndTime)
	if err != nil {
		return nil, err
	}
	endMinutes := startMinutes + input.Duration
	if startMinutes < windowStart || endMinutes > windowEnd {
		return nil, NewConflictError("requested slot falls outside working hours")
	}
	for _, br := range ds.Breaks {
		bs, err := availability.TimeToMinutes(br.StartTime)
		if err != nil {
			return nil, err
		}
		be, err := availability.TimeToMinutes(br.EndTime)
		if err != nil {
			return nil, err
		}
		if availability.Overlaps(startMinutes, endMinutes, bs, be) {
			return nil, NewConflictError("requested slot overlaps a scheduled break")
		}
	}

	// Conflict check immediately before insert.
	dayStart := availability.Midnight(date)
	existing, err := svc.Bookings.FindBlocking(input.VendorID, input.StaffID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, availability.NewDependencyError("fetch bookings", err)
	}
	for _, b := range availability.BookedIntervalsOn(existing, dayStart) {
		if availability.Overlaps(startMinutes, endMinutes, b.Start, b.End) {
			return nil, NewConflictError("requested slot is already booked")
		}
	}

	now := svc.clock()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		VendorID:    input.VendorID,
		StaffID:     input.StaffID,
		CustomerID:  input.CustomerID,
		ServiceName: input.ServiceName,
		Datetime:    dayStart.Add(time.Duration(startMinutes) * time.Minute),
		Duration:    input.Duration,
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if booking.Datetime.Before(now) {
		return nil, availability.NewValidationError("cannot book a slot in the past")
	}
	if err := svc.Bookings.Create(booking); err != nil {
		return nil, availability.NewDependencyError("create booking", err)
	}

	if svc.Reminders != nil {
		if err := svc.Reminders.Schedule(booking); err != nil {
			// Reminder delivery is best-effort; the booking stands.
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("vendorID", booking.VendorID),
		zap.String("staffID", booking.StaffID),
		zap.Time("datetime", booking.Datetime))
	return booking, nil
}

// CancelBooking flips a future booking to cancelled. Bookings that have
// already started cannot be cancelled.
func (svc *DefaultBookingService) CancelBooking(id string) error {
	booking, err := svc.Bookings.GetByID(id)
	if err != nil {
		return availability.NewDependencyError("fetch booking", err)
	}
	if booking == nil {
		return availability.NewNotFoundError("booking", id)
	}
	if !booking.Blocks() {
		return availability.NewValidationError(fmt.Sprintf("booking %s is already %s", id, booking.Status))
	}
	if svc.clock().After(booking.Datetime) {
		return availability.NewValidationError(fmt.Sprintf("cannot cancel booking %s: it has already started", id))
	}
	if err := svc.Bookings.UpdateStatus(id, models.BookingStatusCancelled); err != nil {
		return availability.NewDependencyError("cancel booking", err)
	}
	return nil
}

// VendorBookings lists all bookings on a vendor's calendar for one day.
func (svc *DefaultBookingService) VendorBookings(vendorID string, date time.Time) ([]models.Booking, error) {
	if vendorID == "" {
		return nil, availability.NewValidationError("vendorId is required")
	}
	if date.IsZero() {
		date = svc.clock()
	}
	dayStart := availability.Midnight(date)
	bookings, err := svc.Bookings.FindByVendor(vendorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, availability.NewDependencyError("fetch bookings", err)
	}
	return bookings, nil
}
