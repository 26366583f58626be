package availability

import (
	"fmt"
	"sync"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	staffRepo "glowbook/database/repository/staff"
	vendorRepo "glowbook/database/repository/vendor"
	"glowbook/models"
	"glowbook/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService composes the slot generator, the schedule
// aggregator and the booking conflict filter over the persistent store.
type DefaultAvailabilityService struct {
	Vendors  vendorRepo.VendorRepository
	Staff    staffRepo.StaffRepository
	Bookings bookingRepo.BookingRepository

	// Now supplies the reference instant used when the caller omits the
	// date. Tests inject a fixed clock; nil falls back to time.Now.
	Now func() time.Time
}

func (svc *DefaultAvailabilityService) clock() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// VendorAvailability runs the vendor-wide query: merge all active staff
// schedules for the weekday into one envelope, generate candidate slots and
// annotate them against the day's blocking bookings.
func (svc *DefaultAvailabilityService) VendorAvailability(vendorID string, date time.Time) (*models.VendorAvailability, error) {
	logger := utils.GetLogger()

	if vendorID == "" {
		return nil, NewValidationError("vendorId is required")
	}
	if date.IsZero() {
		date = svc.clock()
	}
	dayStart := Midnight(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	vendor, err := svc.Vendors.GetByID(vendorID)
	if err != nil {
		return nil, NewDependencyError("fetch vendor", err)
	}
	if vendor == nil || vendor.UserType != models.UserTypeVendor {
		return nil, NewNotFoundError("vendor", vendorID)
	}

	// The roster and the day's bookings are independent reads.
	var (
		wg         sync.WaitGroup
		staff      []models.Staff
		staffErr   error
		bookings   []models.Booking
		bookingErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		staff, staffErr = svc.Staff.GetActiveByVendor(vendorID)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingErr = svc.Bookings.FindBlocking(vendorID, "", dayStart, dayEnd)
	}()
	wg.Wait()
	if staffErr != nil {
		return nil, NewDependencyError("fetch staff", staffErr)
	}
	if bookingErr != nil {
		return nil, NewDependencyError("fetch bookings", bookingErr)
	}

	resp := &models.VendorAvailability{
		VendorID:       vendorID,
		Date:           dayStart.Format("2006-01-02"),
		StaffCount:     len(staff),
		TimeSlots:      []models.TimeSlot{},
		AvailableSlots: []string{},
	}

	if len(staff) == 0 {
		resp.Message = "No staff members available"
		return resp, nil
	}

	env, open, err := MergeSchedules(staff, dayStart.Weekday())
	if err != nil {
		return nil, err
	}
	if !open {
		resp.Message = "Closed today"
		return resp, nil
	}

	interval := vendor.SlotInterval
	if interval <= 0 {
		interval = DefaultSlotInterval
	}

	slots, err := GenerateSlots(env.StartTime, env.EndTime, interval, env.Breaks)
	if err != nil {
		return nil, err
	}

	booked := BookedIntervalsOn(bookings, dayStart)
	timeSlots, available := MarkAvailability(slots, interval, booked, 0)

	resp.IsOpen = true
	resp.BusinessHours = &models.BusinessHours{
		Open:    env.StartTime,
		Close:   env.EndTime,
		Display: fmt.Sprintf("%s - %s", FormatTo12Hour(env.StartTime), FormatTo12Hour(env.EndTime)),
	}
	resp.TimeSlots = timeSlots
	resp.AvailableSlots = available
	resp.TotalSlots = len(timeSlots)
	resp.BookedSlots = len(timeSlots) - len(available)

	logger.Debug("vendor availability computed",
		zap.String("vendorID", vendorID),
		zap.String("date", resp.Date),
		zap.Int("totalSlots", resp.TotalSlots),
		zap.Int("bookedSlots", resp.BookedSlots))
	return resp, nil
}

// StaffAvailability runs the specific-staff query. The slot generator
// always steps by the fixed granularity; the requested service duration
// only affects which generated slots are excluded for lack of room before
// the next commitment or the end of the working window.
func (svc *DefaultAvailabilityService) StaffAvailability(staffID string, date time.Time, serviceDuration int) (*models.StaffAvailability, error) {
	if staffID == "" {
		return nil, NewValidationError("staffId is required")
	}
	if date.IsZero() {
		return nil, NewValidationError("date is required")
	}
	if serviceDuration < 0 {
		return nil, NewValidationError("duration must be positive")
	}
	if serviceDuration == 0 {
		serviceDuration = DefaultServiceDuration
	}
	dayStart := Midnight(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	staff, err := svc.Staff.GetByID(staffID)
	if err != nil {
		return nil, NewDependencyError("fetch staff", err)
	}
	if staff == nil || !staff.IsActive {
		return nil, NewNotFoundError("staff", staffID)
	}

	resp := &models.StaffAvailability{
		StaffID:        staffID,
		Date:           dayStart.Format("2006-01-02"),
		Schedule:       staff.Schedule,
		TimeSlots:      []models.TimeSlot{},
		AvailableSlots: []string{},
	}

	ds := ScheduleFor(staff, dayStart.Weekday())
	if !ds.IsAvailable {
		return resp, nil
	}
	resp.IsAvailableOnDate = true

	bookings, err := svc.Bookings.FindBlocking(staff.VendorID, staffID, dayStart, dayEnd)
	if err != nil {
		return nil, NewDependencyError("fetch bookings", err)
	}

	slots, err := GenerateSlots(ds.StartTime, ds.EndTime, DefaultSlotInterval, ds.Breaks)
	if err != nil {
		return nil, err
	}
	windowEnd, err := TimeToMinutes(ds.EndTime)
	if err != nil {
		return nil, err
	}

	booked := BookedIntervalsOn(bookings, dayStart)
	timeSlots, available := MarkAvailability(slots, serviceDuration, booked, windowEnd)
	resp.TimeSlots = timeSlots
	resp.AvailableSlots = available
	return resp, nil
}
