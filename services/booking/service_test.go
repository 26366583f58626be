package booking

import (
	"errors"
	"testing"
	"time"

	"glowbook/models"
	"glowbook/services/availability"
)

type stubStaffRepo struct {
	staff *models.Staff
	err   error
}

func (s *stubStaffRepo) GetByID(id string) (*models.Staff, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.staff == nil || s.staff.ID != id {
		return nil, nil
	}
	return s.staff, nil
}
func (s *stubStaffRepo) GetActiveByVendor(string) ([]models.Staff, error)   { return nil, nil }
func (s *stubStaffRepo) Create(*models.Staff) error                         { return nil }
func (s *stubStaffRepo) UpdateSchedule(string, models.WeeklySchedule) error { return nil }
func (s *stubStaffRepo) SetActive(string, bool) error                       { return nil }

type stubBookingRepo struct {
	bookings []models.Booking
	statuses map[string]string
	err      error
}

func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, nil
}

func (s *stubBookingRepo) FindBlocking(vendorID, staffID string, from, to time.Time) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.VendorID == vendorID && b.Blocks() && (staffID == "" || b.StaffID == staffID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) FindByVendor(vendorID string, from, to time.Time) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingRepo) Create(b *models.Booking) error {
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *stubBookingRepo) UpdateStatus(id, status string) error {
	if s.statuses == nil {
		s.statuses = map[string]string{}
	}
	s.statuses[id] = status
	return nil
}

type stubReminder struct {
	scheduled []*models.Booking
	err       error
}

func (s *stubReminder) Schedule(b *models.Booking) error {
	s.scheduled = append(s.scheduled, b)
	return s.err
}

// Fixed reference day, resolved in the local zone the way booking dates are.
var bookingDay = time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local) // a Monday

func workingStaff() *models.Staff {
	s := &models.Staff{ID: "s1", VendorID: "v1", Name: "Amara", IsActive: true}
	s.Schedule[time.Monday] = models.DaySchedule{
		IsAvailable: true, StartTime: "09:00", EndTime: "17:00",
		Breaks: []models.BreakInterval{{StartTime: "12:00", EndTime: "13:00"}},
	}
	return s
}

func newBookingService(staff *models.Staff, existing []models.Booking) (*DefaultBookingService, *stubBookingRepo, *stubReminder) {
	repo := &stubBookingRepo{bookings: existing}
	rem := &stubReminder{}
	svc := &DefaultBookingService{
		Bookings:  repo,
		Staff:     &stubStaffRepo{staff: staff},
		Reminders: rem,
		Now:       func() time.Time { return bookingDay.Add(8 * time.Hour) },
	}
	return svc, repo, rem
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		VendorID:    "v1",
		StaffID:     "s1",
		CustomerID:  "c1",
		ServiceName: "Deep Tissue Massage",
		Date:        "2025-03-03",
		StartTime:   "10:00",
		Duration:    60,
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, rem := newBookingService(workingStaff(), nil)

	b, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if b.ID == "" {
		t.Error("expected generated booking ID")
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("Status = %q, want pending", b.Status)
	}
	if want := bookingDay.Add(10 * time.Hour); !b.Datetime.Equal(want) {
		t.Errorf("Datetime = %v, want %v", b.Datetime, want)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	if len(rem.scheduled) != 1 {
		t.Errorf("expected 1 scheduled reminder, got %d", len(rem.scheduled))
	}
}

func TestCreateBooking_Conflict(t *testing.T) {
	existing := []models.Booking{{
		ID: "b0", VendorID: "v1", StaffID: "s1",
		Datetime: bookingDay.Add(10*time.Hour + 30*time.Minute),
		Duration: 60, Status: models.BookingStatusConfirmed,
	}}
	svc, _, _ := newBookingService(workingStaff(), existing)

	_, err := svc.CreateBooking(validInput())
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("overlapping request: got %v, want ConflictError", err)
	}
}

func TestCreateBooking_Rejections(t *testing.T) {
	var cerr *ConflictError
	var verr *availability.ValidationError
	var nferr *availability.NotFoundError

	// Outside working hours.
	svc, _, _ := newBookingService(workingStaff(), nil)
	in := validInput()
	in.StartTime = "16:30"
	if _, err := svc.CreateBooking(in); !errors.As(err, &cerr) {
		t.Errorf("slot past closing: got %v, want ConflictError", err)
	}

	// Overlapping the lunch break.
	in = validInput()
	in.StartTime = "11:30"
	if _, err := svc.CreateBooking(in); !errors.As(err, &cerr) {
		t.Errorf("slot across break: got %v, want ConflictError", err)
	}

	// Off day.
	in = validInput()
	in.Date = "2025-03-04"
	if _, err := svc.CreateBooking(in); !errors.As(err, &cerr) {
		t.Errorf("off-day request: got %v, want ConflictError", err)
	}

	// In the past relative to the clock.
	lateSvc, _, _ := newBookingService(workingStaff(), nil)
	lateSvc.Now = func() time.Time { return bookingDay.Add(11 * time.Hour) }
	in = validInput()
	in.StartTime = "09:00"
	if _, err := lateSvc.CreateBooking(in); !errors.As(err, &verr) {
		t.Errorf("past slot: got %v, want ValidationError", err)
	}

	// Malformed inputs.
	in = validInput()
	in.Date = "03/03/2025"
	if _, err := svc.CreateBooking(in); !errors.As(err, &verr) {
		t.Errorf("bad date: got %v, want ValidationError", err)
	}
	in = validInput()
	in.Duration = -30
	if _, err := svc.CreateBooking(in); !errors.As(err, &verr) {
		t.Errorf("negative duration: got %v, want ValidationError", err)
	}

	// Unknown or mismatched staff.
	in = validInput()
	in.StaffID = "ghost"
	if _, err := svc.CreateBooking(in); !errors.As(err, &nferr) {
		t.Errorf("unknown staff: got %v, want NotFoundError", err)
	}
	in = validInput()
	in.VendorID = "other-vendor"
	if _, err := svc.CreateBooking(in); !errors.As(err, &verr) {
		t.Errorf("staff from another vendor: got %v, want ValidationError", err)
	}
}

func TestCreateBooking_ReminderFailureIsNonFatal(t *testing.T) {
	svc, repo, rem := newBookingService(workingStaff(), nil)
	rem.err = errors.New("queue unavailable")

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Error("booking should be stored despite reminder failure")
	}
}

func TestCancelBooking(t *testing.T) {
	existing := []models.Booking{{
		ID: "b1", VendorID: "v1", StaffID: "s1",
		Datetime: bookingDay.Add(14 * time.Hour),
		Duration: 60, Status: models.BookingStatusConfirmed,
	}}
	svc, repo, _ := newBookingService(workingStaff(), existing)

	if err := svc.CancelBooking("b1"); err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if repo.statuses["b1"] != models.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", repo.statuses["b1"])
	}
}

func TestCancelBooking_Rejections(t *testing.T) {
	existing := []models.Booking{
		{ID: "done", VendorID: "v1", Datetime: bookingDay.Add(14 * time.Hour), Status: models.BookingStatusCompleted},
		{ID: "started", VendorID: "v1", Datetime: bookingDay.Add(7 * time.Hour), Status: models.BookingStatusConfirmed},
	}
	svc, _, _ := newBookingService(workingStaff(), existing)

	var nferr *availability.NotFoundError
	if err := svc.CancelBooking("missing"); !errors.As(err, &nferr) {
		t.Errorf("unknown booking: got %v, want NotFoundError", err)
	}

	var verr *availability.ValidationError
	if err := svc.CancelBooking("done"); !errors.As(err, &verr) {
		t.Errorf("terminal booking: got %v, want ValidationError", err)
	}
	if err := svc.CancelBooking("started"); !errors.As(err, &verr) {
		t.Errorf("already started booking: got %v, want ValidationError", err)
	}
}

func TestVendorBookings(t *testing.T) {
	existing := []models.Booking{
		{ID: "b1", VendorID: "v1", Datetime: bookingDay.Add(10 * time.Hour), Status: models.BookingStatusPending},
		{ID: "b2", VendorID: "v1", Datetime: bookingDay.Add(11 * time.Hour), Status: models.BookingStatusCancelled},
	}
	svc, _, _ := newBookingService(workingStaff(), existing)

	got, err := svc.VendorBookings("v1", bookingDay)
	if err != nil {
		t.Fatalf("VendorBookings returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected all statuses listed, got %d bookings", len(got))
	}

	var verr *availability.ValidationError
	if _, err := svc.VendorBookings("", bookingDay); !errors.As(err, &verr) {
		t.Errorf("missing vendorId: got %v, want ValidationError", err)
	}
}
