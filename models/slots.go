package models

// TimeSlot is a computed candidate start time for one day. Slots are never
// persisted; they are recomputed on every query.
type TimeSlot struct {
	Time      string `json:"time"` // 12-hour display, e.g. "9:30 AM"
	Available bool   `json:"available"`
}

// BusinessHours describes the vendor's open window for one day.
type BusinessHours struct {
	Open    string `json:"open"`  // "HH:MM"
	Close   string `json:"close"` // "HH:MM"
	Display string `json:"display"`
}

// VendorAvailability is the response for a vendor-wide availability query.
type VendorAvailability struct {
	VendorID       string         `json:"vendorId"`
	Date           string         `json:"date"` // "YYYY-MM-DD"
	IsOpen         bool           `json:"isOpen"`
	Message        string         `json:"message,omitempty"`
	BusinessHours  *BusinessHours `json:"businessHours,omitempty"`
	TimeSlots      []TimeSlot     `json:"timeSlots"`
	AvailableSlots []string       `json:"availableSlots"`
	TotalSlots     int            `json:"totalSlots"`
	BookedSlots    int            `json:"bookedSlots"`
	StaffCount     int            `json:"staffCount"`
}

// StaffAvailability is the response for a staff-specific availability query.
type StaffAvailability struct {
	StaffID           string         `json:"staffId"`
	Date              string         `json:"date"`
	IsAvailableOnDate bool           `json:"isAvailableOnDate"`
	TimeSlots         []TimeSlot     `json:"timeSlots"`
	AvailableSlots    []string       `json:"availableSlots"`
	Schedule          WeeklySchedule `json:"schedule"`
}

// ReminderPayload is the asynq task payload for a booking reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	VendorID    string `json:"vendorId"`
	CustomerID  string `json:"customerId"`
	ServiceName string `json:"serviceName,omitempty"`
	StartsAt    string `json:"startsAt"` // RFC 3339
}
