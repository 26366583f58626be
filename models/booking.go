package models

import "time"

// Booking status values. Only pending and confirmed bookings occupy
// calendar time; cancelled and completed ones do not.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents an appointment on a vendor's (and optionally a
// specific staff member's) calendar. It occupies the half-open interval
// [Datetime, Datetime + Duration minutes).
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	VendorID    string    `bson:"vendorId" json:"vendorId"`
	StaffID     string    `bson:"staffId,omitempty" json:"staffId,omitempty"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	ServiceName string    `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Datetime    time.Time `bson:"datetime" json:"datetime"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Blocks reports whether the booking still occupies its calendar interval.
func (b Booking) Blocks() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
