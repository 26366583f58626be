package models

import "time"

// BreakInterval is a window inside a working day when no slots are offered,
// e.g. a lunch break.
type BreakInterval struct {
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM"
}

// DaySchedule is one weekday's working pattern. StartTime, EndTime and
// Breaks are only meaningful when IsAvailable is true.
type DaySchedule struct {
	IsAvailable bool            `bson:"isAvailable" json:"isAvailable"`
	StartTime   string          `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string          `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Breaks      []BreakInterval `bson:"breaks,omitempty" json:"breaks,omitempty"`
}

// WeeklySchedule holds one DaySchedule per weekday, indexed by
// time.Weekday (Sunday = 0). A zero entry reads as unavailable.
type WeeklySchedule [7]DaySchedule

// Day returns the schedule entry for the given weekday.
func (w WeeklySchedule) Day(d time.Weekday) DaySchedule {
	return w[d]
}

// Staff represents one member of a vendor's roster.
type Staff struct {
	ID          string         `bson:"id" json:"id"`
	VendorID    string         `bson:"vendorId" json:"vendorId"`
	Name        string         `bson:"name" json:"name"`
	Role        string         `bson:"role,omitempty" json:"role,omitempty"`
	Specialties []string       `bson:"specialties,omitempty" json:"specialties,omitempty"`
	IsActive    bool           `bson:"isActive" json:"isActive"`
	Schedule    WeeklySchedule `bson:"schedule" json:"schedule"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
