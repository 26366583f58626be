package availability

import (
	"fmt"
	"sort"
	"time"

	"glowbook/models"
)

// ScheduleFor returns the staff member's schedule entry for the given
// weekday. A nil staff record or a zero entry reads as unavailable.
func ScheduleFor(s *models.Staff, day time.Weekday) models.DaySchedule {
	if s == nil {
		return models.DaySchedule{}
	}
	return s.Schedule.Day(day)
}

// ValidateDaySchedule checks the schedule invariants for a single weekday:
// startTime precedes endTime, every break lies inside the working window,
// and breaks do not overlap each other. An unavailable day is always valid.
func ValidateDaySchedule(d models.DaySchedule) error {
	if !d.IsAvailable {
		return nil
	}
	start, err := TimeToMinutes(d.StartTime)
	if err != nil {
		return err
	}
	end, err := TimeToMinutes(d.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return NewValidationError(fmt.Sprintf("startTime %s must precede endTime %s", d.StartTime, d.EndTime))
	}

	type window struct {
		start, end int
	}
	windows := make([]window, 0, len(d.Breaks))
	for _, br := range d.Breaks {
		bs, err := TimeToMinutes(br.StartTime)
		if err != nil {
			return err
		}
		be, err := TimeToMinutes(br.EndTime)
		if err != nil {
			return err
		}
		if bs >= be {
			return NewValidationError(fmt.Sprintf("break %s-%s is empty or inverted", br.StartTime, br.EndTime))
		}
		if bs < start || be > end {
			return NewValidationError(fmt.Sprintf("break %s-%s falls outside working hours %s-%s", br.StartTime, br.EndTime, d.StartTime, d.EndTime))
		}
		windows = append(windows, window{start: bs, end: be})
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].start < windows[j].start })
	for i := 1; i < len(windows); i++ {
		if windows[i].start < windows[i-1].end {
			return NewValidationError("breaks overlap each other")
		}
	}
	return nil
}

// ValidateWeeklySchedule runs ValidateDaySchedule across all seven days.
func ValidateWeeklySchedule(w models.WeeklySchedule) error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if err := ValidateDaySchedule(w.Day(day)); err != nil {
			return NewValidationError(fmt.Sprintf("%s: %v", WeekdayName(day), err))
		}
	}
	return nil
}
