package availability

import (
	"time"

	"glowbook/models"
)

// BookedInterval is an existing commitment on a day's calendar, expressed
// in minutes from midnight.
type BookedInterval struct {
	Start int
	End   int
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// BookedIntervalsOn projects blocking bookings onto minute-of-day intervals
// for the given local date. Bookings on other dates or with non-blocking
// status are dropped.
func BookedIntervalsOn(bookings []models.Booking, date time.Time) []BookedInterval {
	y, mo, d := date.Date()
	var intervals []BookedInterval
	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		local := b.Datetime.In(date.Location())
		ly, lmo, ld := local.Date()
		if ly != y || lmo != mo || ld != d {
			continue
		}
		start := local.Hour()*60 + local.Minute()
		intervals = append(intervals, BookedInterval{Start: start, End: start + b.Duration})
	}
	return intervals
}

// MarkAvailability annotates every candidate slot with whether a service of
// the given duration starting there would overlap an existing commitment.
// When windowEnd > 0, slots without enough room before the end of the
// working window are also ruled out. The second return value lists only the
// available display times, kept for backward-compatible consumers.
func MarkAvailability(slots []Slot, serviceDuration int, booked []BookedInterval, windowEnd int) ([]models.TimeSlot, []string) {
	timeSlots := make([]models.TimeSlot, 0, len(slots))
	available := make([]string, 0, len(slots))
	for _, s := range slots {
		slotStart := s.Minutes
		slotEnd := slotStart + serviceDuration

		free := windowEnd <= 0 || slotEnd <= windowEnd
		if free {
			for _, b := range booked {
				if Overlaps(slotStart, slotEnd, b.Start, b.End) {
					free = false
					break
				}
			}
		}

		timeSlots = append(timeSlots, models.TimeSlot{Time: s.Display, Available: free})
		if free {
			available = append(available, s.Display)
		}
	}
	return timeSlots, available
}
