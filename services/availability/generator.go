package availability

import (
	"glowbook/models"
)

// DefaultSlotInterval is the slot granularity in minutes when the vendor
// has not configured one.
const DefaultSlotInterval = 30

// DefaultServiceDuration is assumed when a staff query omits the duration.
const DefaultServiceDuration = 60

// Slot is a single candidate start time produced by the generator.
type Slot struct {
	Minutes int    // minutes from midnight
	Display string // 12-hour display, e.g. "9:30 AM"
}

// GenerateSlots walks [startTime, endTime) in interval-minute steps and
// emits a candidate for every step that does not land inside a break
// interval [break start, break end). The result is ordered, finite and a
// pure function of the inputs. startTime == endTime yields no slots.
func GenerateSlots(startTime, endTime string, interval int, breaks []models.BreakInterval) ([]Slot, error) {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return nil, err
	}
	end, err := TimeToMinutes(endTime)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultSlotInterval
	}

	// Resolve break windows up front; a malformed break fails the whole
	// call rather than silently widening availability.
	type window struct {
		start, end int
	}
	windows := make([]window, 0, len(breaks))
	for _, br := range breaks {
		bs, err := TimeToMinutes(br.StartTime)
		if err != nil {
			return nil, err
		}
		be, err := TimeToMinutes(br.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window{start: bs, end: be})
	}

	var slots []Slot
	for cur := start; cur < end; cur += interval {
		inBreak := false
		for _, w := range windows {
			if cur >= w.start && cur < w.end {
				inBreak = true
				break
			}
		}
		if inBreak {
			continue
		}
		slots = append(slots, Slot{Minutes: cur, Display: formatMinutes12(cur)})
	}
	return slots, nil
}
