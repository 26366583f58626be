package availability

import (
	"time"

	"glowbook/models"
)

// Envelope is the merged vendor-wide working window for one weekday:
// earliest start and latest end across the roster, plus the union of every
// available staff member's breaks. The union-of-breaks policy can
// under-block at the vendor level; the generated slot list is pruned
// afterwards only by booking conflicts.
type Envelope struct {
	StartTime  string
	EndTime    string
	Breaks     []models.BreakInterval
	StaffCount int // staff members available on this weekday
}

// MergeSchedules folds the weekday schedules of all staff into a single
// envelope. The second return value is false when no staff member is
// available on that weekday.
func MergeSchedules(staff []models.Staff, day time.Weekday) (Envelope, bool, error) {
	var (
		env      Envelope
		earliest int
		latest   int
		found    bool
	)
	for i := range staff {
		ds := ScheduleFor(&staff[i], day)
		if !ds.IsAvailable {
			continue
		}
		s, err := TimeToMinutes(ds.StartTime)
		if err != nil {
			return Envelope{}, false, err
		}
		e, err := TimeToMinutes(ds.EndTime)
		if err != nil {
			return Envelope{}, false, err
		}
		if !found || s < earliest {
			earliest = s
		}
		if !found || e > latest {
			latest = e
		}
		env.Breaks = append(env.Breaks, ds.Breaks...)
		env.StaffCount++
		found = true
	}
	if !found {
		return Envelope{}, false, nil
	}
	env.StartTime = MinutesToTime(earliest)
	env.EndTime = MinutesToTime(latest)
	return env, true, nil
}
