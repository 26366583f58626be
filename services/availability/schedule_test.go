package availability

import (
	"testing"
	"time"

	"glowbook/models"
)

func TestScheduleFor(t *testing.T) {
	s := staffWith(time.Tuesday, models.DaySchedule{IsAvailable: true, StartTime: "10:00", EndTime: "18:00"})
	ds := ScheduleFor(&s, time.Tuesday)
	if !ds.IsAvailable || ds.StartTime != "10:00" {
		t.Errorf("unexpected schedule: %+v", ds)
	}
	if ScheduleFor(&s, time.Wednesday).IsAvailable {
		t.Error("unset weekday should read as unavailable")
	}
	if ScheduleFor(nil, time.Tuesday).IsAvailable {
		t.Error("nil staff should read as unavailable")
	}
}

func TestValidateDaySchedule(t *testing.T) {
	valid := models.DaySchedule{
		IsAvailable: true, StartTime: "09:00", EndTime: "17:00",
		Breaks: []models.BreakInterval{
			{StartTime: "12:00", EndTime: "13:00"},
			{StartTime: "10:00", EndTime: "10:15"},
		},
	}
	if err := ValidateDaySchedule(valid); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}

	if err := ValidateDaySchedule(models.DaySchedule{}); err != nil {
		t.Errorf("unavailable day should be valid, got %v", err)
	}

	bad := []models.DaySchedule{
		{IsAvailable: true, StartTime: "17:00", EndTime: "09:00"},
		{IsAvailable: true, StartTime: "09:00", EndTime: "09:00"},
		{IsAvailable: true, StartTime: "09:00", EndTime: "17:00",
			Breaks: []models.BreakInterval{{StartTime: "08:00", EndTime: "09:30"}}},
		{IsAvailable: true, StartTime: "09:00", EndTime: "17:00",
			Breaks: []models.BreakInterval{{StartTime: "13:00", EndTime: "12:00"}}},
		{IsAvailable: true, StartTime: "09:00", EndTime: "17:00",
			Breaks: []models.BreakInterval{
				{StartTime: "12:00", EndTime: "13:00"},
				{StartTime: "12:30", EndTime: "14:00"},
			}},
	}
	for i, ds := range bad {
		if err := ValidateDaySchedule(ds); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, ds)
		}
	}
}

func TestValidateWeeklySchedule(t *testing.T) {
	var w models.WeeklySchedule
	w[time.Monday] = models.DaySchedule{IsAvailable: true, StartTime: "09:00", EndTime: "17:00"}
	if err := ValidateWeeklySchedule(w); err != nil {
		t.Errorf("valid weekly schedule rejected: %v", err)
	}
	w[time.Friday] = models.DaySchedule{IsAvailable: true, StartTime: "17:00", EndTime: "09:00"}
	if err := ValidateWeeklySchedule(w); err == nil {
		t.Error("expected error for inverted Friday window")
	}
}
