package availability

import (
	"fmt"
	"testing"
	"time"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "ab:cd", "24:00", "12:60", "-1:30", "12:-5"} {
		if _, err := TimeToMinutes(in); err == nil {
			t.Errorf("TimeToMinutes(%q) expected error, got nil", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// minutesToTime(timeToMinutes(t)) == t for every valid "HH:MM".
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			in := fmt.Sprintf("%02d:%02d", h, m)
			minutes, err := TimeToMinutes(in)
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) returned error: %v", in, err)
			}
			if out := MinutesToTime(minutes); out != in {
				t.Fatalf("round trip %q -> %d -> %q", in, minutes, out)
			}
		}
	}
}

func TestFormatTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"12:45", "12:45 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		if got := FormatTo12Hour(tc.in); got != tc.want {
			t.Errorf("FormatTo12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(time.Sunday); got != "sunday" {
		t.Errorf("WeekdayName(Sunday) = %q", got)
	}
	if got := WeekdayName(time.Saturday); got != "saturday" {
		t.Errorf("WeekdayName(Saturday) = %q", got)
	}
}
