package availability

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"glowbook/models"
)

// bruteOverlap scans minute by minute so the closed-form check in Overlaps
// has an independent witness.
func bruteOverlap(aStart, aEnd, bStart, bEnd int) bool {
	for m := aStart; m < aEnd; m++ {
		if m >= bStart && m < bEnd {
			return true
		}
	}
	return false
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{540, 600, 600, 660, false}, // back to back
		{540, 600, 570, 630, true},
		{540, 660, 570, 600, true}, // containment
		{540, 600, 480, 540, false},
		{540, 600, 480, 541, true},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestOverlaps_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		aStart := rng.Intn(1440)
		aEnd := aStart + 1 + rng.Intn(180)
		bStart := rng.Intn(1440)
		bEnd := bStart + 1 + rng.Intn(180)
		want := bruteOverlap(aStart, aEnd, bStart, bEnd)
		if got := Overlaps(aStart, aEnd, bStart, bEnd); got != want {
			t.Fatalf("Overlaps(%d,%d,%d,%d) = %v, brute force says %v",
				aStart, aEnd, bStart, bEnd, got, want)
		}
	}
}

func TestBookedIntervalsOn(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{Datetime: time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC), Duration: 30, Status: models.BookingStatusConfirmed},
		{Datetime: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), Duration: 60, Status: models.BookingStatusCancelled},
		{Datetime: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), Duration: 30, Status: models.BookingStatusPending},
	}
	got := BookedIntervalsOn(bookings, date)
	want := []BookedInterval{{Start: 630, End: 660}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BookedIntervalsOn = %v, want %v", got, want)
	}
}

func TestMarkAvailability_BookingBlocksSlot(t *testing.T) {
	slots, err := GenerateSlots("09:00", "12:00", 30, []models.BreakInterval{
		{StartTime: "10:00", EndTime: "10:30"},
	})
	if err != nil {
		t.Fatalf("GenerateSlots returned error: %v", err)
	}
	booked := []BookedInterval{{Start: 630, End: 660}} // 10:30 for 30 min
	_, available := MarkAvailability(slots, 30, booked, 0)
	want := []string{"9:00 AM", "9:30 AM", "11:00 AM", "11:30 AM"}
	if !reflect.DeepEqual(available, want) {
		t.Errorf("available = %v, want %v", available, want)
	}
}

func TestMarkAvailability_TrailingEdge(t *testing.T) {
	// 90-minute service against a window ending at 11:00: only starts that
	// leave room for the full duration survive.
	slots, err := GenerateSlots("09:00", "11:00", 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots returned error: %v", err)
	}
	windowEnd, _ := TimeToMinutes("11:00")
	timeSlots, available := MarkAvailability(slots, 90, nil, windowEnd)
	want := []string{"9:00 AM", "9:30 AM"}
	if !reflect.DeepEqual(available, want) {
		t.Errorf("available = %v, want %v", available, want)
	}
	if len(timeSlots) != 4 {
		t.Errorf("expected all 4 candidates annotated, got %d", len(timeSlots))
	}
	for _, ts := range timeSlots[2:] {
		if ts.Available {
			t.Errorf("slot %s should not fit a 90-minute service", ts.Time)
		}
	}
}

func TestMarkAvailability_NoWindowEnd(t *testing.T) {
	slots, err := GenerateSlots("09:00", "11:00", 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots returned error: %v", err)
	}
	_, available := MarkAvailability(slots, 90, nil, 0)
	if len(available) != len(slots) {
		t.Errorf("without a window end every free slot stays available, got %v", available)
	}
}
