package schedule

import (
	"testing"
	"time"

	"dispatchboard/internal/domain/models"
)

func bookingAt(h, min int, durationMin int) models.Booking {
	start := time.Date(2026, time.January, 5, h, min, 0, 0, time.Local)
	b := models.Booking{ID: "b1", StartTime: start}
	if durationMin > 0 {
		end := start.Add(time.Duration(durationMin) * time.Minute)
		b.EndTime = &end
	}
	return b
}

func TestProjectPlacesSlot(t *testing.T) {
	b := bookingAt(8, 30, 90)
	box := Project(b, 6, 60)

	if box.Top != 150 {
		t.Fatalf("top = %v, want 150", box.Top)
	}
	if box.Height != 90 {
		t.Fatalf("height = %v, want 90", box.Height)
	}
	if !box.ShowDetails {
		t.Fatalf("a 90px slot should have room for details")
	}
}

func TestProjectDefaultsToOneHour(t *testing.T) {
	b := bookingAt(9, 0, 0) // no end time
	box := Project(b, 6, 60)
	if box.Height != 60 {
		t.Fatalf("height = %v, want 60 for the default duration", box.Height)
	}
}

func TestProjectFloorsShortBookings(t *testing.T) {
	b := bookingAt(9, 0, 10)
	box := Project(b, 6, 60)
	if box.Height != MinSlotHeightPx {
		t.Fatalf("height = %v, want the %dpx floor", box.Height, MinSlotHeightPx)
	}
	if box.ShowDetails {
		t.Fatalf("a floored slot must not claim room for details")
	}
}

func TestProjectDetailThresholdBoundary(t *testing.T) {
	// 45 minutes at 60px/hour is exactly 45px: not enough room yet.
	if box := Project(bookingAt(9, 0, 45), 6, 60); box.ShowDetails {
		t.Fatalf("a 45px slot must not show details")
	}
	if box := Project(bookingAt(9, 0, 46), 6, 60); !box.ShowDetails {
		t.Fatalf("a 46px slot should show details")
	}
}

func TestProjectNeverBelowMinHeight(t *testing.T) {
	for _, dur := range []int{0, 1, 5, 15, 23, 24, 59, 600} {
		box := Project(bookingAt(12, 0, dur), 6, 60)
		if box.Height < MinSlotHeightPx {
			t.Fatalf("duration %dmin gave height %v below the floor", dur, box.Height)
		}
	}
}

func TestProjectAllowsNegativeTop(t *testing.T) {
	b := bookingAt(5, 0, 60)
	box := Project(b, 6, 60)
	if box.Top != -60 {
		t.Fatalf("top = %v, want -60 (clipping is the caller's job)", box.Top)
	}
}

func TestProjectFlagsUnassigned(t *testing.T) {
	b := bookingAt(9, 0, 60)
	if box := Project(b, 6, 60); !box.Unassigned {
		t.Fatalf("booking without driver or partner should be flagged unassigned")
	}

	drv := "drv-1"
	b.DriverID = &drv
	if box := Project(b, 6, 60); box.Unassigned {
		t.Fatalf("assigned booking flagged unassigned")
	}

	b.DriverID = nil
	partner := "ptn-1"
	b.PartnerID = &partner
	if box := Project(b, 6, 60); box.Unassigned {
		t.Fatalf("partner-assigned booking flagged unassigned")
	}
}
