package schedule

import (
	"dispatchboard/internal/domain/models"
)

const (
	// MinSlotHeightPx keeps very short bookings clickable.
	MinSlotHeightPx = 24
	// detailThresholdPx is the height above which the time range and
	// client name lines have room.
	detailThresholdPx = 45
)

// SlotBox places a booking inside a day column of a time grid.
type SlotBox struct {
	Top         float64 `json:"top"`
	Height      float64 `json:"height"`
	ShowDetails bool    `json:"showDetails"`
	Unassigned  bool    `json:"unassigned"`
}

// Project maps a booking onto a vertical pixel offset/height for a grid
// starting at gridStartHour with rowHeightPx per hour. A start before the
// grid's first hour yields a negative Top; clipping is the caller's job.
func Project(b models.Booking, gridStartHour, rowHeightPx float64) SlotBox {
	startFrac := float64(b.StartTime.Hour()) + float64(b.StartTime.Minute())/60.0
	top := (startFrac - gridStartHour) * rowHeightPx

	height := b.DurationMinutes() / 60.0 * rowHeightPx
	if height < MinSlotHeightPx {
		height = MinSlotHeightPx
	}

	return SlotBox{
		Top:         top,
		Height:      height,
		ShowDetails: height > detailThresholdPx,
		Unassigned:  b.IsUnassigned(),
	}
}
