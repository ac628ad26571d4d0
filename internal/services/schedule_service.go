package services

import (
	"time"

	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"
)

// Default layout geometry for the day/week time grids.
const (
	DefaultGridStartHour = 6.0
	DefaultRowHeightPx   = 60.0
)

// CellView is a grid cell annotated with the driver's leave state.
type CellView struct {
	Date    string `json:"date"`
	InMonth bool   `json:"inMonth"`
	OnLeave bool   `json:"onLeave"`
}

// PositionedBooking pairs a booking with its slot geometry and the
// collection annotation the driver needs at a glance.
type PositionedBooking struct {
	Booking        models.Booking             `json:"booking"`
	Slot           schedule.SlotBox           `json:"slot"`
	Collection     *schedule.CollectionResult `json:"collection,omitempty"`
	CollectionText string                     `json:"collectionText,omitempty"`
}

// ScheduleView is everything a calendar screen needs for one period.
type ScheduleView struct {
	View     schedule.ViewUnit   `json:"view"`
	Label    string              `json:"label"`
	Cells    []CellView          `json:"cells"`
	Bookings []PositionedBooking `json:"bookings"`
}

type ScheduleService struct {
	BookingRepo repositories.BookingRepository
	LeaveRepo   repositories.LeaveRepository
	RequestID   string

	GridStartHour float64
	RowHeightPx   float64

	// FetchBookings overrides the repository lookup in tests.
	FetchBookings func() ([]models.Booking, error)
}

func (s ScheduleService) geometry() (float64, float64) {
	start, row := s.GridStartHour, s.RowHeightPx
	if row <= 0 {
		row = DefaultRowHeightPx
	}
	if start == 0 {
		start = DefaultGridStartHour
	}
	return start, row
}

func (s ScheduleService) loadBookings() ([]models.Booking, error) {
	if s.FetchBookings != nil {
		return s.FetchBookings()
	}
	return s.BookingRepo.ListAll()
}

// BuildView assembles the grid, the positioned bookings within it, and
// per-cell leave flags for the selected driver. An empty driverID keeps
// every booking (the dispatcher's overview).
func (s ScheduleService) BuildView(unit schedule.ViewUnit, ref time.Time, driverID string) (ScheduleView, error) {
	var cells []schedule.DayCell
	switch unit {
	case schedule.UnitMonth:
		cells = schedule.MonthGrid(ref)
	case schedule.UnitWeek:
		cells = schedule.WeekGrid(ref)
	default:
		unit = schedule.UnitDay
		cells = []schedule.DayCell{{Date: utils.DayStart(ref), InMonth: true}}
	}

	from := utils.DayStart(cells[0].Date)
	to := utils.DayEnd(cells[len(cells)-1].Date)

	all, err := s.loadBookings()
	if err != nil {
		return ScheduleView{}, err
	}

	gridStart, rowHeight := s.geometry()
	positioned := make([]PositionedBooking, 0)
	for _, b := range all {
		if driverID != "" && (b.DriverID == nil || *b.DriverID != driverID) {
			continue
		}
		if b.StartTime.Before(from) || b.StartTime.After(to) {
			continue
		}
		pb := PositionedBooking{
			Booking: b,
			Slot:    schedule.Project(b, gridStart, rowHeight),
		}
		if res, ok := schedule.CollectionFor(b); ok {
			r := res
			pb.Collection = &r
			pb.CollectionText = FormatCollection(res)
		}
		positioned = append(positioned, pb)
	}

	ledger := schedule.NewLedger()
	if driverID != "" {
		records, err := s.LeaveRepo.ListRange(driverID, from, to)
		if err != nil {
			return ScheduleView{}, err
		}
		ledger = schedule.NewLedgerFrom(records)
	}

	out := ScheduleView{
		View:     unit,
		Label:    schedule.HeaderLabel(ref, unit),
		Cells:    make([]CellView, 0, len(cells)),
		Bookings: positioned,
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, CellView{
			Date:    utils.FormatDate(c.Date),
			InMonth: c.InMonth,
			OnLeave: driverID != "" && ledger.IsOnLeave(driverID, c.Date),
		})
	}

	utils.LogEvent(s.RequestID, "schedule", "build_view",
		"view="+string(unit)+" ref="+utils.FormatDate(ref)+" driver="+driverID)
	return out, nil
}
