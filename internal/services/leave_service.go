package services

import (
	"time"

	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"
)

// LeaveService is the single mutation surface over the availability
// ledger. The repository row is authoritative across restarts; within a
// query the hydrated schedule.Ledger answers repeated day checks.
type LeaveService struct {
	LeaveRepo repositories.LeaveRepository
	RequestID string
}

// Toggle flips the (driver, day) leave state and returns the new state.
func (s LeaveService) Toggle(driverID string, day time.Time) (bool, error) {
	onLeave, err := s.LeaveRepo.Toggle(driverID, day)
	if err != nil {
		return false, err
	}
	state := "available"
	if onLeave {
		state = "on_leave"
	}
	utils.LogEvent(s.RequestID, "leave", "toggle", "driver="+driverID+" day="+utils.FormatDate(day)+" now="+state)
	return onLeave, nil
}

// MonthLedger loads the driver's leave days for the month containing ref
// into a ledger, plus the sorted day list for rendering.
func (s LeaveService) MonthLedger(driverID string, ref time.Time) (*schedule.Ledger, []time.Time, error) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	records, err := s.LeaveRepo.ListRange(driverID, first, last)
	if err != nil {
		return nil, nil, err
	}
	ledger := schedule.NewLedgerFrom(records)
	return ledger, ledger.Days(driverID), nil
}
