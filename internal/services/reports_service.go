package services

import (
	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"
)

// DriverReport pairs a driver with their all-time totals.
type DriverReport struct {
	Driver  models.Driver          `json:"driver"`
	Summary schedule.DriverSummary `json:"summary"`
}

type ReportsService struct {
	BookingRepo repositories.BookingRepository
	DriverRepo  repositories.DriverRepository

	FetchBookings func() ([]models.Booking, error)
}

func (s ReportsService) loadBookings() ([]models.Booking, error) {
	if s.FetchBookings != nil {
		return s.FetchBookings()
	}
	return s.BookingRepo.ListAll()
}

// DriverSummary totals one driver across all bookings regardless of date.
func (s ReportsService) DriverSummary(driverID string) (schedule.DriverSummary, error) {
	if _, err := s.DriverRepo.GetByID(driverID); err != nil {
		return schedule.DriverSummary{}, err
	}
	all, err := s.loadBookings()
	if err != nil {
		return schedule.DriverSummary{}, err
	}
	return roundSummary(schedule.SummarizeDriver(driverID, all)), nil
}

// AllDriverSummaries builds the reporting overview for every driver.
func (s ReportsService) AllDriverSummaries() ([]DriverReport, error) {
	drivers, err := s.DriverRepo.ListAll()
	if err != nil {
		return nil, err
	}
	all, err := s.loadBookings()
	if err != nil {
		return nil, err
	}

	out := make([]DriverReport, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, DriverReport{
			Driver:  d,
			Summary: roundSummary(schedule.SummarizeDriver(d.ID, all)),
		})
	}
	return out, nil
}

// roundSummary applies 2dp rounding at the payload edge; the engine keeps
// totals unrounded.
func roundSummary(s schedule.DriverSummary) schedule.DriverSummary {
	s.TotalRevenue = utils.RoundMoney(s.TotalRevenue)
	s.TotalOutstanding = utils.RoundMoney(s.TotalOutstanding)
	return s
}
