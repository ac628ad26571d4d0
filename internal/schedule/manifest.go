package schedule

import (
	"sort"
	"strings"
	"time"

	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/utils"
)

// DailyManifest filters allBookings to the driver's jobs starting on day
// and orders them by start time. The sort is stable, so bookings sharing
// a start time keep their input order.
func DailyManifest(driverID string, day time.Time, allBookings []models.Booking) []models.Booking {
	from := utils.DayStart(day)
	to := utils.DayEnd(day)

	out := make([]models.Booking, 0)
	for _, b := range allBookings {
		if b.DriverID == nil || *b.DriverID != driverID {
			continue
		}
		if b.StartTime.Before(from) || b.StartTime.After(to) {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// MatchesSearch does a case-insensitive substring match against the
// booking title and client name. An empty query matches everything.
func MatchesSearch(b models.Booking, query string) bool {
	q := utils.FoldSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.ClientName), q)
}

// FilterSearch applies MatchesSearch on top of an already filtered list.
// Summary totals are never computed from a searched list.
func FilterSearch(bookings []models.Booking, query string) []models.Booking {
	if utils.FoldSearch(query) == "" {
		return bookings
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if MatchesSearch(b, query) {
			out = append(out, b)
		}
	}
	return out
}

// DriverSummary aggregates a driver's whole booking history.
type DriverSummary struct {
	Count            int     `json:"count"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalOutstanding float64 `json:"totalOutstanding"`
}

// SummarizeDriver totals revenue over every booking assigned to the
// driver regardless of date, and outstanding over the UNPAID and PARTIAL
// ones.
func SummarizeDriver(driverID string, allBookings []models.Booking) DriverSummary {
	var s DriverSummary
	for _, b := range allBookings {
		if b.DriverID == nil || *b.DriverID != driverID {
			continue
		}
		s.Count++
		s.TotalRevenue += b.PriceOrZero()
		if b.ClientPaymentStatus == models.StatusUnpaid || b.ClientPaymentStatus == models.StatusPartial {
			s.TotalOutstanding += b.PriceOrZero()
		}
	}
	return s
}
