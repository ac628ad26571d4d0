package schedule

import (
	"testing"
	"time"

	"dispatchboard/internal/domain/models"
)

func driverBooking(id, driverID string, start time.Time) models.Booking {
	b := models.Booking{ID: id, StartTime: start}
	if driverID != "" {
		d := driverID
		b.DriverID = &d
	}
	return b
}

func TestDailyManifestFiltersAndSorts(t *testing.T) {
	day := date(2024, time.May, 10)
	all := []models.Booking{
		driverBooking("late", "drv-1", time.Date(2024, time.May, 10, 18, 0, 0, 0, time.Local)),
		driverBooking("other-day", "drv-1", time.Date(2024, time.May, 11, 9, 0, 0, 0, time.Local)),
		driverBooking("other-driver", "drv-2", time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)),
		driverBooking("early", "drv-1", time.Date(2024, time.May, 10, 7, 30, 0, 0, time.Local)),
		driverBooking("unassigned", "", time.Date(2024, time.May, 10, 8, 0, 0, 0, time.Local)),
	}

	got := DailyManifest("drv-1", day, all)
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("wrong order: %s then %s", got[0].ID, got[1].ID)
	}
}

func TestDailyManifestIncludesWholeDay(t *testing.T) {
	day := date(2024, time.May, 10)
	all := []models.Booking{
		driverBooking("midnight", "drv-1", time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)),
		driverBooking("last-ms", "drv-1", time.Date(2024, time.May, 10, 23, 59, 59, int(999*time.Millisecond), time.Local)),
		driverBooking("next-day", "drv-1", time.Date(2024, time.May, 11, 0, 0, 0, 0, time.Local)),
	}

	got := DailyManifest("drv-1", day, all)
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want midnight and last-ms", len(got))
	}
}

func TestDailyManifestStableOnTies(t *testing.T) {
	day := date(2024, time.May, 10)
	same := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)
	all := []models.Booking{
		driverBooking("first-in", "drv-1", same),
		driverBooking("second-in", "drv-1", same),
	}

	got := DailyManifest("drv-1", day, all)
	if got[0].ID != "first-in" || got[1].ID != "second-in" {
		t.Fatalf("tie broke input order: %s then %s", got[0].ID, got[1].ID)
	}
}

func TestMatchesSearch(t *testing.T) {
	b := models.Booking{Title: "Airport Transfer", ClientName: "Maria Lopez"}

	if !MatchesSearch(b, "") {
		t.Fatalf("empty query should match")
	}
	if !MatchesSearch(b, "airport") {
		t.Fatalf("title match should be case-insensitive")
	}
	if !MatchesSearch(b, "LOPEZ") {
		t.Fatalf("client name match should be case-insensitive")
	}
	if MatchesSearch(b, "harbor") {
		t.Fatalf("unrelated query matched")
	}
}

func TestSummarizeDriverTotals(t *testing.T) {
	all := []models.Booking{
		withPayment(driverBooking("a", "drv-1", date(2024, time.May, 1)), money(100), models.StatusPaid),
		withPayment(driverBooking("b", "drv-1", date(2024, time.June, 1)), money(200), models.StatusUnpaid),
		withPayment(driverBooking("c", "drv-1", date(2024, time.July, 1)), money(50), models.StatusPartial),
		withPayment(driverBooking("d", "drv-1", date(2024, time.July, 2)), nil, models.StatusUnpaid),
		withPayment(driverBooking("e", "drv-2", date(2024, time.July, 3)), money(999), models.StatusUnpaid),
	}

	s := SummarizeDriver("drv-1", all)
	if s.Count != 4 {
		t.Fatalf("count = %d, want 4", s.Count)
	}
	if s.TotalRevenue != 350 {
		t.Fatalf("revenue = %v, want 350", s.TotalRevenue)
	}
	if s.TotalOutstanding != 250 {
		t.Fatalf("outstanding = %v, want 250 (UNPAID + PARTIAL)", s.TotalOutstanding)
	}
}

func TestSearchDoesNotAffectSummary(t *testing.T) {
	all := []models.Booking{
		withPayment(searchable("a", "drv-1", "Airport run"), money(100), models.StatusUnpaid),
		withPayment(searchable("b", "drv-1", "Harbor run"), money(200), models.StatusUnpaid),
	}

	day := date(2024, time.May, 10)
	manifest := FilterSearch(DailyManifest("drv-1", day, all), "airport")
	if len(manifest) != 1 {
		t.Fatalf("search should narrow the manifest to 1 entry, got %d", len(manifest))
	}

	s := SummarizeDriver("drv-1", all)
	if s.TotalOutstanding != 300 {
		t.Fatalf("summary must reflect full history, got %v", s.TotalOutstanding)
	}
}

func withPayment(b models.Booking, price *float64, status models.PaymentStatus) models.Booking {
	b.ClientPrice = price
	b.ClientPaymentStatus = status
	return b
}

func searchable(id, driverID, title string) models.Booking {
	b := driverBooking(id, driverID, time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local))
	b.Title = title
	return b
}
