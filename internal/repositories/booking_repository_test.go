package repositories

import (
	"testing"
	"time"

	"dispatchboard/internal/domain"
	"dispatchboard/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingTestColumns = []string{
	"id", "title", "start_time", "end_time", "driver_id", "partner_id",
	"passengers_adults", "passengers_kids", "number_of_passengers",
	"payment_method", "client_price", "deposit", "client_payment_status",
	"pickup_address", "stop_address", "dropoff_address", "client_name", "notes", "color",
}

func TestBookingListAllScansOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Minute)

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow("bkg-1", "Airport run", start, end, "drv-1", nil,
			2, 1, nil,
			"CASH", 120.0, nil, "UNPAID",
			"Hotel Plaza", "", "Terminal 2", "Maria Lopez", "", "#ff8800").
		AddRow("bkg-2", "City tour", start.Add(3*time.Hour), nil, nil, nil,
			nil, nil, 3,
			"", nil, nil, "",
			"", "", "", "", "", "")
	mock.ExpectQuery("FROM bookings").WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	out, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d bookings, want 2", len(out))
	}

	first := out[0]
	if first.PaymentMethod != models.PaymentCash {
		t.Fatalf("payment method = %q", first.PaymentMethod)
	}
	if first.EndTime == nil || !first.EndTime.Equal(end) {
		t.Fatalf("end time not scanned: %v", first.EndTime)
	}
	if first.DriverID == nil || *first.DriverID != "drv-1" {
		t.Fatalf("driver not scanned: %v", first.DriverID)
	}
	if first.AdultCount() != 2 || first.KidCount() != 1 {
		t.Fatalf("pax counts = %d+%d", first.AdultCount(), first.KidCount())
	}

	second := out[1]
	if second.EndTime != nil {
		t.Fatalf("missing end time should stay nil")
	}
	if !second.IsUnassigned() {
		t.Fatalf("booking without driver/partner should be unassigned")
	}
	if second.AdultCount() != 3 {
		t.Fatalf("legacy passenger count should stand in for adults, got %d", second.AdultCount())
	}
	if second.PaymentMethod != models.PaymentUnset {
		t.Fatalf("empty method should parse to unset, got %q", second.PaymentMethod)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingTestColumns))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingCreateValidatesTemporalOrder(t *testing.T) {
	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	end := start.Add(-time.Hour)

	repo := BookingRepository{}
	err := repo.Create(models.Booking{ID: "bkg-1", StartTime: start, EndTime: &end})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for endTime before startTime, got %v", err)
	}
}

func TestBookingCreateRequiresStartTime(t *testing.T) {
	repo := BookingRepository{}
	err := repo.Create(models.Booking{ID: "bkg-1"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing startTime, got %v", err)
	}
}
