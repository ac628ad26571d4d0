package services

import (
	"testing"

	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAllDriverSummariesRoundsTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM drivers").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "phone", "email"}).
			AddRow("drv-1", "John Smith", "DRIVER", "", ""))

	third := 100.0 / 3.0
	svc := ReportsService{
		DriverRepo: repositories.DriverRepository{DB: db},
		FetchBookings: func() ([]models.Booking, error) {
			b := testBooking("b1", 9, "Airport run")
			b.ClientPrice = &third
			return []models.Booking{b}, nil
		},
	}

	reports, err := svc.AllDriverSummaries()
	if err != nil {
		t.Fatalf("reports error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	s := reports[0].Summary
	if s.Count != 1 {
		t.Fatalf("count = %d", s.Count)
	}
	if s.TotalRevenue != 33.33 {
		t.Fatalf("revenue should round to 2dp, got %v", s.TotalRevenue)
	}
	if s.TotalOutstanding != 33.33 {
		t.Fatalf("outstanding should round to 2dp, got %v", s.TotalOutstanding)
	}
}
