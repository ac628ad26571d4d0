package services

import (
	"bytes"
	"testing"
	"time"

	"dispatchboard/internal/schedule"
)

func TestGenerateManifestPDF(t *testing.T) {
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.Local)
	svc := DocsService{
		Loader: func(driverID string, d time.Time) (DayManifest, error) {
			entry := ManifestEntry{
				Booking:        testBooking("b1", 8, "Airport run"),
				Adults:         2,
				Kids:           1,
				CollectionText: "COLLECT 120.00 (FULL COLLECTION)",
			}
			return DayManifest{
				DriverID:   driverID,
				DriverName: "John Smith",
				Date:       "2026-02-03",
				Entries:    []ManifestEntry{entry},
				Summary:    schedule.DriverSummary{Count: 3, TotalRevenue: 400, TotalOutstanding: 120},
			}, nil
		},
	}

	pdfBytes, filename, err := svc.GenerateManifestPDF("drv-1", day)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("empty PDF output")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", pdfBytes[:8])
	}
	if filename != "MANIFEST_John_Smith_2026-02-03.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateManifestPDFEmptyDay(t *testing.T) {
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.Local)
	svc := DocsService{
		Loader: func(driverID string, d time.Time) (DayManifest, error) {
			return DayManifest{DriverID: driverID, Date: "2026-02-03"}, nil
		},
	}

	pdfBytes, filename, err := svc.GenerateManifestPDF("drv-1", day)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("empty-day manifest should still render")
	}
	if filename != "MANIFEST_drv-1_2026-02-03.pdf" {
		t.Fatalf("filename should fall back to the driver id, got %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("John Smith"); got != "John_Smith" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart("  "); got != "NA" {
		t.Fatalf("blank name should map to NA, got %q", got)
	}
	if got := safeFilenamePart(`a/b\c:d`); got != "a_b_c_d" {
		t.Fatalf("separators should be replaced, got %q", got)
	}
}
