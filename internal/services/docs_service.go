package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable driver-day manifest.
type DocsService struct {
	Manifests ManifestService
	RequestID string

	// Loader overrides manifest assembly in tests.
	Loader func(driverID string, day time.Time) (DayManifest, error)
}

func (s DocsService) loadManifest(driverID string, day time.Time) (DayManifest, error) {
	if s.Loader != nil {
		return s.Loader(driverID, day)
	}
	m := s.Manifests
	m.RequestID = s.RequestID
	return m.DailyManifest(driverID, day, "")
}

// GenerateManifestPDF builds the printable manifest and a filename.
func (s DocsService) GenerateManifestPDF(driverID string, day time.Time) ([]byte, string, error) {
	m, err := s.loadManifest(driverID, day)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_manifest", fmt.Sprintf("driver=%s day=%s", driverID, m.Date))
	return buildManifestPDF(m, day)
}

func buildManifestPDF(m DayManifest, day time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Driver Manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DRIVER MANIFEST")
	pdf.Ln(12)

	name := m.DriverName
	if strings.TrimSpace(name) == "" {
		name = m.DriverID
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Driver : "+name)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date   : "+schedule.HeaderLabel(day, schedule.UnitDay))
	pdf.Ln(10)

	if len(m.Entries) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No bookings for this day.")
		pdf.Ln(7)
	}

	for i, e := range m.Entries {
		b := e.Booking

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%d) %s  %s", i+1, b.StartTime.Format("15:04"), pdfText(b.Title)))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		lines := []string{
			fmt.Sprintf("Client  : %s", pdfText(b.ClientName)),
			fmt.Sprintf("Pax     : %d adults, %d kids", e.Adults, e.Kids),
			fmt.Sprintf("Pickup  : %s", pdfText(b.PickupAddress)),
		}
		if strings.TrimSpace(b.StopAddress) != "" {
			lines = append(lines, fmt.Sprintf("Stop    : %s", pdfText(b.StopAddress)))
		}
		lines = append(lines, fmt.Sprintf("Dropoff : %s", pdfText(b.DropoffAddress)))
		if strings.TrimSpace(b.Notes) != "" {
			lines = append(lines, fmt.Sprintf("Notes   : %s", pdfText(b.Notes)))
		}
		if e.CollectionText != "" {
			lines = append(lines, e.CollectionText)
		}
		for _, l := range lines {
			pdf.Cell(0, 6, l)
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("All-time: %d bookings, revenue %s, outstanding %s",
		m.Summary.Count,
		utils.FormatMoney(m.Summary.TotalRevenue),
		utils.FormatMoney(m.Summary.TotalOutstanding),
	))
	pdf.Ln(7)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s_%s.pdf", safeFilenamePart(name), m.Date)
	return buf.Bytes(), filename, nil
}

func pdfText(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
