package services

import (
	"fmt"
	"strings"
	"time"

	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"
)

// FormatCollection renders a collection annotation the one way every
// consumer (manifest JSON, share text, PDF) shows it.
func FormatCollection(res schedule.CollectionResult) string {
	return fmt.Sprintf("COLLECT %s (%s)", utils.FormatMoney(res.Amount), strings.ToUpper(string(res.Label)))
}

// ManifestEntry is one job on a driver's daily manifest.
type ManifestEntry struct {
	Booking        models.Booking             `json:"booking"`
	Adults         int                        `json:"adults"`
	Kids           int                        `json:"kids"`
	Collection     *schedule.CollectionResult `json:"collection,omitempty"`
	CollectionText string                     `json:"collectionText,omitempty"`
}

// DayManifest is the ordered list of a driver's bookings for one day,
// with collection annotations and the driver's all-time summary.
type DayManifest struct {
	DriverID   string                 `json:"driverId"`
	DriverName string                 `json:"driverName"`
	Date       string                 `json:"date"`
	Entries    []ManifestEntry        `json:"entries"`
	Summary    schedule.DriverSummary `json:"summary"`
}

type ManifestService struct {
	BookingRepo repositories.BookingRepository
	DriverRepo  repositories.DriverRepository
	RequestID   string

	// FetchBookings and FetchDriver override the repositories in tests.
	FetchBookings func() ([]models.Booking, error)
	FetchDriver   func(id string) (models.Driver, error)
}

func (s ManifestService) loadBookings() ([]models.Booking, error) {
	if s.FetchBookings != nil {
		return s.FetchBookings()
	}
	return s.BookingRepo.ListAll()
}

func (s ManifestService) loadDriver(id string) (models.Driver, error) {
	if s.FetchDriver != nil {
		return s.FetchDriver(id)
	}
	return s.DriverRepo.GetByID(id)
}

// DailyManifest builds the driver's manifest for day. The free-text
// query narrows the entries only; the summary always reflects the
// driver's full history.
func (s ManifestService) DailyManifest(driverID string, day time.Time, query string) (DayManifest, error) {
	driver, err := s.loadDriver(driverID)
	if err != nil {
		return DayManifest{}, err
	}
	all, err := s.loadBookings()
	if err != nil {
		return DayManifest{}, err
	}

	ordered := schedule.DailyManifest(driverID, day, all)
	ordered = schedule.FilterSearch(ordered, query)

	entries := make([]ManifestEntry, 0, len(ordered))
	for _, b := range ordered {
		e := ManifestEntry{
			Booking: b,
			Adults:  b.AdultCount(),
			Kids:    b.KidCount(),
		}
		if res, ok := schedule.CollectionFor(b); ok {
			r := res
			e.Collection = &r
			e.CollectionText = FormatCollection(res)
		}
		entries = append(entries, e)
	}

	utils.LogEvent(s.RequestID, "manifest", "daily",
		"driver="+driverID+" day="+utils.FormatDate(day)+" entries="+fmt.Sprint(len(entries)))

	return DayManifest{
		DriverID:   driverID,
		DriverName: driver.Name,
		Date:       utils.FormatDate(day),
		Entries:    entries,
		Summary:    schedule.SummarizeDriver(driverID, all),
	}, nil
}

// ShareText renders the manifest as plain text for clipboard/share
// integrations. It goes through the same formatting as the JSON and PDF
// outputs.
func (s ManifestService) ShareText(driverID string, day time.Time) (string, error) {
	m, err := s.DailyManifest(driverID, day, "")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	name := m.DriverName
	if name == "" {
		name = m.DriverID
	}
	fmt.Fprintf(&sb, "Manifest %s - %s\n", name, schedule.HeaderLabel(day, schedule.UnitDay))

	if len(m.Entries) == 0 {
		sb.WriteString("No bookings.\n")
		return sb.String(), nil
	}

	for i, e := range m.Entries {
		b := e.Booking
		fmt.Fprintf(&sb, "%d. %s %s", i+1, b.StartTime.Format("15:04"), safeText(b.Title))
		if b.ClientName != "" {
			fmt.Fprintf(&sb, " | %s", b.ClientName)
		}
		fmt.Fprintf(&sb, " | pax %d+%d", e.Adults, e.Kids)
		if b.PickupAddress != "" || b.DropoffAddress != "" {
			fmt.Fprintf(&sb, " | %s -> %s", safeText(b.PickupAddress), safeText(b.DropoffAddress))
		}
		if e.CollectionText != "" {
			fmt.Fprintf(&sb, " | %s", e.CollectionText)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func safeText(v string) string {
	v = utils.NormalizeSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
