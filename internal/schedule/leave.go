package schedule

import (
	"sort"
	"time"

	"dispatchboard/internal/domain/models"
)

type leaveKey struct {
	driverID string
	year     int
	month    time.Month
	day      int
}

func keyFor(driverID string, day time.Time) leaveKey {
	y, m, d := day.Date()
	return leaveKey{driverID: driverID, year: y, month: m, day: d}
}

// Ledger is the sole authority on leave state. It keys on
// (driver, calendar day) so no duplicate record can exist, and exposes
// only the toggle as its mutation surface. Callers serialize concurrent
// toggles themselves.
type Ledger struct {
	days map[leaveKey]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{days: make(map[leaveKey]struct{})}
}

// NewLedgerFrom hydrates a ledger from persisted records.
func NewLedgerFrom(records []models.LeaveRecord) *Ledger {
	l := NewLedger()
	for _, r := range records {
		l.days[keyFor(r.DriverID, r.Day)] = struct{}{}
	}
	return l
}

// IsOnLeave reports whether the driver is unavailable on day. Only the
// calendar day matters; time-of-day is ignored.
func (l *Ledger) IsOnLeave(driverID string, day time.Time) bool {
	_, ok := l.days[keyFor(driverID, day)]
	return ok
}

// ToggleLeave flips the driver's leave state for day and returns the new
// state. Toggling twice in a row restores the original state.
func (l *Ledger) ToggleLeave(driverID string, day time.Time) bool {
	k := keyFor(driverID, day)
	if _, ok := l.days[k]; ok {
		delete(l.days, k)
		return false
	}
	l.days[k] = struct{}{}
	return true
}

// Days returns the driver's leave days sorted ascending. The slice is a
// snapshot; mutating it does not touch the ledger.
func (l *Ledger) Days(driverID string) []time.Time {
	out := make([]time.Time, 0)
	for k := range l.days {
		if k.driverID != driverID {
			continue
		}
		out = append(out, time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.Local))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
