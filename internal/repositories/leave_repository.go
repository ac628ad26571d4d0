package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "dispatchboard/internal/config"
	"dispatchboard/internal/domain"
	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/utils"
)

// LeaveRepository persists the availability ledger. The table carries a
// UNIQUE KEY on (driver_id, leave_date) so the (driver, day) pair can
// never exist twice.
type LeaveRepository struct {
	DB *sql.DB
}

func (r LeaveRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Toggle flips the driver's leave state for day and returns the new
// state: true when the driver is now on leave.
func (r LeaveRepository) Toggle(driverID string, day time.Time) (bool, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return false, domain.ValidationError{Field: "driverId", Msg: "must not be empty"}
	}
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "db not available"}
	}

	date := utils.FormatDate(day)
	res, err := db.Exec(`DELETE FROM driver_leaves WHERE driver_id=? AND leave_date=?`, driverID, date)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}

	if _, err := db.Exec(`INSERT INTO driver_leaves (driver_id, leave_date) VALUES (?, ?)`, driverID, date); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// IsOnLeave checks a single (driver, day) pair.
func (r LeaveRepository) IsOnLeave(driverID string, day time.Time) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "db not available"}
	}

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM driver_leaves WHERE driver_id=? AND leave_date=?`,
		strings.TrimSpace(driverID), utils.FormatDate(day)).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

// ListRange returns the driver's leave records with leave_date in
// [from, to] inclusive, ordered ascending.
func (r LeaveRepository) ListRange(driverID string, from, to time.Time) ([]models.LeaveRecord, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return nil, domain.ValidationError{Field: "driverId", Msg: "must not be empty"}
	}
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "db not available"}
	}

	rows, err := db.Query(`
		SELECT driver_id, leave_date
		FROM driver_leaves
		WHERE driver_id=? AND leave_date BETWEEN ? AND ?
		ORDER BY leave_date ASC`,
		driverID, utils.FormatDate(from), utils.FormatDate(to))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.LeaveRecord{}
	for rows.Next() {
		var (
			rec  models.LeaveRecord
			date string
		)
		if err := rows.Scan(&rec.DriverID, &date); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		day, err := utils.ParseDate(date)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		rec.Day = day
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
