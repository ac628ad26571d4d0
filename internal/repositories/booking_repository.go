package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "dispatchboard/internal/config"
	"dispatchboard/internal/domain"
	"dispatchboard/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id,
	COALESCE(title, ''),
	start_time,
	end_time,
	driver_id,
	partner_id,
	passengers_adults,
	passengers_kids,
	number_of_passengers,
	COALESCE(payment_method, ''),
	client_price,
	deposit,
	COALESCE(client_payment_status, ''),
	COALESCE(pickup_address, ''),
	COALESCE(stop_address, ''),
	COALESCE(dropoff_address, ''),
	COALESCE(client_name, ''),
	COALESCE(notes, ''),
	COALESCE(color, '')`

// ListAll returns every booking ordered by start time. The engine works
// over the full collection; callers filter from there.
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "db not available"}
	}

	rows, err := db.Query(`SELECT` + bookingColumns + ` FROM bookings ORDER BY start_time ASC, id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// GetByID fetches a single booking.
func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "db not available"}
	}

	row := db.QueryRow(`SELECT`+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// Create inserts a booking. The id is caller-supplied (the upstream store
// owns identity).
func (r BookingRepository) Create(b models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "db not available"}
	}

	_, err := db.Exec(`
		INSERT INTO bookings
			(id, title, start_time, end_time, driver_id, partner_id,
			 passengers_adults, passengers_kids, number_of_passengers,
			 payment_method, client_price, deposit, client_payment_status,
			 pickup_address, stop_address, dropoff_address, client_name, notes, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bookingArgs(b)...,
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Update replaces the mutable fields of a booking.
func (r BookingRepository) Update(id string, b models.Booking) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	b.ID = id
	if err := validateBooking(b); err != nil {
		return err
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "db not available"}
	}

	args := bookingArgs(b)[1:] // drop id from the front
	args = append(args, id)
	res, err := db.Exec(`
		UPDATE bookings SET
			title=?, start_time=?, end_time=?, driver_id=?, partner_id=?,
			passengers_adults=?, passengers_kids=?, number_of_passengers=?,
			payment_method=?, client_price=?, deposit=?, client_payment_status=?,
			pickup_address=?, stop_address=?, dropoff_address=?, client_name=?, notes=?, color=?
		WHERE id=?`,
		args...,
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(id); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r BookingRepository) Delete(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "db not available"}
	}

	res, err := db.Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func validateBooking(b models.Booking) error {
	if strings.TrimSpace(b.ID) == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	if b.StartTime.IsZero() {
		return domain.ValidationError{Field: "startTime", Msg: "is required"}
	}
	if b.EndTime != nil && b.EndTime.Before(b.StartTime) {
		return domain.ValidationError{Field: "endTime", Msg: "must not precede startTime"}
	}
	if b.ClientPrice != nil && *b.ClientPrice < 0 {
		return domain.ValidationError{Field: "clientPrice", Msg: "must not be negative"}
	}
	if b.Deposit != nil && *b.Deposit < 0 {
		return domain.ValidationError{Field: "deposit", Msg: "must not be negative"}
	}
	return nil
}

func bookingArgs(b models.Booking) []any {
	return []any{
		b.ID,
		b.Title,
		b.StartTime,
		nullableTime(b.EndTime),
		nullableString(b.DriverID),
		nullableString(b.PartnerID),
		nullableInt(b.PassengersAdults),
		nullableInt(b.PassengersKids),
		nullableInt(b.NumberOfPassengers),
		string(b.PaymentMethod),
		nullableFloat(b.ClientPrice),
		nullableFloat(b.Deposit),
		string(b.ClientPaymentStatus),
		b.PickupAddress,
		b.StopAddress,
		b.DropoffAddress,
		b.ClientName,
		b.Notes,
		b.Color,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b         models.Booking
		endTime   sql.NullTime
		driverID  sql.NullString
		partnerID sql.NullString
		adults    sql.NullInt64
		kids      sql.NullInt64
		legacyPax sql.NullInt64
		method    string
		price     sql.NullFloat64
		deposit   sql.NullFloat64
		status    string
	)
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.StartTime,
		&endTime,
		&driverID,
		&partnerID,
		&adults,
		&kids,
		&legacyPax,
		&method,
		&price,
		&deposit,
		&status,
		&b.PickupAddress,
		&b.StopAddress,
		&b.DropoffAddress,
		&b.ClientName,
		&b.Notes,
		&b.Color,
	); err != nil {
		return models.Booking{}, err
	}

	if endTime.Valid {
		t := endTime.Time
		b.EndTime = &t
	}
	if driverID.Valid && strings.TrimSpace(driverID.String) != "" {
		s := driverID.String
		b.DriverID = &s
	}
	if partnerID.Valid && strings.TrimSpace(partnerID.String) != "" {
		s := partnerID.String
		b.PartnerID = &s
	}
	if adults.Valid {
		n := int(adults.Int64)
		b.PassengersAdults = &n
	}
	if kids.Valid {
		n := int(kids.Int64)
		b.PassengersKids = &n
	}
	if legacyPax.Valid {
		n := int(legacyPax.Int64)
		b.NumberOfPassengers = &n
	}
	if price.Valid {
		v := price.Float64
		b.ClientPrice = &v
	}
	if deposit.Valid {
		v := deposit.Float64
		b.Deposit = &v
	}
	b.PaymentMethod = models.ParsePaymentMethod(method)
	b.ClientPaymentStatus = models.ParsePaymentStatus(status)
	return b, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
