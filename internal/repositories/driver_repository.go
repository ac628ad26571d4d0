package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "dispatchboard/internal/config"
	"dispatchboard/internal/domain"
	"dispatchboard/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID fetches a driver for services that need the name on exports.
func (r DriverRepository) GetByID(id string) (models.Driver, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Driver{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	db := r.db()
	if db == nil {
		return models.Driver{}, domain.InternalError{Msg: "db not available"}
	}

	var d models.Driver
	var role string
	err := db.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(role, ''), COALESCE(phone, ''), COALESCE(email, '')
		FROM drivers WHERE id=? LIMIT 1`, id).
		Scan(&d.ID, &d.Name, &role, &d.Phone, &d.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Driver{}, domain.NotFoundError{Resource: "driver"}
		}
		return models.Driver{}, domain.InternalError{Err: err}
	}
	if parsed, ok := models.ParseDriverRole(role); ok {
		d.Role = parsed
	}
	return d, nil
}

// ListAll returns every driver ordered by name.
func (r DriverRepository) ListAll() ([]models.Driver, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "db not available"}
	}

	rows, err := db.Query(`
		SELECT id, COALESCE(name, ''), COALESCE(role, ''), COALESCE(phone, ''), COALESCE(email, '')
		FROM drivers ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		var role string
		if err := rows.Scan(&d.ID, &d.Name, &role, &d.Phone, &d.Email); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		if parsed, ok := models.ParseDriverRole(role); ok {
			d.Role = parsed
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
