package models

import "time"

// LeaveRecord marks a driver unavailable for one whole calendar day.
// Uniqueness is per (driverId, calendar day).
type LeaveRecord struct {
	DriverID string    `json:"driverId"`
	Day      time.Time `json:"day"`
}
