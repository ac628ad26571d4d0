package models

import "strings"

// DriverRole is the closed set of roles an account can hold.
type DriverRole string

const (
	RoleAdmin   DriverRole = "ADMIN"
	RoleDriver  DriverRole = "DRIVER"
	RolePartner DriverRole = "PARTNER"
)

func ParseDriverRole(s string) (DriverRole, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, true
	case "DRIVER":
		return RoleDriver, true
	case "PARTNER":
		return RolePartner, true
	default:
		return "", false
	}
}

// Driver is read-only from the engine's perspective.
type Driver struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Role  DriverRole `json:"role"`
	Phone string     `json:"phone,omitempty"`
	Email string     `json:"email,omitempty"`
}
