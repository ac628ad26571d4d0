package models

import (
	"strings"
	"time"
)

// PaymentMethod is the closed vocabulary of how a booking gets paid.
type PaymentMethod string

const (
	PaymentUnset                      PaymentMethod = ""
	PaymentCash                       PaymentMethod = "CASH"
	PaymentDepositBalance             PaymentMethod = "DEPOSIT_BALANCE"
	PaymentPayToDriver                PaymentMethod = "PAY_TO_DRIVER"
	PaymentPaidDepositBalanceToDriver PaymentMethod = "PAID_DEPOSIT_BALANCE_TO_DRIVER"
	PaymentFutureInvoice              PaymentMethod = "FUTURE_INVOICE"
)

// ParsePaymentMethod folds the loose strings stored upstream into the
// closed vocabulary. Anything unrecognized maps to PaymentUnset so it
// falls through every collection rule.
func ParsePaymentMethod(s string) PaymentMethod {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_", "+", "_").Replace(key)
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	switch key {
	case "CASH":
		return PaymentCash
	case "DEPOSIT_BALANCE", "DEPOSIT_AND_BALANCE":
		return PaymentDepositBalance
	case "PAY_TO_DRIVER":
		return PaymentPayToDriver
	case "PAID_DEPOSIT_BALANCE_TO_DRIVER":
		return PaymentPaidDepositBalanceToDriver
	case "FUTURE_INVOICE", "INVOICE":
		return PaymentFutureInvoice
	default:
		return PaymentUnset
	}
}

// PaymentStatus tracks what the client has settled so far.
type PaymentStatus string

const (
	StatusUnset   PaymentStatus = ""
	StatusUnpaid  PaymentStatus = "UNPAID"
	StatusPartial PaymentStatus = "PARTIAL"
	StatusPaid    PaymentStatus = "PAID"
)

func ParsePaymentStatus(s string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UNPAID":
		return StatusUnpaid
	case "PARTIAL":
		return StatusPartial
	case "PAID":
		return StatusPaid
	default:
		return StatusUnset
	}
}

// Booking is a single scheduled transportation job. The scheduling engine
// only reads it; all writes go through the repository.
type Booking struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	DriverID  *string `json:"driverId,omitempty"`
	PartnerID *string `json:"partnerId,omitempty"`

	PassengersAdults *int `json:"passengersAdults,omitempty"`
	PassengersKids   *int `json:"passengersKids,omitempty"`
	// NumberOfPassengers is the legacy single count kept for old rows.
	NumberOfPassengers *int `json:"numberOfPassengers,omitempty"`

	PaymentMethod       PaymentMethod `json:"paymentMethod,omitempty"`
	ClientPrice         *float64      `json:"clientPrice,omitempty"`
	Deposit             *float64      `json:"deposit,omitempty"`
	ClientPaymentStatus PaymentStatus `json:"clientPaymentStatus,omitempty"`

	PickupAddress  string `json:"pickupAddress,omitempty"`
	StopAddress    string `json:"stopAddress,omitempty"`
	DropoffAddress string `json:"dropoffAddress,omitempty"`
	ClientName     string `json:"clientName,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Color          string `json:"color,omitempty"`
}

const defaultDurationMinutes = 60

// EffectiveEnd returns the end time, assuming one hour when none is set.
func (b Booking) EffectiveEnd() time.Time {
	if b.EndTime != nil {
		return *b.EndTime
	}
	return b.StartTime.Add(defaultDurationMinutes * time.Minute)
}

// DurationMinutes is the layout duration derived from EffectiveEnd.
func (b Booking) DurationMinutes() float64 {
	return b.EffectiveEnd().Sub(b.StartTime).Minutes()
}

// AdultCount resolves the adult passenger count across the legacy field:
// passengersAdults wins, then numberOfPassengers, then 1.
func (b Booking) AdultCount() int {
	if b.PassengersAdults != nil {
		return *b.PassengersAdults
	}
	if b.NumberOfPassengers != nil {
		return *b.NumberOfPassengers
	}
	return 1
}

func (b Booking) KidCount() int {
	if b.PassengersKids != nil {
		return *b.PassengersKids
	}
	return 0
}

// IsUnassigned reports whether neither a driver nor a partner supplier
// holds the job.
func (b Booking) IsUnassigned() bool {
	return trimmedEmpty(b.DriverID) && trimmedEmpty(b.PartnerID)
}

func (b Booking) PriceOrZero() float64 {
	if b.ClientPrice != nil {
		return *b.ClientPrice
	}
	return 0
}

func (b Booking) DepositOrZero() float64 {
	if b.Deposit != nil {
		return *b.Deposit
	}
	return 0
}

func trimmedEmpty(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}
