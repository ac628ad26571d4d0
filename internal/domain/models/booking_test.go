package models

import (
	"testing"
	"time"
)

func TestParsePaymentMethodVariants(t *testing.T) {
	cases := map[string]PaymentMethod{
		"CASH":                           PaymentCash,
		"cash":                           PaymentCash,
		" Deposit Balance ":              PaymentDepositBalance,
		"deposit - balance":              PaymentDepositBalance,
		"Deposit + Balance":              PaymentDepositBalance,
		"pay to driver":                  PaymentPayToDriver,
		"PAID_DEPOSIT_BALANCE_TO_DRIVER": PaymentPaidDepositBalanceToDriver,
		"future invoice":                 PaymentFutureInvoice,
		"invoice":                        PaymentFutureInvoice,
		"gift card":                      PaymentUnset,
		"":                               PaymentUnset,
	}
	for in, want := range cases {
		if got := ParsePaymentMethod(in); got != want {
			t.Fatalf("ParsePaymentMethod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEffectiveEndDefaultsToOneHour(t *testing.T) {
	start := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	b := Booking{StartTime: start}
	if got := b.EffectiveEnd(); !got.Equal(start.Add(time.Hour)) {
		t.Fatalf("EffectiveEnd = %v", got)
	}
	if b.DurationMinutes() != 60 {
		t.Fatalf("DurationMinutes = %v", b.DurationMinutes())
	}

	end := start.Add(25 * time.Minute)
	b.EndTime = &end
	if b.DurationMinutes() != 25 {
		t.Fatalf("explicit end ignored, got %v minutes", b.DurationMinutes())
	}
}

func TestIsUnassignedIgnoresBlankIDs(t *testing.T) {
	blank := "   "
	b := Booking{DriverID: &blank}
	if !b.IsUnassigned() {
		t.Fatalf("whitespace-only driver id should count as unassigned")
	}
	drv := "drv-1"
	b.DriverID = &drv
	if b.IsUnassigned() {
		t.Fatalf("assigned booking reported unassigned")
	}
}
