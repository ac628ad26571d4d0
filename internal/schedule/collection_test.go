package schedule

import (
	"testing"
	"time"

	"dispatchboard/internal/domain/models"
)

func money(v float64) *float64 { return &v }

func paidBooking(method models.PaymentMethod, price, deposit *float64, status models.PaymentStatus) models.Booking {
	return models.Booking{
		ID:                  "b1",
		StartTime:           time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local),
		PaymentMethod:       method,
		ClientPrice:         price,
		Deposit:             deposit,
		ClientPaymentStatus: status,
	}
}

func TestCashCollectsFullPrice(t *testing.T) {
	res, ok := CollectionFor(paidBooking(models.PaymentCash, money(120), nil, models.StatusUnset))
	if !ok {
		t.Fatalf("cash booking with price should require collection")
	}
	if res.Amount != 120 || res.Label != LabelFullCollection {
		t.Fatalf("got %+v, want 120 full collection", res)
	}
}

func TestCashWithoutPriceCollectsNothing(t *testing.T) {
	if _, ok := CollectionFor(paidBooking(models.PaymentCash, nil, nil, models.StatusUnset)); ok {
		t.Fatalf("cash booking without price should not collect")
	}
}

func TestDepositBalanceCollectsRemainder(t *testing.T) {
	res, ok := CollectionFor(paidBooking(models.PaymentDepositBalance, money(200), money(50), models.StatusUnset))
	if !ok {
		t.Fatalf("balance of 150 should be collected")
	}
	if res.Amount != 150 || res.Label != LabelBalanceDue {
		t.Fatalf("got %+v, want 150 balance due", res)
	}
}

func TestDepositCoveringPriceCollectsNothing(t *testing.T) {
	if _, ok := CollectionFor(paidBooking(models.PaymentDepositBalance, money(200), money(200), models.StatusUnset)); ok {
		t.Fatalf("fully covered deposit should not collect")
	}
	// Overpaid deposit must not go negative either.
	if _, ok := CollectionFor(paidBooking(models.PaymentDepositBalance, money(200), money(250), models.StatusUnset)); ok {
		t.Fatalf("overpaid deposit should not collect")
	}
}

func TestDepositBalanceBlocksUnpaidFallback(t *testing.T) {
	// Method matched rule 2 with zero balance; rule 3 must not fire.
	if _, ok := CollectionFor(paidBooking(models.PaymentDepositBalance, money(200), money(200), models.StatusUnpaid)); ok {
		t.Fatalf("deposit-balance with covered balance should stay none even when UNPAID")
	}
}

func TestUnpaidFallbackCollectsFullPrice(t *testing.T) {
	res, ok := CollectionFor(paidBooking(models.PaymentPayToDriver, money(80), nil, models.StatusUnpaid))
	if !ok {
		t.Fatalf("unpaid booking should fall back to full collection")
	}
	if res.Amount != 80 || res.Label != LabelFullCollection {
		t.Fatalf("got %+v, want 80 full collection", res)
	}
}

func TestFutureInvoiceIsExempt(t *testing.T) {
	if _, ok := CollectionFor(paidBooking(models.PaymentFutureInvoice, money(80), nil, models.StatusUnpaid)); ok {
		t.Fatalf("invoiced clients must never be asked to pay on-site")
	}
}

func TestCashWinsOverUnpaidFallback(t *testing.T) {
	res, ok := CollectionFor(paidBooking(models.PaymentCash, money(120), nil, models.StatusUnpaid))
	if !ok || res.Label != LabelFullCollection || res.Amount != 120 {
		t.Fatalf("cash rule should match first, got %+v ok=%v", res, ok)
	}
}

func TestUnknownMethodFallsThrough(t *testing.T) {
	b := paidBooking(models.ParsePaymentMethod("gift-card"), money(50), nil, models.StatusPaid)
	if _, ok := CollectionFor(b); ok {
		t.Fatalf("unknown method with PAID status should not collect")
	}
}

func TestCollectionNeverNegative(t *testing.T) {
	cases := []models.Booking{
		paidBooking(models.PaymentCash, money(120), nil, models.StatusUnset),
		paidBooking(models.PaymentDepositBalance, money(100), money(40), models.StatusUnset),
		paidBooking(models.PaymentDepositBalance, nil, money(40), models.StatusUnset),
		paidBooking(models.PaymentPayToDriver, money(80), nil, models.StatusUnpaid),
		paidBooking(models.PaymentUnset, nil, nil, models.StatusUnset),
	}
	for i, b := range cases {
		if res, ok := CollectionFor(b); ok && res.Amount < 0 {
			t.Fatalf("case %d produced negative amount %v", i, res.Amount)
		}
	}
}
