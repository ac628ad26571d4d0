package schedule

import (
	"dispatchboard/internal/domain/models"
)

// CollectionLabel tags why the driver must collect on-site.
type CollectionLabel string

const (
	LabelFullCollection CollectionLabel = "full collection"
	LabelBalanceDue     CollectionLabel = "balance due"
)

// CollectionResult is the amount a driver must obtain from the client at
// service time. Derived, never stored; amounts stay unrounded here and
// get 2dp formatting at the presentation edge.
type CollectionResult struct {
	Amount float64         `json:"amount"`
	Label  CollectionLabel `json:"label"`
}

// CollectionFor decides whether the driver must collect money for this
// booking. Rules are checked top to bottom and the first match wins:
//
//  1. Cash with a positive price collects the full price.
//  2. Deposit+Balance collects the remaining balance when positive,
//     otherwise nothing (missing price/deposit count as zero).
//  3. Any other method left UNPAID with a positive price collects the
//     full price, except invoiced clients, who are billed later and must
//     never be asked to pay on-site.
//
// Unknown payment methods fall through every rule.
func CollectionFor(b models.Booking) (CollectionResult, bool) {
	price := b.PriceOrZero()

	switch {
	case b.PaymentMethod == models.PaymentCash && price > 0:
		return CollectionResult{Amount: price, Label: LabelFullCollection}, true

	case b.PaymentMethod == models.PaymentDepositBalance:
		balance := price - b.DepositOrZero()
		if balance > 0 {
			return CollectionResult{Amount: balance, Label: LabelBalanceDue}, true
		}
		return CollectionResult{}, false

	case b.ClientPaymentStatus == models.StatusUnpaid && price > 0 &&
		b.PaymentMethod != models.PaymentFutureInvoice:
		return CollectionResult{Amount: price, Label: LabelFullCollection}, true
	}

	return CollectionResult{}, false
}
