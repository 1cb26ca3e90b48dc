package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidAmountError reports a negative quantity, unit price or surcharge
// handed to the line total rule. Negative inputs are rejected, never
// clamped to zero.
type InvalidAmountError struct {
	Field string
	Value decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid %s: %s is negative", e.Field, e.Value.String())
}

// LineItem is one billable row of an order or inquiry. Total is derived
// display data; it is overwritten after every mutation and never trusted
// as input.
type LineItem struct {
	ID         int                        `json:"id"`
	Name       string                     `json:"name"`
	Quantity   int64                      `json:"quantity"`
	UnitPrice  decimal.Decimal            `json:"unit_price"`
	Surcharges map[string]decimal.Decimal `json:"surcharges,omitempty"`
	Total      decimal.Decimal            `json:"total"`
}

// ComputeLineTotal returns quantity * unitPrice + sum(surcharges) using
// exact decimal arithmetic. Any negative input yields *InvalidAmountError.
func ComputeLineTotal(quantity int64, unitPrice decimal.Decimal, surcharges map[string]decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, &InvalidAmountError{Field: "quantity", Value: decimal.NewFromInt(quantity)}
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, &InvalidAmountError{Field: "unit price", Value: unitPrice}
	}

	total := unitPrice.Mul(decimal.NewFromInt(quantity))
	for name, amount := range surcharges {
		if amount.IsNegative() {
			return decimal.Zero, &InvalidAmountError{Field: "surcharge " + name, Value: amount}
		}
		total = total.Add(amount)
	}

	return total, nil
}

// recompute refreshes the stored total from the line's own fields.
func (l *LineItem) recompute() error {
	total, err := ComputeLineTotal(l.Quantity, l.UnitPrice, l.Surcharges)
	if err != nil {
		return err
	}
	l.Total = total

	return nil
}

func (l LineItem) clone() LineItem {
	out := l
	if l.Surcharges != nil {
		out.Surcharges = make(map[string]decimal.Decimal, len(l.Surcharges))
		for name, amount := range l.Surcharges {
			out.Surcharges[name] = amount
		}
	}

	return out
}
