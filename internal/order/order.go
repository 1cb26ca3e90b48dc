// Package order implements the editable multi-line order model used by the
// purchase and inquiry forms: per-line totals, add/remove/update operations
// and the order grand total. All operations are value-returning; callers
// holding an old Order value never observe a half-applied update.
package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrMinimumLine is returned when removing the last remaining line item.
var ErrMinimumLine = errors.New("order must keep at least one line item")

// ErrLineNotFound is returned when the targeted line ID is not part of the
// order.
var ErrLineNotFound = errors.New("line item not found")

// Order is an order or inquiry under editing: header fields plus an ordered
// sequence of line items. Line order is display order only; totals do not
// depend on it.
type Order struct {
	VendorID       string     `json:"vendor_id"`
	Description    string     `json:"description"`
	Classification string     `json:"classification"`
	Urgent         bool       `json:"urgent"`
	HasPO          bool       `json:"has_po"`
	Lines          []LineItem `json:"lines"`

	nextLineID int
}

// New returns an order with a single default line. Line IDs are unique
// within the order only.
func New(vendorID string) Order {
	o := Order{
		VendorID:   vendorID,
		nextLineID: 1,
	}

	return o.AddLine()
}

// AddLine appends one line item with quantity 1 and zero amounts.
func (o Order) AddLine() Order {
	out := o.cloneLines()
	id := out.nextLineID
	if id == 0 {
		id = maxLineID(out.Lines) + 1
	}
	line := LineItem{ID: id, Quantity: 1}
	// quantity 1 with a zero price still totals zero
	line.Total = decimal.Zero
	out.Lines = append(out.Lines, line)
	out.nextLineID = id + 1

	return out
}

// RemoveLine removes the identified line. An order never drops below one
// line; violating that returns ErrMinimumLine with the order unchanged.
func (o Order) RemoveLine(lineID int) (Order, error) {
	if len(o.Lines) <= 1 {
		return o, ErrMinimumLine
	}

	idx := o.lineIndex(lineID)
	if idx < 0 {
		return o, ErrLineNotFound
	}

	out := o.cloneLines()
	out.Lines = append(out.Lines[:idx], out.Lines[idx+1:]...)

	return out, nil
}

// LineChange carries the fields of a single line update; nil fields are
// left untouched. Setting a surcharge to a nil amount deletes it.
type LineChange struct {
	Name      *string
	Quantity  *int64
	UnitPrice *decimal.Decimal
	Surcharge *SurchargeChange
}

// SurchargeChange names one surcharge to set or delete on a line.
type SurchargeChange struct {
	Name   string
	Amount *decimal.Decimal
}

// UpdateLine applies the change to the identified line and recomputes the
// line total whenever an amount-bearing field moved. Invalid amounts leave
// the order unchanged.
func (o Order) UpdateLine(lineID int, change LineChange) (Order, error) {
	idx := o.lineIndex(lineID)
	if idx < 0 {
		return o, ErrLineNotFound
	}

	out := o.cloneLines()
	line := &out.Lines[idx]

	if change.Name != nil {
		line.Name = *change.Name
	}
	if change.Quantity != nil {
		line.Quantity = *change.Quantity
	}
	if change.UnitPrice != nil {
		line.UnitPrice = *change.UnitPrice
	}
	if change.Surcharge != nil {
		if change.Surcharge.Amount == nil {
			delete(line.Surcharges, change.Surcharge.Name)
		} else {
			if line.Surcharges == nil {
				line.Surcharges = make(map[string]decimal.Decimal, 1)
			}
			line.Surcharges[change.Surcharge.Name] = *change.Surcharge.Amount
		}
	}

	if change.Quantity != nil || change.UnitPrice != nil || change.Surcharge != nil {
		if err := line.recompute(); err != nil {
			return o, err
		}
	}

	return out, nil
}

// GrandTotal sums the stored line totals.
func (o Order) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Total)
	}

	return total
}

func (o Order) lineIndex(lineID int) int {
	for i, line := range o.Lines {
		if line.ID == lineID {
			return i
		}
	}

	return -1
}

func (o Order) cloneLines() Order {
	out := o
	out.Lines = make([]LineItem, len(o.Lines))
	for i, line := range o.Lines {
		out.Lines[i] = line.clone()
	}

	return out
}

func maxLineID(lines []LineItem) int {
	max := 0
	for _, line := range lines {
		if line.ID > max {
			max = line.ID
		}
	}

	return max
}
