package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a supplier master-data record. Everything past the ID is
// display/filter data; the financial engine never reads it.
type Vendor struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Status  ApprovalStatus `json:"status"`
	Active  bool           `json:"active"`
}

// Tender is a procurement tender header.
type Tender struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	VendorID  string         `json:"vendor_id"`
	Status    ApprovalStatus `json:"status"`
	Urgent    bool           `json:"urgent"`
	CreatedAt time.Time      `json:"created_at"`
}

// PurchaseRecord is a finalized purchase as consumed by the recap report.
// PriceTotal is already net of line-item aggregation and PriceFee is the
// handling fee charged on top. Tax, PO value and profit are derived on
// demand, never stored.
//
// A zero CreatedAt means the source timestamp could not be parsed; the
// recap builder skips (and counts) such records instead of failing.
type PurchaseRecord struct {
	ID          string           `json:"id"`
	VendorID    string           `json:"vendor_id"`
	Description string           `json:"description"`
	Category    PurchaseCategory `json:"category"`
	Status      ApprovalStatus   `json:"status"`
	HasPO       bool             `json:"has_po"`
	CreatedAt   time.Time        `json:"created_at"`
	PriceTotal  decimal.Decimal  `json:"price_total"`
	PriceFee    decimal.Decimal  `json:"price_fee"`
}
