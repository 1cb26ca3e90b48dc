// Package repository defines the data-source boundary the dashboard core
// reads through. The core never touches a process-wide record collection
// directly; implementations own the records and hand out copies.
package repository

import (
	"context"
	"errors"

	"github.com/purchasing-admin/backend-go/internal/domain"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// PurchaseRepository supplies finalized purchases to the recap and index
// endpoints and receives submitted orders.
type PurchaseRepository interface {
	ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error)
	GetPurchase(ctx context.Context, id string) (domain.PurchaseRecord, error)
	AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error)
}

// VendorRepository supplies vendor master data.
type VendorRepository interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// TenderRepository supplies tender master data.
type TenderRepository interface {
	ListTenders(ctx context.Context) ([]domain.Tender, error)
}
