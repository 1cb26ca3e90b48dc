package service

import (
	"context"
	"fmt"

	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/purchasing-admin/backend-go/internal/filter"
	"github.com/purchasing-admin/backend-go/internal/repository"
)

// ListCriteria are the raw filter values coming off an index page. Empty
// values and the configured "all" sentinel deactivate the corresponding
// predicate.
type ListCriteria struct {
	Query    string
	Status   string
	Category string
	HasPO    string
	Urgent   string
	Active   string
}

// ListingService serves the index pages: purchases, vendors and tenders,
// each filtered by the same composed predicate set.
type ListingService struct {
	purchases   repository.PurchaseRepository
	vendors     repository.VendorRepository
	tenders     repository.TenderRepository
	allSentinel string
}

func NewListingService(purchases repository.PurchaseRepository, vendors repository.VendorRepository, tenders repository.TenderRepository, allSentinel string) *ListingService {
	if allSentinel == "" {
		allSentinel = filter.DefaultAllSentinel
	}

	return &ListingService{
		purchases:   purchases,
		vendors:     vendors,
		tenders:     tenders,
		allSentinel: allSentinel,
	}
}

func (s *ListingService) Purchases(ctx context.Context, c ListCriteria) ([]domain.PurchaseRecord, error) {
	records, err := s.purchases.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	pred := filter.And(
		filter.Text(c.Query,
			func(r domain.PurchaseRecord) string { return r.Description },
			func(r domain.PurchaseRecord) string { return r.VendorID },
		),
		filter.Enum(c.Status, s.allSentinel, func(r domain.PurchaseRecord) string { return r.Status.String() }),
		filter.Enum(c.Category, s.allSentinel, func(r domain.PurchaseRecord) string { return r.Category.String() }),
		filter.Flag(c.HasPO, s.allSentinel, func(r domain.PurchaseRecord) bool { return r.HasPO }),
	)

	return filter.Apply(records, pred), nil
}

func (s *ListingService) Vendors(ctx context.Context, c ListCriteria) ([]domain.Vendor, error) {
	vendors, err := s.vendors.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	pred := filter.And(
		filter.Text(c.Query,
			func(v domain.Vendor) string { return v.Name },
			func(v domain.Vendor) string { return v.Address },
			func(v domain.Vendor) string { return v.Email },
		),
		filter.Enum(c.Status, s.allSentinel, func(v domain.Vendor) string { return v.Status.String() }),
		filter.Flag(c.Active, s.allSentinel, func(v domain.Vendor) bool { return v.Active }),
	)

	return filter.Apply(vendors, pred), nil
}

func (s *ListingService) Tenders(ctx context.Context, c ListCriteria) ([]domain.Tender, error) {
	tenders, err := s.tenders.ListTenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}

	pred := filter.And(
		filter.Text(c.Query,
			func(t domain.Tender) string { return t.Title },
			func(t domain.Tender) string { return t.VendorID },
		),
		filter.Enum(c.Status, s.allSentinel, func(t domain.Tender) string { return t.Status.String() }),
		filter.Flag(c.Urgent, s.allSentinel, func(t domain.Tender) bool { return t.Urgent }),
	)

	return filter.Apply(tenders, pred), nil
}
