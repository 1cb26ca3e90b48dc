package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/purchasing-admin/backend-go/internal/cache"
	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/purchasing-admin/backend-go/internal/order"
	"github.com/purchasing-admin/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrDraftNotFound is returned for operations on an unknown draft order.
var ErrDraftNotFound = errors.New("draft order not found")

// OrderService holds the draft orders being edited in the purchase and
// inquiry forms. Drafts live only for the editing session; submitting one
// freezes it into a PurchaseRecord and hands it to the repository.
type OrderService struct {
	mu     sync.RWMutex
	drafts map[string]order.Order

	purchases repository.PurchaseRepository
	cache     cache.RecapCache
	now       func() time.Time
}

func NewOrderService(purchases repository.PurchaseRepository, recapCache cache.RecapCache) *OrderService {
	return &OrderService{
		drafts:    make(map[string]order.Order),
		purchases: purchases,
		cache:     recapCache,
		now:       time.Now,
	}
}

// Header carries the order header fields set at draft creation.
type Header struct {
	VendorID       string
	Description    string
	Classification string
	Urgent         bool
	HasPO          bool
}

// CreateDraft opens a new draft with one default line and returns its ID.
func (s *OrderService) CreateDraft(h Header) (string, order.Order) {
	o := order.New(h.VendorID)
	o.Description = h.Description
	o.Classification = h.Classification
	o.Urgent = h.Urgent
	o.HasPO = h.HasPO

	id := uuid.NewString()

	s.mu.Lock()
	s.drafts[id] = o
	s.mu.Unlock()

	return id, o
}

// Draft returns the current state of a draft.
func (s *OrderService) Draft(id string) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.drafts[id]
	if !ok {
		return order.Order{}, ErrDraftNotFound
	}

	return o, nil
}

// AddLine appends a default line to the draft.
func (s *OrderService) AddLine(id string) (order.Order, error) {
	return s.update(id, func(o order.Order) (order.Order, error) {
		return o.AddLine(), nil
	})
}

// RemoveLine removes a line from the draft, honoring the one-line minimum.
func (s *OrderService) RemoveLine(id string, lineID int) (order.Order, error) {
	return s.update(id, func(o order.Order) (order.Order, error) {
		return o.RemoveLine(lineID)
	})
}

// UpdateLine applies a field change to a draft line.
func (s *OrderService) UpdateLine(id string, lineID int, change order.LineChange) (order.Order, error) {
	return s.update(id, func(o order.Order) (order.Order, error) {
		return o.UpdateLine(lineID, change)
	})
}

func (s *OrderService) update(id string, apply func(order.Order) (order.Order, error)) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.drafts[id]
	if !ok {
		return order.Order{}, ErrDraftNotFound
	}

	updated, err := apply(o)
	if err != nil {
		return o, err
	}
	s.drafts[id] = updated

	return updated, nil
}

// Submit finalizes a draft: the grand total becomes the purchase total, the
// record lands in the repository and the recap cache is invalidated. The
// draft is discarded on success.
func (s *OrderService) Submit(ctx context.Context, id string, fee decimal.Decimal, category domain.PurchaseCategory) (domain.PurchaseRecord, error) {
	if fee.IsNegative() {
		return domain.PurchaseRecord{}, &order.InvalidAmountError{Field: "fee", Value: fee}
	}

	s.mu.Lock()
	o, ok := s.drafts[id]
	s.mu.Unlock()
	if !ok {
		return domain.PurchaseRecord{}, ErrDraftNotFound
	}

	record := domain.PurchaseRecord{
		VendorID:    o.VendorID,
		Description: o.Description,
		Category:    category,
		Status:      domain.StatusPending,
		HasPO:       o.HasPO,
		CreatedAt:   s.now(),
		PriceTotal:  o.GrandTotal(),
		PriceFee:    fee,
	}

	saved, err := s.purchases.AddPurchase(ctx, record)
	if err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("store purchase: %w", err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("recap cache invalidation failed")
	}

	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()

	return saved, nil
}
