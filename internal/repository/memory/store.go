// Package memory is the in-process data source backing the dashboard. The
// application is explicitly non-persistent, so this mutex-guarded store is
// the only repository implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/purchasing-admin/backend-go/internal/repository"
)

// Store implements every repository interface over in-memory maps. All
// reads return copies; callers can never alias internal state.
type Store struct {
	mu        sync.RWMutex
	purchases map[string]domain.PurchaseRecord
	vendors   map[string]domain.Vendor
	tenders   map[string]domain.Tender
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		purchases: make(map[string]domain.PurchaseRecord),
		vendors:   make(map[string]domain.Vendor),
		tenders:   make(map[string]domain.Tender),
		now:       time.Now,
	}
}

// Seed loads fixture master data and purchases, replacing generated fields
// that are empty (IDs, timestamps).
func (s *Store) Seed(vendors []domain.Vendor, tenders []domain.Tender, purchases []domain.PurchaseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range vendors {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		s.vendors[v.ID] = v
	}
	for _, t := range tenders {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		s.tenders[t.ID] = t
	}
	for _, p := range purchases {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		s.purchases[p.ID] = p
	}
}

func (s *Store) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PurchaseRecord, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *Store) GetPurchase(ctx context.Context, id string) (domain.PurchaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.purchases[id]
	if !ok {
		return domain.PurchaseRecord{}, repository.ErrNotFound
	}

	return p, nil
}

func (s *Store) AddPurchase(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	s.purchases[record.ID] = record

	return record, nil
}

func (s *Store) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *Store) ListTenders(ctx context.Context) ([]domain.Tender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Tender, 0, len(s.tenders))
	for _, t := range s.tenders {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}
