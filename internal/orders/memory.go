package orders

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory Store used by tests. It mirrors the row
// semantics of PgStore, including broadcast updates and latest-row targeting.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	menu   []MenuItem
	times  []string
	offers []string
	rows   []*OrderLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// SeedMenu replaces the menu rows, preserving insertion order per category.
func (s *MemoryStore) SeedMenu(items ...MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = append([]MenuItem(nil), items...)
}

func (s *MemoryStore) SeedCollectionTimes(times ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.times = append([]string(nil), times...)
}

func (s *MemoryStore) SeedOffers(offers ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = append([]string(nil), offers...)
}

func (s *MemoryStore) Menu(_ context.Context, category Weekday) ([]MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []MenuItem
	for _, it := range s.menu {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *MemoryStore) CategoryPhoto(_ context.Context, category Weekday) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.menu {
		if it.Category == category {
			return it.Image, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) UpdateMenuItem(_ context.Context, name string, image []byte, price decimal.Decimal, category Weekday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].Category == category {
			s.menu[i].Name = name
			s.menu[i].Image = image
			s.menu[i].Price = price.Round(2)
		}
	}
	return nil
}

func (s *MemoryStore) CollectionTimes(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.times...), nil
}

func (s *MemoryStore) Offers(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.offers...), nil
}

func (s *MemoryStore) AddOrder(_ context.Context, userID int64, username, name, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, &OrderLine{
		ID:       s.nextID,
		UserID:   userID,
		Username: username,
		Name:     name,
		Item:     item,
		Status:   StatusPending,
	})
	s.nextID++
	return nil
}

func (s *MemoryStore) LatestPendingItem(_ context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.rows) - 1; i >= 0; i-- {
		if r := s.rows[i]; r.UserID == userID && r.Status == StatusPending {
			return r.Item, nil
		}
	}
	return "", nil
}

func (s *MemoryStore) SetQuantity(_ context.Context, quantity int64, userID int64, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.latestPending(userID, item); r != nil {
		q := quantity
		r.Quantity = &q
	}
	return nil
}

func (s *MemoryStore) SetRemarks(_ context.Context, remarks string, userID int64, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.latestPending(userID, item); r != nil {
		r.Remarks = remarks
	}
	return nil
}

// latestPending returns the most recently inserted pending row matching
// (user, item). Callers must hold the lock.
func (s *MemoryStore) latestPending(userID int64, item string) *OrderLine {
	for i := len(s.rows) - 1; i >= 0; i-- {
		if r := s.rows[i]; r.UserID == userID && r.Status == StatusPending && r.Item == item {
			return r
		}
	}
	return nil
}

func (s *MemoryStore) SetFullName(_ context.Context, name string, userID int64) error {
	s.eachPending(userID, func(r *OrderLine) { r.Name = name })
	return nil
}

func (s *MemoryStore) SetContactNumber(_ context.Context, number int64, userID int64) error {
	s.eachPending(userID, func(r *OrderLine) {
		n := number
		r.ContactNumber = &n
	})
	return nil
}

func (s *MemoryStore) SetCollectionTime(_ context.Context, collectionTime string, userID int64) error {
	s.eachPending(userID, func(r *OrderLine) { r.CollectionTime = collectionTime })
	return nil
}

func (s *MemoryStore) SetLocation(_ context.Context, location string, userID int64) error {
	s.eachPending(userID, func(r *OrderLine) { r.Location = location })
	return nil
}

func (s *MemoryStore) SetReceiptImage(_ context.Context, image []byte, userID int64) error {
	s.eachPending(userID, func(r *OrderLine) { r.ReceiptImage = image })
	return nil
}

func (s *MemoryStore) eachPending(userID int64, fn func(*OrderLine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.UserID == userID && r.Status == StatusPending {
			fn(r)
		}
	}
}

func (s *MemoryStore) MarkAllPaid(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.UserID == userID {
			r.Status = StatusPaid
		}
	}
	return nil
}

func (s *MemoryStore) PendingOrder(_ context.Context, userID int64) ([]CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []CartLine
	for _, r := range s.rows {
		if r.UserID != userID || r.Status != StatusPending {
			continue
		}
		line := CartLine{Item: r.Item, Quantity: r.Quantity, UnitPrice: s.price(r.Item)}
		if r.Quantity != nil {
			line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(*r.Quantity))
		}
		out = append(out, line)
	}
	return out, nil
}

func (s *MemoryStore) price(item string) decimal.Decimal {
	for _, it := range s.menu {
		if it.Name == item {
			return it.Price
		}
	}
	return decimal.Zero
}

func (s *MemoryStore) DeletePending(_ context.Context, userID int64) error {
	s.deleteWhere(func(r *OrderLine) bool {
		return r.UserID == userID && r.Status == StatusPending
	})
	return nil
}

func (s *MemoryStore) DeletePaid(_ context.Context, userID int64) error {
	s.deleteWhere(func(r *OrderLine) bool {
		return r.UserID == userID && r.Status == StatusPaid
	})
	return nil
}

func (s *MemoryStore) deleteWhere(match func(*OrderLine) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for _, r := range s.rows {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	s.rows = kept
}

func (s *MemoryStore) PaidOrders(context.Context) ([]PaidOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []PaidOrder
	for _, r := range s.rows {
		if r.Status != StatusPaid {
			continue
		}
		out = append(out, PaidOrder{
			CollectionTime: r.CollectionTime,
			UserID:         r.UserID,
			Username:       r.Username,
			Name:           r.Name,
			ContactNumber:  r.ContactNumber,
			Item:           r.Item,
			Quantity:       r.Quantity,
			Location:       r.Location,
			Remarks:        r.Remarks,
			ReceiptImage:   r.ReceiptImage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CollectionTime < out[j].CollectionTime
	})
	return out, nil
}

func (s *MemoryStore) Purge(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

// Rows returns a copy of all rows, for test assertions.
func (s *MemoryStore) Rows() []OrderLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]OrderLine, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, *r)
	}
	return out
}
