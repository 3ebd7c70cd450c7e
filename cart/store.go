package cart

import (
	"fmt"
	"sync"
)

// Persister saves cart lines so they survive a restart or page reload.
// Implementations may be nil-safe absent entirely; without one, carts are
// session-scoped and lost when the process exits.
type Persister interface {
	Load(shopperID string) ([]Line, error)
	Save(shopperID string, lines []Line) error
	Drop(shopperID string) error
}

// Store keeps one Cart per shopper (customer or guest id). Each cart has a
// single logical writer, but the HTTP server serves shoppers concurrently,
// so access goes through one mutex.
type Store struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	persist Persister // optional
}

// NewStore builds a Store. p may be nil for purely in-memory carts.
func NewStore(p Persister) *Store {
	return &Store{
		carts:   make(map[string]*Cart),
		persist: p,
	}
}

// cartFor returns the shopper's cart, loading persisted lines on first use.
// Caller must hold s.mu.
func (s *Store) cartFor(shopperID string) (*Cart, error) {
	if c, ok := s.carts[shopperID]; ok {
		return c, nil
	}
	c := New()
	if s.persist != nil {
		lines, err := s.persist.Load(shopperID)
		if err != nil {
			return nil, fmt.Errorf("load cart for %s: %w", shopperID, err)
		}
		c.restore(lines)
	}
	s.carts[shopperID] = c
	return c, nil
}

// save writes the shopper's current lines through the persister, if any.
// Caller must hold s.mu.
func (s *Store) save(shopperID string, c *Cart) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(shopperID, c.Snapshot().Lines); err != nil {
		return fmt.Errorf("persist cart for %s: %w", shopperID, err)
	}
	return nil
}

func (s *Store) AddItem(shopperID string, p Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(shopperID)
	if err != nil {
		return err
	}
	c.AddItem(p)
	return s.save(shopperID, c)
}

func (s *Store) RemoveItem(shopperID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(shopperID)
	if err != nil {
		return err
	}
	c.RemoveItem(productID)
	return s.save(shopperID, c)
}

func (s *Store) UpdateQuantity(shopperID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(shopperID)
	if err != nil {
		return err
	}
	c.UpdateQuantity(productID, quantity)
	return s.save(shopperID, c)
}

func (s *Store) Clear(shopperID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(shopperID)
	if err != nil {
		return err
	}
	c.Clear()
	return s.save(shopperID, c)
}

func (s *Store) Snapshot(shopperID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(shopperID)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

// Merge folds a guest cart into a customer cart after login, accumulating
// quantities line by line, then drops the guest cart. Reports whether there
// was anything to merge.
func (s *Store) Merge(guestID, customerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest, err := s.cartFor(guestID)
	if err != nil {
		return false, err
	}
	if guest.Len() == 0 {
		return false, nil
	}

	dst, err := s.cartFor(customerID)
	if err != nil {
		return false, err
	}
	for _, l := range guest.Snapshot().Lines {
		dst.add(l, l.Quantity)
	}
	if err := s.save(customerID, dst); err != nil {
		return false, err
	}

	delete(s.carts, guestID)
	if s.persist != nil {
		if err := s.persist.Drop(guestID); err != nil {
			return true, fmt.Errorf("drop guest cart %s: %w", guestID, err)
		}
	}
	return true, nil
}
