// Package checkout turns one cart snapshot into per-seller orders. Each
// seller's order is an independent unit of durability: there is no
// cross-seller transaction, and a failure part-way leaves earlier sellers'
// orders committed.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
)

// ErrEmptyCart is returned when Submit is called with no lines; it is caught
// before any write reaches the store.
var ErrEmptyCart = errors.New("cart is empty")

// Customer carries the shipping fields shared by every order in one checkout.
type Customer struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	ShippingAddress string
}

// OrderHeader is the top-level order record submitted per seller group.
type OrderHeader struct {
	SellerID    string
	Customer    Customer
	TotalAmount float64
}

// OrderItem references one cart line within a seller's order. UnitPrice is
// copied from the line so later product price changes never alter it.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// OrderStore is the write contract with the order storage backend.
type OrderStore interface {
	CreateOrder(ctx context.Context, h OrderHeader) (orderID string, err error)
	CreateOrderItems(ctx context.Context, orderID string, items []OrderItem) error
}

// SellerGroup is the subset of a snapshot's lines belonging to one seller,
// computed only at checkout and never persisted.
type SellerGroup struct {
	SellerID string
	Lines    []cart.Line
	Subtotal float64
}

// GroupError identifies which seller's submission failed.
type GroupError struct {
	SellerID string
	Err      error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("order for seller %s: %v", e.SellerID, e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }

// PlacedOrder describes one committed per-seller order.
type PlacedOrder struct {
	OrderID     string  `json:"order_id"`
	SellerID    string  `json:"seller_id"`
	TotalAmount float64 `json:"total_amount"`
}

// GroupBySeller partitions a snapshot's lines by seller id. Groups appear in
// the order their first constituent line appears in the snapshot, which keeps
// submission order deterministic.
func GroupBySeller(snap cart.Snapshot) []SellerGroup {
	var groups []SellerGroup
	index := make(map[string]int)
	for _, l := range snap.Lines {
		i, ok := index[l.SellerID]
		if !ok {
			i = len(groups)
			index[l.SellerID] = i
			groups = append(groups, SellerGroup{SellerID: l.SellerID})
		}
		groups[i].Lines = append(groups[i].Lines, l)
		groups[i].Subtotal += l.UnitPrice * float64(l.Quantity)
	}
	return groups
}

// Splitter submits one order per seller group to an OrderStore.
type Splitter struct {
	store OrderStore
}

func NewSplitter(store OrderStore) *Splitter {
	return &Splitter{store: store}
}

// Submit partitions the snapshot and submits the groups strictly one at a
// time: header first, then the group's items. On the first failure it stops;
// groups committed before that point stay committed, and the returned
// GroupError names the seller whose order failed. The caller must clear the
// cart only when err is nil, so a failed checkout can be retried whole.
//
// TODO: retried checkouts re-submit already-committed groups; dedupe needs an
// idempotency key on the order header.
func (s *Splitter) Submit(ctx context.Context, snap cart.Snapshot, cust Customer) ([]PlacedOrder, error) {
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var placed []PlacedOrder
	for _, g := range GroupBySeller(snap) {
		orderID, err := s.store.CreateOrder(ctx, OrderHeader{
			SellerID:    g.SellerID,
			Customer:    cust,
			TotalAmount: g.Subtotal,
		})
		if err != nil {
			return placed, &GroupError{SellerID: g.SellerID, Err: err}
		}

		items := make([]OrderItem, 0, len(g.Lines))
		for _, l := range g.Lines {
			items = append(items, OrderItem{
				ProductID:   l.ProductID,
				ProductName: l.Name,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			})
		}
		if err := s.store.CreateOrderItems(ctx, orderID, items); err != nil {
			// The header row is already durable; an itemless order is an
			// accepted inconsistency the splitter does not repair.
			return placed, &GroupError{SellerID: g.SellerID, Err: err}
		}

		placed = append(placed, PlacedOrder{
			OrderID:     orderID,
			SellerID:    g.SellerID,
			TotalAmount: g.Subtotal,
		})
	}
	return placed, nil
}
