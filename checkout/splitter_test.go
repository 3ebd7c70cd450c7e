package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
)

// mockOrderStore implements OrderStore and records every write.
type mockOrderStore struct {
	headers      []OrderHeader
	items        map[string][]OrderItem
	failHeaderAt int // 1-based index of CreateOrder call to fail, 0 = never
	failItemsAt  int // 1-based index of CreateOrderItems call to fail
	headerCalls  int
	itemCalls    int
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{items: make(map[string][]OrderItem)}
}

func (m *mockOrderStore) CreateOrder(_ context.Context, h OrderHeader) (string, error) {
	m.headerCalls++
	if m.failHeaderAt == m.headerCalls {
		return "", errors.New("store rejected order")
	}
	m.headers = append(m.headers, h)
	return fmt.Sprintf("order-%d", m.headerCalls), nil
}

func (m *mockOrderStore) CreateOrderItems(_ context.Context, orderID string, items []OrderItem) error {
	m.itemCalls++
	if m.failItemsAt == m.itemCalls {
		return errors.New("store rejected items")
	}
	m.items[orderID] = items
	return nil
}

func snapshotFor(lines ...cart.Line) cart.Snapshot {
	c := cart.New()
	for _, l := range lines {
		for i := 0; i < l.Quantity; i++ {
			c.AddItem(l)
		}
	}
	return c.Snapshot()
}

var (
	p1 = cart.Line{ProductID: "p1", Name: "Desk Lamp", UnitPrice: 1000, SellerID: "s1", Quantity: 2}
	p2 = cart.Line{ProductID: "p2", Name: "Notebook", UnitPrice: 500, SellerID: "s2", Quantity: 1}
	p3 = cart.Line{ProductID: "p3", Name: "Mug", UnitPrice: 250, SellerID: "s1", Quantity: 1}
)

func TestGroupBySeller_PartitionsWithoutLossOrDuplication(t *testing.T) {
	snap := snapshotFor(p1, p2, p3)
	groups := GroupBySeller(snap)

	require.Len(t, groups, 2)

	var total float64
	var lineCount int
	for _, g := range groups {
		total += g.Subtotal
		lineCount += len(g.Lines)
	}
	assert.Equal(t, len(snap.Lines), lineCount)
	assert.InDelta(t, snap.TotalPrice, total, 1e-9)
}

func TestGroupBySeller_OrderedByFirstAppearance(t *testing.T) {
	// s2's line comes first in the snapshot, so its group must come first
	snap := snapshotFor(p2, p1, p3)
	groups := GroupBySeller(snap)

	require.Len(t, groups, 2)
	assert.Equal(t, "s2", groups[0].SellerID)
	assert.Equal(t, "s1", groups[1].SellerID)
	require.Len(t, groups[1].Lines, 2)
	assert.InDelta(t, 2250, groups[1].Subtotal, 1e-9)
}

func TestGroupBySeller_EmptySnapshot(t *testing.T) {
	assert.Empty(t, GroupBySeller(cart.Snapshot{}))
}

func TestSubmit_EmptyCart(t *testing.T) {
	store := newMockOrderStore()
	placed, err := NewSplitter(store).Submit(context.Background(), cart.Snapshot{}, Customer{})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, placed)
	assert.Zero(t, store.headerCalls)
}

func TestSubmit_TwoSellerScenario(t *testing.T) {
	store := newMockOrderStore()
	cust := Customer{ID: "u1", Name: "Amina", Email: "amina@example.com", ShippingAddress: "Hall 3, Room 12, Campus"}

	placed, err := NewSplitter(store).Submit(context.Background(), snapshotFor(p1, p2), cust)
	require.NoError(t, err)
	require.Len(t, placed, 2)

	// s1: p1 x2 = 2000, s2: p2 x1 = 500
	assert.Equal(t, "s1", placed[0].SellerID)
	assert.InDelta(t, 2000, placed[0].TotalAmount, 1e-9)
	assert.Equal(t, "s2", placed[1].SellerID)
	assert.InDelta(t, 500, placed[1].TotalAmount, 1e-9)

	// Every header carries the same shipping fields
	require.Len(t, store.headers, 2)
	for _, h := range store.headers {
		assert.Equal(t, cust, h.Customer)
	}

	// Items reference the right order and copy the unit price
	items1 := store.items[placed[0].OrderID]
	require.Len(t, items1, 1)
	assert.Equal(t, "p1", items1[0].ProductID)
	assert.Equal(t, 2, items1[0].Quantity)
	assert.InDelta(t, 1000, items1[0].UnitPrice, 1e-9)

	items2 := store.items[placed[1].OrderID]
	require.Len(t, items2, 1)
	assert.Equal(t, "p2", items2[0].ProductID)
	assert.Equal(t, 1, items2[0].Quantity)
}

func TestSubmit_SecondGroupHeaderFails(t *testing.T) {
	store := newMockOrderStore()
	store.failHeaderAt = 2

	placed, err := NewSplitter(store).Submit(context.Background(), snapshotFor(p1, p2), Customer{})

	// Group s1 committed before the failure and stays committed
	require.Len(t, placed, 1)
	assert.Equal(t, "s1", placed[0].SellerID)

	var gerr *GroupError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "s2", gerr.SellerID)
}

func TestSubmit_ItemWriteFailsAfterHeader(t *testing.T) {
	store := newMockOrderStore()
	store.failItemsAt = 1

	placed, err := NewSplitter(store).Submit(context.Background(), snapshotFor(p1, p2), Customer{})

	// The failed group is not reported as placed even though its header row
	// exists; no further group is attempted
	assert.Empty(t, placed)
	var gerr *GroupError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "s1", gerr.SellerID)
	assert.Equal(t, 1, store.headerCalls)
}

func TestSubmit_FirstGroupHeaderFailsStopsEverything(t *testing.T) {
	store := newMockOrderStore()
	store.failHeaderAt = 1

	placed, err := NewSplitter(store).Submit(context.Background(), snapshotFor(p1, p2), Customer{})

	assert.Empty(t, placed)
	var gerr *GroupError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "s1", gerr.SellerID)
	assert.Equal(t, 1, store.headerCalls)
	assert.Zero(t, store.itemCalls)
}

func TestGroupError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &GroupError{SellerID: "s9", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s9")
}
