package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, price float64, seller string) Line {
	return Line{ProductID: id, Name: "Product " + id, UnitPrice: price, SellerID: seller}
}

func TestAddItem_MergesByProductID(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p1", 1000, "s1"))

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 2, snap.TotalItems)
}

func TestAddItem_DistinctProductsKeepInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(line("p2", 500, "s2"))
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p3", 250, "s1"))

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 3)
	assert.Equal(t, "p2", snap.Lines[0].ProductID)
	assert.Equal(t, "p1", snap.Lines[1].ProductID)
	assert.Equal(t, "p3", snap.Lines[2].ProductID)

	// Quantity updates must not reorder lines
	c.UpdateQuantity("p2", 5)
	snap = c.Snapshot()
	assert.Equal(t, "p2", snap.Lines[0].ProductID)
}

func TestSnapshot_TotalsRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p2", 500, "s2"))

	snap := c.Snapshot()
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 2500, snap.TotalPrice, 1e-9)

	c.UpdateQuantity("p2", 3)
	snap = c.Snapshot()
	assert.Equal(t, 5, snap.TotalItems)
	assert.InDelta(t, 3500, snap.TotalPrice, 1e-9)

	c.RemoveItem("p1")
	snap = c.Snapshot()
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 1500, snap.TotalPrice, 1e-9)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.UpdateQuantity("p1", 0)

	snap := c.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.TotalItems)
	assert.Zero(t, snap.TotalPrice)
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.UpdateQuantity("p1", -3)

	assert.Empty(t, c.Snapshot().Lines)
}

func TestUpdateQuantity_AbsentProductIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.UpdateQuantity("missing", 7)

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestRemoveItem_AbsentProductIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	before := c.Snapshot()

	c.RemoveItem("missing")

	assert.Equal(t, before, c.Snapshot())
}

func TestClear_EmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p2", 500, "s2"))
	c.Clear()

	snap := c.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.TotalItems)
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))

	snap := c.Snapshot()
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, c.Snapshot().Lines[0].Quantity)
}

// The storefront scenario: two products from two sellers.
func TestSnapshot_TwoSellerScenario(t *testing.T) {
	c := New()
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p1", 1000, "s1"))
	c.AddItem(line("p2", 500, "s2"))

	snap := c.Snapshot()
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 2500, snap.TotalPrice, 1e-9)
}
