package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPersister implements Persister in memory and records calls.
type memPersister struct {
	saved   map[string][]Line
	dropped []string
	loadErr error
	saveErr error
}

func newMemPersister() *memPersister {
	return &memPersister{saved: make(map[string][]Line)}
}

func (p *memPersister) Load(shopperID string) ([]Line, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.saved[shopperID], nil
}

func (p *memPersister) Save(shopperID string, lines []Line) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saved[shopperID] = lines
	return nil
}

func (p *memPersister) Drop(shopperID string) error {
	p.dropped = append(p.dropped, shopperID)
	delete(p.saved, shopperID)
	return nil
}

func TestStore_WorksWithoutPersister(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddItem("u1", line("p1", 1000, "s1")))

	snap, err := s.Snapshot("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalItems)
}

func TestStore_CartsAreIsolatedPerShopper(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddItem("u1", line("p1", 1000, "s1")))
	require.NoError(t, s.AddItem("u2", line("p2", 500, "s2")))

	snap1, err := s.Snapshot("u1")
	require.NoError(t, err)
	snap2, err := s.Snapshot("u2")
	require.NoError(t, err)

	require.Len(t, snap1.Lines, 1)
	require.Len(t, snap2.Lines, 1)
	assert.Equal(t, "p1", snap1.Lines[0].ProductID)
	assert.Equal(t, "p2", snap2.Lines[0].ProductID)
}

func TestStore_WritesThroughPersister(t *testing.T) {
	p := newMemPersister()
	s := NewStore(p)

	require.NoError(t, s.AddItem("u1", line("p1", 1000, "s1")))
	require.NoError(t, s.AddItem("u1", line("p1", 1000, "s1")))

	require.Len(t, p.saved["u1"], 1)
	assert.Equal(t, 2, p.saved["u1"][0].Quantity)
}

func TestStore_LoadsPersistedCartOnFirstUse(t *testing.T) {
	p := newMemPersister()
	p.saved["u1"] = []Line{
		{ProductID: "p1", UnitPrice: 1000, SellerID: "s1", Quantity: 2},
		{ProductID: "p2", UnitPrice: 500, SellerID: "s2", Quantity: 1},
	}
	s := NewStore(p)

	snap, err := s.Snapshot("u1")
	require.NoError(t, err)
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 2500, snap.TotalPrice, 1e-9)
}

func TestStore_SurfacesLoadError(t *testing.T) {
	p := newMemPersister()
	p.loadErr = errors.New("db down")
	s := NewStore(p)

	_, err := s.Snapshot("u1")
	assert.ErrorContains(t, err, "db down")
}

func TestStore_Merge_AccumulatesQuantities(t *testing.T) {
	p := newMemPersister()
	s := NewStore(p)

	require.NoError(t, s.AddItem("guest_1", line("p1", 1000, "s1")))
	require.NoError(t, s.AddItem("guest_1", line("p2", 500, "s2")))
	require.NoError(t, s.AddItem("u1", line("p1", 1000, "s1")))

	merged, err := s.Merge("guest_1", "u1")
	require.NoError(t, err)
	assert.True(t, merged)

	snap, err := s.Snapshot("u1")
	require.NoError(t, err)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 2, snap.Lines[0].Quantity) // p1 from both carts
	assert.Equal(t, 1, snap.Lines[1].Quantity)

	// Guest cart is gone, in memory and in storage
	guestSnap, err := s.Snapshot("guest_1")
	require.NoError(t, err)
	assert.Empty(t, guestSnap.Lines)
	assert.Contains(t, p.dropped, "guest_1")
}

func TestStore_Merge_EmptyGuestCartReportsNothingToMerge(t *testing.T) {
	s := NewStore(nil)
	merged, err := s.Merge("guest_1", "u1")
	require.NoError(t, err)
	assert.False(t, merged)
}
