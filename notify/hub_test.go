package notify

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records written frames in place of a real websocket connection.
type fakeConn struct {
	mu       sync.Mutex
	frames   [][]byte
	writeErr error
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received(t *testing.T) []OrderEvent {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]OrderEvent, 0, len(f.frames))
	for _, frame := range f.frames {
		var ev OrderEvent
		require.NoError(t, json.Unmarshal(frame, &ev))
		events = append(events, ev)
	}
	return events
}

func TestPublish_DeliversOnlyToOwningSeller(t *testing.T) {
	hub := NewHub()
	s1 := &fakeConn{}
	s2 := &fakeConn{}
	hub.Subscribe("s1", s1)
	hub.Subscribe("s2", s2)

	hub.Publish(OrderEvent{OrderID: "o1", SellerID: "s1", TotalAmount: 2000})

	events := s1.received(t)
	require.Len(t, events, 1)
	assert.Equal(t, "o1", events[0].OrderID)
	assert.Equal(t, "order_created", events[0].Type)
	assert.Empty(t, s2.received(t))
}

func TestPublish_AllConnectionsOfASellerReceive(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	b := &fakeConn{}
	hub.Subscribe("s1", a)
	hub.Subscribe("s1", b)

	hub.Publish(OrderEvent{OrderID: "o1", SellerID: "s1"})

	assert.Len(t, a.received(t), 1)
	assert.Len(t, b.received(t), 1)
}

func TestPublish_NoSubscribersIsANoOp(t *testing.T) {
	hub := NewHub()
	hub.Publish(OrderEvent{OrderID: "o1", SellerID: "nobody"})
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	hub := NewHub()
	c := &fakeConn{}
	hub.Subscribe("s1", c)
	hub.Unsubscribe("s1", c)

	hub.Publish(OrderEvent{OrderID: "o1", SellerID: "s1"})

	assert.Empty(t, c.received(t))
}

func TestPublish_DropsFailingConnections(t *testing.T) {
	hub := NewHub()
	bad := &fakeConn{writeErr: errors.New("broken pipe")}
	good := &fakeConn{}
	hub.Subscribe("s1", bad)
	hub.Subscribe("s1", good)

	hub.Publish(OrderEvent{OrderID: "o1", SellerID: "s1"})
	assert.True(t, bad.closed)

	// A second publish still reaches the healthy connection
	hub.Publish(OrderEvent{OrderID: "o2", SellerID: "s1"})
	assert.Len(t, good.received(t), 2)
}
