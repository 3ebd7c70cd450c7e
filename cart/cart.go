// Package cart holds a shopper's in-progress product selections and their
// derived totals. Each cart has a single logical writer (the shopper's
// session); concurrent access across shoppers is handled by Store.
package cart

// Line is one distinct product selected for purchase. At most one Line per
// product id exists in a cart at any time, and Quantity is always >= 1.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
	SellerID  string  `json:"seller_id"`
	Quantity  int     `json:"quantity"`
}

// Snapshot is a read-only view of a cart at a point in time. Lines keep the
// insertion order of their first add, stable across quantity updates. Totals
// are recomputed from the lines on every call, never stored independently.
type Snapshot struct {
	Lines      []Line  `json:"lines"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// Cart accumulates selections by product id.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges a product into the cart: if a line with the same product id
// exists its quantity grows by one, otherwise a new line with quantity 1 is
// appended. The Quantity field on p is ignored.
func (c *Cart) AddItem(p Line) {
	c.add(p, 1)
}

func (c *Cart) add(p Line, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ProductID {
			c.lines[i].Quantity += qty
			return
		}
	}
	p.Quantity = qty
	c.lines = append(c.lines, p)
}

// RemoveItem deletes the line with the given product id. Removing an absent
// id is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity <= 0
// removes the line; an absent product id is a silent no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart, used after a fully successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Snapshot returns a copy of the current lines with recomputed totals.
func (c *Cart) Snapshot() Snapshot {
	snap := Snapshot{Lines: make([]Line, len(c.lines))}
	copy(snap.Lines, c.lines)
	for _, l := range snap.Lines {
		snap.TotalItems += l.Quantity
		snap.TotalPrice += l.UnitPrice * float64(l.Quantity)
	}
	return snap
}

// restore replaces the cart contents wholesale, used when loading a
// persisted cart.
func (c *Cart) restore(lines []Line) {
	c.lines = make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.add(l, l.Quantity)
	}
}
