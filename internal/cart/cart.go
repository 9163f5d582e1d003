package cart

import (
	"strings"

	"go.uber.org/zap"
)

// Category classifies a service package
type Category string

const (
	CategoryCleaning     Category = "cleaning"
	CategoryPest         Category = "pest"
	CategorySanitization Category = "sanitization"
)

// Item is a single cart line with bilingual naming
type Item struct {
	ID       string   `json:"id"`
	NameEn   string   `json:"nameEn"`
	NameAr   string   `json:"nameAr"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Duration string   `json:"duration"`
	Category Category `json:"category"`
}

// TaxRate is the fixed rate callers apply on the post-discount total.
// It is a downstream rule, not part of the cart's own pricing.
const TaxRate = 0.05

// coupons is the fixed code to percent table. Codes are matched
// case-insensitively; there is no administrative interface to change them.
var coupons = map[string]int{
	"WELCOME10": 10,
	"SAVE20":    20,
	"NASAYIM15": 15,
}

// Cart holds the in-memory line items and the single active coupon.
// Every mutation rewrites the snapshot store in full.
type Cart struct {
	items           []Item
	discountCode    string
	discountPercent int
	store           SnapshotStore
	logger          *zap.Logger
}

// New creates a cart, loading a prior snapshot if one exists. A corrupt or
// unreadable snapshot is ignored and the cart starts empty. A nil store
// yields a purely in-memory cart.
func New(store SnapshotStore, logger *zap.Logger) *Cart {
	c := &Cart{
		store:  store,
		logger: logger,
	}

	if store == nil {
		return c
	}

	items, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load cart snapshot, starting empty", zap.Error(err))
		return c
	}
	c.items = items

	return c
}

// AddItem appends the item with quantity 1, or increments the quantity of an
// existing line with the same id
func (c *Cart) AddItem(item Item) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.persist()
}

// RemoveItem deletes the matching line, no-op if absent
func (c *Cart) RemoveItem(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or less
// removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// ClearCart empties the items and removes any active coupon
func (c *Cart) ClearCart() {
	c.items = nil
	c.discountCode = ""
	c.discountPercent = 0
	c.persist()
}

// Items returns a copy of the current line items
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// GetSubtotal is the sum of price times quantity over all lines
func (c *Cart) GetSubtotal() float64 {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// GetDiscount is the coupon discount amount against the current subtotal
func (c *Cart) GetDiscount() float64 {
	return c.GetSubtotal() * float64(c.discountPercent) / 100
}

// GetTotal is the post-discount total, floored at zero
func (c *Cart) GetTotal() float64 {
	total := c.GetSubtotal() - c.GetDiscount()
	if total < 0 {
		return 0
	}
	return total
}

// GetItemCount is the sum of quantities over all lines
func (c *Cart) GetItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// ApplyCoupon validates a code against the fixed table. On match the coupon
// replaces any previously applied one and true is returned. On no match the
// cart is left unchanged and false is returned.
func (c *Cart) ApplyCoupon(code string) bool {
	upper := strings.ToUpper(code)
	percent, ok := coupons[upper]
	if !ok {
		return false
	}

	c.discountCode = upper
	c.discountPercent = percent
	return true
}

// RemoveCoupon clears the active coupon
func (c *Cart) RemoveCoupon() {
	c.discountCode = ""
	c.discountPercent = 0
}

// DiscountCode returns the active coupon code, empty when none is applied
func (c *Cart) DiscountCode() string {
	return c.discountCode
}

// DiscountPercent returns the active coupon percentage
func (c *Cart) DiscountPercent() int {
	return c.discountPercent
}

func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.items); err != nil {
		c.logger.Warn("Failed to save cart snapshot", zap.Error(err))
	}
}
