package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// NewItem clamps price to >= 0 and quantity to >= 1 so a sloppy caller
// cannot put a nonsense line into the cart.
func NewItem(productID, title string, price decimal.Decimal, image string, quantity int) Item {
	if price.IsNegative() {
		price = decimal.Zero
	}
	if quantity < 1 {
		quantity = 1
	}
	return Item{
		ProductID: productID,
		Title:     title,
		Price:     price,
		Image:     image,
		Quantity:  quantity,
	}
}

// Cart holds the lines a shopper intends to buy for one browsing session,
// plus the open/closed state of the cart drawer. Item order is insertion
// order and only matters for display.
type Cart struct {
	ID         string    `json:"cartId"`
	SessionID  string    `json:"sessionId"`
	Items      []Item    `json:"items"`
	DrawerOpen bool      `json:"drawerOpen"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AddItem merges by product id: an existing line gets its quantity bumped
// (the incoming price wins), otherwise the line is appended. There is at
// most one line per product id.
func (c *Cart) AddItem(it Item) {
	it = NewItem(it.ProductID, it.Title, it.Price, it.Image, it.Quantity)
	for i := range c.Items {
		if c.Items[i].ProductID == it.ProductID {
			c.Items[i].Quantity += it.Quantity
			c.Items[i].Price = it.Price
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
	c.Items = append(c.Items, it)
	c.UpdatedAt = time.Now().UTC()
}

// RemoveItem drops the whole line regardless of quantity. Unknown product
// ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// UpdateQuantity sets the quantity for a line. Values below 1 are clamped
// to 1; removal happens only through RemoveItem. Unknown product ids are a
// no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// Clear empties the cart, called after a successful checkout.
func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now().UTC()
}

// ToggleDrawer flips the drawer visibility flag and leaves item data alone.
func (c *Cart) ToggleDrawer() {
	c.DrawerOpen = !c.DrawerOpen
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// ItemCount is the sum of quantities, shown in the header badge.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// ShippingCost is the flat fee below the free-shipping threshold and zero
// once the subtotal is strictly above it.
func (c *Cart) ShippingCost(freeThreshold, flatFee decimal.Decimal) decimal.Decimal {
	if c.Subtotal().GreaterThan(freeThreshold) {
		return decimal.Zero
	}
	return flatFee
}

func (c *Cart) Total(freeThreshold, flatFee decimal.Decimal) decimal.Decimal {
	return c.Subtotal().Add(c.ShippingCost(freeThreshold, flatFee))
}
