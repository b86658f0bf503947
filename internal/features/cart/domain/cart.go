package domain

import "github.com/shopspring/decimal"

// Product is the product summary embedded in a cart line.
type Product struct {
	// ID is the catalog product id.
	ID int64 `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Slug is the storefront URL slug.
	Slug string `json:"slug,omitempty"`
	// Image is the primary image URL.
	Image string `json:"image,omitempty"`
}

// LineItem is a single product line in the cart.
type LineItem struct {
	// ID identifies the line for update and delete.
	ID int64 `json:"id"`
	// ProductID references the catalog product.
	ProductID int64 `json:"product_id"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// UnitPrice is the price of one unit.
	UnitPrice decimal.Decimal `json:"price"`
	// Subtotal is UnitPrice x Quantity as computed by the server.
	Subtotal decimal.Decimal `json:"subtotal"`
	// Product is the embedded product summary.
	Product Product `json:"product"`
}

// CartSnapshot is the server-confirmed state of the cart at a point in time.
type CartSnapshot struct {
	// ID is the server cart id.
	ID int64 `json:"id"`
	// Items are the cart lines.
	Items []LineItem `json:"items"`
	// Total is the aggregate cart total as reported by the server.
	Total decimal.Decimal `json:"cart_total"`
	// CouponCode is the coupon attached to the cart server-side, if any.
	CouponCode string `json:"coupon_code,omitempty"`
}

// FindByProduct returns the line holding productID, if any.
func (s *CartSnapshot) FindByProduct(productID int64) (LineItem, bool) {
	if s == nil {
		return LineItem{}, false
	}
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// IsEmpty reports whether the cart holds no lines.
func (s *CartSnapshot) IsEmpty() bool {
	return s == nil || len(s.Items) == 0
}

// ItemCount returns the total number of units across all lines.
func (s *CartSnapshot) ItemCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// Subtotal returns the server total, or the sum of the line subtotals when the server sent none.
func (s *CartSnapshot) Subtotal() decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	if !s.Total.IsZero() {
		return s.Total
	}
	sum := decimal.Zero
	for _, item := range s.Items {
		line := item.Subtotal
		if line.IsZero() {
			line = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		sum = sum.Add(line)
	}
	return sum
}
