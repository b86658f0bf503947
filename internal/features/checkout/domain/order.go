package domain

import (
	"encoding/json"

	cart "storefront-checkout/internal/features/cart/domain"
)

// OrderProduct is one product line of an order.
type OrderProduct struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderRecipient is the recipient block sent with an order.
type OrderRecipient struct {
	Type    RecipientType `json:"type"`
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Message string        `json:"message"`
	Photos  []string      `json:"photos"`
}

// OrderRequest is the order creation payload.
type OrderRequest struct {
	FullName          string         `json:"full_name"`
	Products          []OrderProduct `json:"products"`
	ShippingAddressID int64          `json:"shipping_address_id"`
	// TotalAmount is sent as a JSON number.
	TotalAmount json.Number    `json:"total_amount"`
	PaymentType string         `json:"payment_type"`
	PromoCode   string         `json:"promo_code"`
	Recipient   OrderRecipient `json:"recipient"`
}

// BuildOrder assembles the order payload from a validated session and the cart.
func BuildOrder(s *CheckoutState, snap *cart.CartSnapshot, fullName string, totals Totals) OrderRequest {
	products := make([]OrderProduct, 0, len(snap.Items))
	for _, it := range snap.Items {
		products = append(products, OrderProduct{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	photos := s.Recipient.Photos
	if photos == nil {
		photos = []string{}
	}

	var addressID int64
	if s.Address != nil {
		addressID = s.Address.ID
	}

	return OrderRequest{
		FullName:          fullName,
		Products:          products,
		ShippingAddressID: addressID,
		TotalAmount:       json.Number(totals.Total.StringFixed(2)),
		PaymentType:       s.PaymentMethod,
		PromoCode:         s.PromoCode,
		Recipient: OrderRecipient{
			Type:    s.Recipient.Type,
			Name:    s.Recipient.Name,
			Phone:   s.Recipient.Phone,
			Message: s.Recipient.Message,
			Photos:  photos,
		},
	}
}
