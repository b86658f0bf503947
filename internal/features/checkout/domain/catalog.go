package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownPartner is returned for a delivery partner id outside the catalog.
var ErrUnknownPartner = errors.New("unknown delivery partner")

// DeliveryPartner is an immutable courier option.
type DeliveryPartner struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	Description    string `json:"description"`
	EstimatedDays  string `json:"estimated_days"`
	RequiresUserID bool   `json:"requires_user_id"`
}

var deliveryPartners = []DeliveryPartner{
	{
		ID:            0,
		Name:          "Storefront Express",
		Logo:          "/images/delivery/express.png",
		Description:   "In-house delivery inside the valley",
		EstimatedDays: "1-2",
	},
	{
		ID:             1,
		Name:           "Pathao Parcel",
		Logo:           "/images/delivery/pathao.png",
		Description:    "Nationwide delivery linked to your Pathao account",
		EstimatedDays:  "2-4",
		RequiresUserID: true,
	},
	{
		ID:            2,
		Name:          "Nepal Can Move",
		Logo:          "/images/delivery/ncm.png",
		Description:   "Branch pickup or doorstep delivery outside the valley",
		EstimatedDays: "3-5",
	},
}

// DeliveryPartners returns a copy of the partner catalog.
func DeliveryPartners() []DeliveryPartner {
	return append([]DeliveryPartner(nil), deliveryPartners...)
}

// FindDeliveryPartner looks a partner up by id.
func FindDeliveryPartner(id int) (DeliveryPartner, error) {
	for _, p := range deliveryPartners {
		if p.ID == id {
			return p, nil
		}
	}
	return DeliveryPartner{}, fmt.Errorf("%w: %d", ErrUnknownPartner, id)
}
