package domain

import "time"

// Product kinds sold through the back-office catalog.
const (
	ProductKindVBucks = "vbucks"
	ProductKindRobux  = "robux"
	ProductKindItem   = "item"
)

// Product is a back-office catalog entry (currency packs and standalone
// items managed by admins, as opposed to the externally rotated shop).
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Amount      int64     `json:"amount"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"createdAt"`
}
