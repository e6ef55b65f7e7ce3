package domain

import "time"

// Gift statuses. A gift starts pending and is resolved exactly once.
const (
	GiftStatusPending   = "pending"
	GiftStatusDelivered = "delivered"
	GiftStatusFailed    = "failed"
)

// Gift is an order fulfilled by delivering an item to a player account.
type Gift struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"userId,omitempty"`
	Recipient     string    `json:"recipient"`
	ItemID        string    `json:"itemId"`
	ItemName      string    `json:"itemName"`
	Image         string    `json:"image,omitempty"`
	PriceVBucks   int64     `json:"priceVBucks"`
	PriceUSDCents int64     `json:"priceUsdCents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ValidGiftStatus reports whether s is one of the known gift statuses.
func ValidGiftStatus(s string) bool {
	switch s {
	case GiftStatusPending, GiftStatusDelivered, GiftStatusFailed:
		return true
	}
	return false
}
