package domain

// CartItem is the single item a session can hold before checkout.
type CartItem struct {
	ItemID      string `json:"itemId"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image,omitempty"`
	Price       int64  `json:"price"`
}
