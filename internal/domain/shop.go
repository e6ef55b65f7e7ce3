package domain

// ShopPrice carries the V-Bucks price points of a rotated shop item.
type ShopPrice struct {
	Regular int64 `json:"regularPrice"`
	Final   int64 `json:"finalPrice"`
	Floor   int64 `json:"floorPrice"`
}

// ShopRarity is the categorical tier attached to a cosmetic item.
type ShopRarity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShopItem is one entry of the externally curated daily shop rotation.
// Items are immutable once fetched and are never persisted locally.
type ShopItem struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Description string     `json:"description,omitempty"`
	Price       ShopPrice  `json:"price"`
	Rarity      ShopRarity `json:"rarity"`
	Categories  []string   `json:"categories,omitempty"`
	Images      []string   `json:"images,omitempty"`
}
