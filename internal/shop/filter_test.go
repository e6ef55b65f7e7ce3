package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftstore/internal/domain"
)

func rotationFixture() []domain.ShopItem {
	return []domain.ShopItem{
		{
			ID:         "outfit-1",
			Categories: []string{"Outfit"},
			Rarity:     domain.ShopRarity{Name: "Epic"},
			Price:      domain.ShopPrice{Final: 1200},
		},
		{
			ID:         "emote-1",
			Categories: []string{"Emote"},
			Rarity:     domain.ShopRarity{Name: "Rare"},
			Price:      domain.ShopPrice{Final: 500},
		},
		{
			ID:     "bare-1",
			Rarity: domain.ShopRarity{},
			Price:  domain.ShopPrice{Final: 800},
		},
	}
}

func TestFilter_DefaultSelectionIsIdentity(t *testing.T) {
	items := rotationFixture()
	got := Filter(items, NewFilterSelection())
	assert.Equal(t, items, got)
}

func TestFilter_CategoryCaseInsensitive(t *testing.T) {
	items := rotationFixture()
	sel := NewFilterSelection()
	sel.ToggleCategory("OUTFIT")

	got := Filter(items, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "outfit-1", got[0].ID)
}

func TestFilter_ToggleTwiceRestoresIdentity(t *testing.T) {
	items := rotationFixture()
	sel := NewFilterSelection()
	sel.ToggleCategory("outfit")
	sel.ToggleCategory("Outfit")

	assert.Equal(t, items, Filter(items, sel))
}

func TestFilter_RarityDimension(t *testing.T) {
	items := rotationFixture()
	sel := NewFilterSelection()
	sel.ToggleRarity("Rare")

	got := Filter(items, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "emote-1", got[0].ID)
}

func TestFilter_MissingFieldsExcludedFromActiveDimensions(t *testing.T) {
	items := rotationFixture()

	sel := NewFilterSelection()
	sel.ToggleCategory("outfit")
	sel.ToggleCategory("emote")
	got := Filter(items, sel)
	assert.Equal(t, []string{"outfit-1", "emote-1"}, ids(got), "item without categories must not match an active category filter")

	sel = NewFilterSelection()
	sel.ToggleRarity("epic")
	sel.ToggleRarity("rare")
	got = Filter(items, sel)
	assert.Equal(t, []string{"outfit-1", "emote-1"}, ids(got), "item without rarity must not match an active rarity filter")
}

func TestFilter_PriceRangeInclusiveBounds(t *testing.T) {
	items := rotationFixture()
	sel := NewFilterSelection()
	sel.SetPriceRange(500, 800)

	got := Filter(items, sel)
	assert.Equal(t, []string{"emote-1", "bare-1"}, ids(got))
}

func TestFilter_DimensionsIntersect(t *testing.T) {
	// Concrete scenario: category filter alone selects the outfit.
	items := []domain.ShopItem{
		{ID: "1", Categories: []string{"outfit"}, Rarity: domain.ShopRarity{Name: "Epic"}, Price: domain.ShopPrice{Final: 1200}},
		{ID: "2", Categories: []string{"emote"}, Rarity: domain.ShopRarity{Name: "Rare"}, Price: domain.ShopPrice{Final: 500}},
	}
	sel := NewFilterSelection()
	sel.ToggleCategory("outfit")

	got := Filter(items, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Adding a price dimension that excludes the outfit empties the result.
	sel.SetPriceRange(0, 1000)
	assert.Empty(t, Filter(items, sel))
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	items := []domain.ShopItem{
		{ID: "c", Rarity: domain.ShopRarity{Name: "Epic"}, Price: domain.ShopPrice{Final: 100}},
		{ID: "a", Rarity: domain.ShopRarity{Name: "Epic"}, Price: domain.ShopPrice{Final: 300}},
		{ID: "b", Rarity: domain.ShopRarity{Name: "Epic"}, Price: domain.ShopPrice{Final: 200}},
	}
	sel := NewFilterSelection()
	sel.ToggleRarity("epic")

	assert.Equal(t, []string{"c", "a", "b"}, ids(Filter(items, sel)))
}

func TestSetPriceRange_ClampsAndOrders(t *testing.T) {
	sel := NewFilterSelection()
	sel.SetPriceRange(-50, 5000)
	assert.Equal(t, PriceRange{Min: 0, Max: 2000}, sel.Price)
	assert.False(t, sel.priceActive())

	sel.SetPriceRange(900, 300)
	assert.Equal(t, PriceRange{Min: 300, Max: 300}, sel.Price)
	assert.LessOrEqual(t, sel.Price.Min, sel.Price.Max)
}

func TestToggle_IgnoresBlankValues(t *testing.T) {
	sel := NewFilterSelection()
	sel.ToggleCategory("   ")
	sel.ToggleRarity("")
	assert.Empty(t, sel.Categories)
	assert.Empty(t, sel.Rarities)
}

func ids(items []domain.ShopItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
