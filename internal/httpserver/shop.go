package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftstore/internal/shop"
)

// shopHandler serves the daily rotation, optionally narrowed by query
// filters: repeatable `category` and `rarity` params plus `minPrice` /
// `maxPrice` V-Bucks bounds.
func shopHandler(catalog ShopCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.DailyShop(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "shop rotation unavailable"})
			return
		}

		sel := selectionFromQuery(c)
		filtered := shop.Filter(items, sel)
		c.JSON(http.StatusOK, gin.H{
			"items": filtered,
			"total": len(filtered),
		})
	}
}

func selectionFromQuery(c *gin.Context) shop.FilterSelection {
	sel := shop.NewFilterSelection()
	for _, category := range c.QueryArray("category") {
		sel.ToggleCategory(category)
	}
	for _, rarity := range c.QueryArray("rarity") {
		sel.ToggleRarity(rarity)
	}

	minStr, hasMin := c.GetQuery("minPrice")
	maxStr, hasMax := c.GetQuery("maxPrice")
	if hasMin || hasMax {
		min := shop.PriceMin
		max := shop.PriceMax
		if hasMin {
			if v, err := strconv.ParseInt(minStr, 10, 64); err == nil {
				min = v
			}
		}
		if hasMax {
			if v, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
				max = v
			}
		}
		sel.SetPriceRange(min, max)
	}
	return sel
}
