package shop

import (
	"strings"

	"giftstore/internal/domain"
)

// Bounds of the filterable V-Bucks price range. A selection whose range
// still spans the full interval leaves the price dimension inactive.
const (
	PriceMin int64 = 0
	PriceMax int64 = 2000
)

// PriceRange is an inclusive V-Bucks price interval.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterSelection holds the active filter dimensions. Category and rarity
// values are kept lowercased; insertion order is irrelevant.
type FilterSelection struct {
	Categories map[string]struct{}
	Rarities   map[string]struct{}
	Price      PriceRange
}

// NewFilterSelection returns a selection with no active dimensions.
func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Categories: map[string]struct{}{},
		Rarities:   map[string]struct{}{},
		Price:      PriceRange{Min: PriceMin, Max: PriceMax},
	}
}

// ToggleCategory adds the category to the selection, or removes it when
// already present. Comparison is case-insensitive.
func (s *FilterSelection) ToggleCategory(name string) {
	toggle(s.Categories, name)
}

// ToggleRarity adds the rarity to the selection, or removes it when
// already present. Comparison is case-insensitive.
func (s *FilterSelection) ToggleRarity(name string) {
	toggle(s.Rarities, name)
}

// SetPriceRange activates the price dimension. Bounds are clamped into
// [PriceMin, PriceMax] and min is never allowed to exceed max.
func (s *FilterSelection) SetPriceRange(min, max int64) {
	min = clamp(min)
	max = clamp(max)
	if min > max {
		min = max
	}
	s.Price = PriceRange{Min: min, Max: max}
}

func toggle(set map[string]struct{}, name string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if _, ok := set[key]; ok {
		delete(set, key)
		return
	}
	set[key] = struct{}{}
}

func clamp(v int64) int64 {
	if v < PriceMin {
		return PriceMin
	}
	if v > PriceMax {
		return PriceMax
	}
	return v
}

func (s FilterSelection) priceActive() bool {
	return s.Price.Min != PriceMin || s.Price.Max != PriceMax
}

// Filter reduces items to the subset matching every active dimension of
// the selection (AND across dimensions, OR within one). Relative order is
// preserved and the input is never mutated. With no active dimensions the
// result contains exactly the input items.
func Filter(items []domain.ShopItem, sel FilterSelection) []domain.ShopItem {
	out := make([]domain.ShopItem, 0, len(items))
	for _, item := range items {
		if !matchesCategories(item, sel.Categories) {
			continue
		}
		if !matchesRarities(item, sel.Rarities) {
			continue
		}
		if sel.priceActive() {
			final := item.Price.Final
			if final < sel.Price.Min || final > sel.Price.Max {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func matchesCategories(item domain.ShopItem, selected map[string]struct{}) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range item.Categories {
		if _, ok := selected[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

func matchesRarities(item domain.ShopItem, selected map[string]struct{}) bool {
	if len(selected) == 0 {
		return true
	}
	if item.Rarity.Name == "" {
		return false
	}
	_, ok := selected[strings.ToLower(item.Rarity.Name)]
	return ok
}
