// Package domain encodes the records owned by the point-of-sale backend
// and the invariants that protect them.
package domain

// MenuItem is one sellable entry in the catalog. Items are addressed by
// their position in the catalog; positions shift when items are removed.
type MenuItem struct {
	Name       string
	PriceCents int64
	Category   *string
}

// NewMenuItem validates and builds a catalog entry. Category is optional;
// absent and empty string are distinct states, so it stays a pointer.
func NewMenuItem(name string, priceCents int64, category *string) (MenuItem, error) {
	if name == "" {
		return MenuItem{}, NewValidationError("item name is required")
	}
	if priceCents < 0 {
		return MenuItem{}, NewValidationError("item price cannot be negative")
	}
	return MenuItem{
		Name:       name,
		PriceCents: priceCents,
		Category:   category,
	}, nil
}

// MenuGroup is one category bucket of the grouped catalog view. Category is
// nil for the bucket holding uncategorized items.
type MenuGroup struct {
	Category *string
	Items    []MenuItem
}

// GroupByCategory buckets items by category. Buckets appear in order of the
// first item that introduces them, and items keep catalog order within a
// bucket, so the output is deterministic for a given catalog state.
func GroupByCategory(items []MenuItem) []MenuGroup {
	groups := make([]MenuGroup, 0)
	index := make(map[string]int)
	uncategorized := -1

	for _, item := range items {
		if item.Category == nil {
			if uncategorized == -1 {
				groups = append(groups, MenuGroup{})
				uncategorized = len(groups) - 1
			}
			groups[uncategorized].Items = append(groups[uncategorized].Items, item)
			continue
		}

		i, ok := index[*item.Category]
		if !ok {
			category := *item.Category
			groups = append(groups, MenuGroup{Category: &category})
			i = len(groups) - 1
			index[category] = i
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
