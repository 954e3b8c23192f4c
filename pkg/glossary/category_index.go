package glossary

// CategoryIndex groups catalog terms by category, keeping catalog order
// inside each group. Only populated categories are materialised.
type CategoryIndex struct {
	groups map[Category][]Term
}

// NewCategoryIndex groups c in one pass.
func NewCategoryIndex(c *Catalog) *CategoryIndex {
	groups := make(map[Category][]Term)
	for _, t := range c.terms {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return &CategoryIndex{groups: groups}
}

// ByCategory returns the terms of cat in catalog order. A category with no
// terms yields an empty slice.
func (ci *CategoryIndex) ByCategory(cat Category) []Term {
	group := ci.groups[cat]
	out := make([]Term, len(group))
	copy(out, group)
	return out
}

// Categories returns the populated categories in AllCategories order.
func (ci *CategoryIndex) Categories() []Category {
	var out []Category
	for _, cat := range AllCategories() {
		if len(ci.groups[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// Counts returns the number of terms per populated category.
func (ci *CategoryIndex) Counts() map[Category]int {
	counts := make(map[Category]int, len(ci.groups))
	for cat, group := range ci.groups {
		counts[cat] = len(group)
	}
	return counts
}
