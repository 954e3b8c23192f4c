package tags

// Tagged is anything a facet filter can narrow down.
type Tagged interface {
	TagIDs() []string
}

// Matches reports whether item carries every selected tag. The empty
// selection matches everything.
func Matches(item Tagged, sel Selection) bool {
	if len(sel) == 0 {
		return true
	}
	have := item.TagIDs()
	for _, want := range sel {
		found := false
		for _, id := range have {
			if id == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter keeps the items matching sel, in their original order.
func Filter[T Tagged](items []T, sel Selection) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, sel) {
			out = append(out, item)
		}
	}
	return out
}
