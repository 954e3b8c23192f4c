package tags

// Group is one facet heading and its tags.
type Group struct {
	Category Category
	Tags     []Tag
}

// GroupByCategory groups tags by facet. Groups appear in the order their
// category is first seen and keep the tags' relative order. A category is
// only emitted once it has a tag, so no group is ever empty.
func GroupByCategory(tags []Tag) []Group {
	var groups []Group
	pos := make(map[Category]int)
	for _, t := range tags {
		i, ok := pos[t.Category]
		if !ok {
			i = len(groups)
			pos[t.Category] = i
			groups = append(groups, Group{Category: t.Category})
		}
		groups[i].Tags = append(groups[i].Tags, t)
	}
	return groups
}
