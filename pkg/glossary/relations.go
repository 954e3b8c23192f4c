package glossary

// RelationGraph follows a term's related ids one hop through the index.
type RelationGraph struct {
	catalog *Catalog
	index   *Index
}

// DanglingEdge is a related id that resolves to nothing.
type DanglingEdge struct {
	From     string
	Position int // catalog position of the term holding the edge
	To       string
}

// NewRelationGraph builds a graph over c using ix for resolution.
func NewRelationGraph(c *Catalog, ix *Index) *RelationGraph {
	return &RelationGraph{catalog: c, index: ix}
}

// RelatedOf resolves each of t.RelatedTerms in order. Ids that do not
// resolve are skipped.
func (g *RelationGraph) RelatedOf(t Term) []Term {
	related := make([]Term, 0, len(t.RelatedTerms))
	for _, id := range t.RelatedTerms {
		if r, ok := g.index.Get(id); ok {
			related = append(related, r)
		}
	}
	return related
}

// Dangling lists every edge in the catalog whose target is missing.
func (g *RelationGraph) Dangling() []DanglingEdge {
	var edges []DanglingEdge
	for i, t := range g.catalog.terms {
		for _, id := range t.RelatedTerms {
			if _, ok := g.index.Get(id); !ok {
				edges = append(edges, DanglingEdge{From: t.ID, Position: i, To: id})
			}
		}
	}
	return edges
}
