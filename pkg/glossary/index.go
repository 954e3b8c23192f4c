package glossary

// Index maps normalized ids to terms. It is built by walking the catalog in
// order, so for a duplicated id the last occurrence wins.
type Index struct {
	byKey map[string]Term
}

// NewIndex builds the id index for c.
func NewIndex(c *Catalog) *Index {
	byKey := make(map[string]Term, c.Len())
	for _, t := range c.terms {
		byKey[Normalize(t.ID)] = t
	}
	return &Index{byKey: byKey}
}

// Get looks up id after normalizing it.
func (ix *Index) Get(id string) (Term, bool) {
	t, ok := ix.byKey[Normalize(id)]
	return t, ok
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return len(ix.byKey)
}
