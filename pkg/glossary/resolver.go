package glossary

// Resolver maps a free-text keyword to its canonical term.
//
// Rules, first match wins:
//  1. the first term in catalog order whose normalized display name equals
//     the normalized keyword;
//  2. the index entry for the normalized keyword (last catalog occurrence of
//     a duplicated id).
//
// Name lookups therefore prefer the first duplicate and id lookups the last.
// Both are kept exactly as observed in the site; see DESIGN.md.
type Resolver struct {
	catalog *Catalog
	index   *Index
	names   []string // Normalize(catalog.terms[i].Term)
}

// NewResolver builds a resolver over c and ix. ix must have been built from c.
func NewResolver(c *Catalog, ix *Index) *Resolver {
	names := make([]string, len(c.terms))
	for i, t := range c.terms {
		names[i] = Normalize(t.Term)
	}
	return &Resolver{catalog: c, index: ix, names: names}
}

// Resolve returns the term for keyword, or false on a miss. A miss is not an
// error: callers render the keyword as plain text.
func (r *Resolver) Resolve(keyword string) (Term, bool) {
	key := Normalize(keyword)
	for i, name := range r.names {
		if name == key {
			return r.catalog.terms[i], true
		}
	}
	return r.index.Get(key)
}
