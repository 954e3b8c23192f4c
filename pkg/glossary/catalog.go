package glossary

import (
	"github.com/cockroachdb/errors"
)

// Term is one technical concept in the glossary.
type Term struct {
	ID           string   `yaml:"id" json:"id"`
	Term         string   `yaml:"term" json:"term"`
	Definition   string   `yaml:"definition" json:"definition"`
	Category     Category `yaml:"category" json:"category"`
	RelatedTerms []string `yaml:"relatedTerms,omitempty" json:"relatedTerms,omitempty"`
}

// ErrEmptyID is returned when a term id has no alphanumeric characters and
// so cannot produce a lookup key.
var ErrEmptyID = errors.New("term id is empty after normalization")

// Catalog is the ordered, read-only sequence of terms as authored. It is
// built once and never mutated, so it can be shared between goroutines.
//
// Ids are meant to be unique but the definition lists overlap (ipsec, esp,
// nat, ...). Duplicates are kept as-is; Index and Resolver document which
// occurrence each lookup returns.
type Catalog struct {
	terms []Term
}

// NewCatalog concatenates lists in order and validates every entry.
func NewCatalog(lists ...[]Term) (*Catalog, error) {
	var total int
	for _, list := range lists {
		total += len(list)
	}

	terms := make([]Term, 0, total)
	for _, list := range lists {
		for _, t := range list {
			if Normalize(t.ID) == "" {
				return nil, errors.Wrapf(ErrEmptyID, "term %q at position %d", t.Term, len(terms))
			}
			if !t.Category.Valid() {
				return nil, errors.Wrapf(ErrUnknownCategory, "term %q has category %q", t.ID, t.Category)
			}
			t.RelatedTerms = append([]string(nil), t.RelatedTerms...)
			terms = append(terms, t)
		}
	}

	return &Catalog{terms: terms}, nil
}

// Len returns the number of entries, duplicates included.
func (c *Catalog) Len() int {
	return len(c.terms)
}

// At returns the i-th term in catalog order.
func (c *Catalog) At(i int) Term {
	return c.terms[i]
}

// Terms returns a copy of the catalog in authored order.
func (c *Catalog) Terms() []Term {
	out := make([]Term, len(c.terms))
	copy(out, c.terms)
	return out
}

// Duplicate records an id that appears more than once.
type Duplicate struct {
	Key       string // normalized id
	IDs       []string
	Positions []int
}

// Duplicates reports every normalized id that occurs more than once, in
// order of first occurrence. It only reports; nothing is merged.
func (c *Catalog) Duplicates() []Duplicate {
	positions := make(map[string][]int)
	var order []string
	for i, t := range c.terms {
		key := Normalize(t.ID)
		if _, seen := positions[key]; !seen {
			order = append(order, key)
		}
		positions[key] = append(positions[key], i)
	}

	var dups []Duplicate
	for _, key := range order {
		pos := positions[key]
		if len(pos) < 2 {
			continue
		}
		d := Duplicate{Key: key, Positions: pos}
		for _, p := range pos {
			d.IDs = append(d.IDs, c.terms[p].ID)
		}
		dups = append(dups, d)
	}
	return dups
}
