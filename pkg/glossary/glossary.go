package glossary

import (
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

// Glossary bundles the catalog with the structures derived from it. Build it
// once at startup and pass it to whatever needs lookups; everything in it is
// read-only afterwards.
type Glossary struct {
	Catalog    *Catalog
	Index      *Index
	Resolver   *Resolver
	Categories *CategoryIndex
	Relations  *RelationGraph
}

// New builds a glossary from definition lists concatenated in order.
func New(lists ...[]Term) (*Glossary, error) {
	catalog, err := NewCatalog(lists...)
	if err != nil {
		return nil, err
	}

	index := NewIndex(catalog)
	g := &Glossary{
		Catalog:    catalog,
		Index:      index,
		Resolver:   NewResolver(catalog, index),
		Categories: NewCategoryIndex(catalog),
		Relations:  NewRelationGraph(catalog, index),
	}
	g.reportDataQuality()
	return g, nil
}

// Builtin builds the glossary from the embedded lists followed by any extra
// list files.
func Builtin(extraPaths ...string) (*Glossary, error) {
	lists, err := BuiltinLists()
	if err != nil {
		return nil, err
	}
	extra, err := LoadFiles(extraPaths...)
	if err != nil {
		return nil, err
	}
	return New(append(lists, extra...)...)
}

// reportDataQuality logs duplicate ids and dangling edges. Neither is fixed
// here; they are flagged for whoever maintains the definition lists.
func (g *Glossary) reportDataQuality() {
	log := logger.Named("glossary")

	for _, d := range g.Catalog.Duplicates() {
		log.Warnw("duplicate term id",
			logger.FieldTermID, d.Key,
			logger.FieldPositions, d.Positions)
	}
	for _, e := range g.Relations.Dangling() {
		log.Debugw("dangling related term",
			logger.FieldTermID, e.From,
			logger.FieldRelatedID, e.To)
	}

	log.Debugw("glossary built",
		logger.FieldCount, g.Catalog.Len(),
		"keys", g.Index.Len())
}
