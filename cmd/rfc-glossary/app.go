package main

import (
	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/config"
	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

// app bundles everything the subcommands read. It is built once per run.
type app struct {
	glossary *glossary.Glossary
	tags     *tags.Catalog
	articles *article.Index
	renderer *article.Renderer
}

func loadApp(c *config.Config) (*app, error) {
	g, err := glossary.Builtin(c.Catalog.Extra...)
	if err != nil {
		return nil, err
	}
	tagCatalog, err := tags.Builtin(c.Tags.Extra)
	if err != nil {
		return nil, err
	}
	articles, err := article.Builtin(tagCatalog)
	if err != nil {
		return nil, err
	}
	renderer, err := article.NewRenderer(c.Render.Style, c.Render.WordWrap)
	if err != nil {
		return nil, err
	}

	logger.Named("app").Debugw("catalogs loaded",
		logger.FieldCount, g.Catalog.Len(),
		"tags", tagCatalog.Len(),
		"articles", len(articles.Articles()),
	)
	return &app{glossary: g, tags: tagCatalog, articles: articles, renderer: renderer}, nil
}
