package article

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/evanschultz/rfc-glossary/pkg/models"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

//go:embed data/articles.yaml
var builtinArticles []byte

var (
	// ErrUnknownTag is returned when an article carries a tag id the tag
	// catalog does not define.
	ErrUnknownTag = errors.New("article references unknown tag")
	// ErrDuplicateSlug is returned when two articles share a slug.
	ErrDuplicateSlug = errors.New("duplicate article slug")
)

// Index is the ordered list of site articles.
type Index struct {
	articles []models.Article
	bySlug   map[string]int
}

type articleList struct {
	Articles []models.Article `yaml:"articles"`
}

// NewIndex validates articles against the tag catalog.
func NewIndex(articles []models.Article, catalog *tags.Catalog) (*Index, error) {
	ix := &Index{
		articles: make([]models.Article, 0, len(articles)),
		bySlug:   make(map[string]int, len(articles)),
	}
	for _, a := range articles {
		if a.Slug == "" {
			return nil, errors.Newf("article %q has no slug", a.Title)
		}
		if _, dup := ix.bySlug[a.Slug]; dup {
			return nil, errors.Wrapf(ErrDuplicateSlug, "%q", a.Slug)
		}
		for _, id := range a.Tags {
			if _, ok := catalog.Get(id); !ok {
				return nil, errors.Wrapf(ErrUnknownTag, "article %q tag %q", a.Slug, id)
			}
		}
		ix.bySlug[a.Slug] = len(ix.articles)
		ix.articles = append(ix.articles, a)
	}
	return ix, nil
}

// Decode parses a YAML article list.
func Decode(data []byte, source string) ([]models.Article, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list articleList
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "decode article list %s", source)
	}
	return list.Articles, nil
}

// Builtin returns the embedded article index.
func Builtin(catalog *tags.Catalog) (*Index, error) {
	articles, err := Decode(builtinArticles, "data/articles.yaml")
	if err != nil {
		return nil, err
	}
	return NewIndex(articles, catalog)
}

// Articles returns every article in authored order.
func (ix *Index) Articles() []models.Article {
	out := make([]models.Article, len(ix.articles))
	copy(out, ix.articles)
	return out
}

// Get returns the article with the given slug.
func (ix *Index) Get(slug string) (models.Article, bool) {
	i, ok := ix.bySlug[slug]
	if !ok {
		return models.Article{}, false
	}
	return ix.articles[i], true
}

// Filter returns the articles carrying every tag in sel.
func (ix *Index) Filter(sel tags.Selection) []models.Article {
	return tags.Filter(ix.articles, sel)
}
