package tags

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Category is the facet a tag belongs to. It is a separate, UI-facing set and
// unrelated to glossary term categories.
type Category string

const (
	CategoryProtocol   Category = "protocol"
	CategoryTechnology Category = "technology"
	CategoryLevel      Category = "level"
	CategoryRelevance  Category = "relevance"
)

// ErrUnknownCategory is returned for facet values outside the closed set.
var ErrUnknownCategory = errors.New("unknown tag category")

// ParseCategory converts s into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryProtocol, CategoryTechnology, CategoryLevel, CategoryRelevance:
		return c, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnknownCategory, "%q", s),
			"valid tag categories: protocol, technology, level, relevance",
		)
	}
}

// Label is the heading shown above the facet group.
func (c Category) Label() string {
	switch c {
	case CategoryProtocol:
		return "Protocol"
	case CategoryTechnology:
		return "Technology"
	case CategoryLevel:
		return "Level"
	case CategoryRelevance:
		return "Relevance"
	}
	return string(c)
}

// UnmarshalYAML validates the facet while decoding.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*c = parsed
	return nil
}

// Tag is a filter label attached to articles.
type Tag struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	Color       string   `yaml:"color" json:"color"`
	Description string   `yaml:"description" json:"description"`
}
