package tags

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/tags.yaml
var builtinTags []byte

var (
	// ErrEmptyID is returned for a tag without an id.
	ErrEmptyID = errors.New("tag id is empty")
	// ErrDuplicateID is returned when two tags share an id.
	ErrDuplicateID = errors.New("duplicate tag id")
)

// Catalog is the immutable, ordered list of available tags.
type Catalog struct {
	tags []Tag
	byID map[string]int
}

// NewCatalog validates tags and keeps them in the given order.
func NewCatalog(tags []Tag) (*Catalog, error) {
	c := &Catalog{
		tags: make([]Tag, 0, len(tags)),
		byID: make(map[string]int, len(tags)),
	}
	for _, t := range tags {
		if t.ID == "" {
			return nil, errors.Wrapf(ErrEmptyID, "tag %q", t.Name)
		}
		if _, err := ParseCategory(string(t.Category)); err != nil {
			return nil, errors.Wrapf(err, "tag %q", t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "%q", t.ID)
		}
		c.byID[t.ID] = len(c.tags)
		c.tags = append(c.tags, t)
	}
	return c, nil
}

type tagList struct {
	Tags []Tag `yaml:"tags"`
}

// Decode parses a YAML tag list.
func Decode(data []byte, source string) ([]Tag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list tagList
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "decode tag list %s", source)
	}
	return list.Tags, nil
}

// Builtin returns the embedded tag catalog, with tags from extraPath (if
// not empty) appended.
func Builtin(extraPath string) (*Catalog, error) {
	tags, err := Decode(builtinTags, "data/tags.yaml")
	if err != nil {
		return nil, err
	}
	if extraPath != "" {
		data, err := os.ReadFile(extraPath)
		if err != nil {
			return nil, errors.WithHint(errors.Wrap(err, "read tag list"), "check tags.extra in the config file")
		}
		extra, err := Decode(data, extraPath)
		if err != nil {
			return nil, err
		}
		tags = append(tags, extra...)
	}
	return NewCatalog(tags)
}

// Tags returns a copy of the tags in authored order.
func (c *Catalog) Tags() []Tag {
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Get returns the tag with the given id.
func (c *Catalog) Get(id string) (Tag, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tag{}, false
	}
	return c.tags[i], true
}

// Len returns the number of tags.
func (c *Catalog) Len() int {
	return len(c.tags)
}

// Groups is GroupByCategory over the whole catalog.
func (c *Catalog) Groups() []Group {
	return GroupByCategory(c.tags)
}
