package models

import (
	"fmt"
	"strings"
)

// Article is one illustrated RFC write-up on the site.
type Article struct {
	Slug    string   `yaml:"slug" json:"slug"`
	RFCs    []int    `yaml:"rfcs" json:"rfcs"`
	Title   string   `yaml:"title" json:"title"`
	Year    int      `yaml:"year" json:"year"`
	Tags    []string `yaml:"tags" json:"tags"`
	Summary string   `yaml:"summary" json:"summary"`
}

// TagIDs lets articles be narrowed by the facet filter.
func (a Article) TagIDs() []string {
	return a.Tags
}

// RFCLabel formats the RFC numbers, e.g. "RFC 5389, RFC 8445".
func (a Article) RFCLabel() string {
	parts := make([]string, len(a.RFCs))
	for i, n := range a.RFCs {
		parts[i] = fmt.Sprintf("RFC %d", n)
	}
	return strings.Join(parts, ", ")
}
