package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

func TestSelectionFromFlags(t *testing.T) {
	catalog, err := tags.Builtin("")
	require.NoError(t, err)

	sel, err := selectionFromFlags(catalog, []string{"transport", "modern", "transport"})
	require.NoError(t, err)
	assert.Equal(t, tags.Selection{"modern"}, sel)

	sel, err = selectionFromFlags(catalog, nil)
	require.NoError(t, err)
	assert.Equal(t, tags.Selection{}, sel)

	_, err = selectionFromFlags(catalog, []string{"transport", "nope"})
	assert.ErrorContains(t, err, `unknown tag "nope"`)
}

func TestFacetItems(t *testing.T) {
	catalog, err := tags.Builtin("")
	require.NoError(t, err)

	group := catalog.Groups()[0]
	items := facetItems(group, tags.Selection{group.Tags[0].ID})
	require.Len(t, items, len(group.Tags))
	assert.True(t, strings.HasPrefix(items[0].Text, "[x] "))
	assert.True(t, strings.HasPrefix(items[1].Text, "[ ] "))
}

func TestTermRows(t *testing.T) {
	terms := []glossary.Term{
		{ID: "tcp", Term: "TCP", Category: glossary.CategoryProtocol, Definition: strings.Repeat("stream ", 30)},
	}
	rows := termRows(terms)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Term", "Category", "Definition"}, rows[0])
	assert.Equal(t, "protocol", rows[1][2])
	assert.Len(t, rows[1][3], 72)
	assert.True(t, strings.HasSuffix(rows[1][3], "..."))
}

func TestDuplicateRows(t *testing.T) {
	g, err := glossary.Builtin()
	require.NoError(t, err)

	dups := g.Catalog.Duplicates()
	require.NotEmpty(t, dups)
	rows := duplicateRows(g, dups)
	require.Len(t, rows, len(dups)+1)
	assert.Equal(t, []string{"Key", "Positions", "Categories", "Id lookup", "Name lookup"}, rows[0])

	var nat []string
	for i, d := range dups {
		last := d.Positions[len(d.Positions)-1]
		winner, ok := g.Index.Get(d.Key)
		require.True(t, ok)
		assert.Equal(t, g.Catalog.At(last), winner)
		assert.Equal(t, d.Key, rows[i+1][0])
		require.Len(t, rows[i+1], 5)
		if d.Key == "nat" {
			nat = rows[i+1]
		}
	}

	// Lookup by id keeps the last entry, lookup by name the first.
	require.NotNil(t, nat)
	assert.True(t, strings.HasSuffix(nat[3], "(network)"), nat[3])
	assert.True(t, strings.HasSuffix(nat[4], "(security)"), nat[4])
	assert.NotEqual(t, nat[3], nat[4])
}

func TestSummarize_MultiByte(t *testing.T) {
	s := summarize(strings.Repeat("é", 100), 20)
	assert.True(t, utf8.ValidString(s))
	assert.True(t, strings.HasSuffix(s, "..."))
	assert.LessOrEqual(t, ansi.PrintableRuneWidth(s), 20)

	s = summarize(strings.Repeat("語", 40), 21)
	assert.True(t, utf8.ValidString(s))
	assert.LessOrEqual(t, ansi.PrintableRuneWidth(s), 21)

	assert.Equal(t, "short", summarize("  short ", 20))
}

func TestReadSource_Stdin(t *testing.T) {
	data, err := readSource(strings.NewReader("see [[TCP]]"), "-")
	require.NoError(t, err)
	assert.Equal(t, "see [[TCP]]", string(data))

	_, err = readSource(nil, "does-not-exist.md")
	assert.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"lookup", "http-1-0", "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "HTTP/1.0")

	out.Reset()
	rootCmd.SetArgs([]string{"lookup", "no-such-term"})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "no glossary entry for no-such-term")
}
