package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// duplicateCatalog mirrors the overlapping definition lists: "ipsec" is
// defined twice with different prose, and "sec" is an id whose display name
// collides with nothing.
func duplicateCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		[]Term{
			{ID: "tcp", Term: "TCP", Category: CategoryProtocol},
			{ID: "ip", Term: "IP", Category: CategoryNetwork},
			{ID: "ipsec", Term: "IPsec", Definition: "first", Category: CategorySecurity},
			{ID: "esp-proto", Term: "ESP", Definition: "first esp", Category: CategorySecurity},
		},
		[]Term{
			{ID: "ipsec", Term: "IPsec", Definition: "second", Category: CategorySecurity},
			{ID: "esp", Term: "ESP", Definition: "second esp", Category: CategorySecurity},
		},
	)
	require.NoError(t, err)
	return c
}

func TestIndex_LastOccurrenceWins(t *testing.T) {
	c := duplicateCatalog(t)
	ix := NewIndex(c)

	got, ok := ix.Get("ipsec")
	require.True(t, ok)
	assert.Equal(t, "second", got.Definition)

	got, ok = ix.Get("IP-SEC")
	require.True(t, ok, "lookups normalize the id")
	assert.Equal(t, "second", got.Definition)

	assert.Equal(t, 5, ix.Len())
}

func TestResolver_Resolve(t *testing.T) {
	c := duplicateCatalog(t)
	r := NewResolver(c, NewIndex(c))

	tests := []struct {
		name    string
		keyword string
		wantID  string
		wantDef string
		wantOK  bool
	}{
		{name: "display name", keyword: "TCP", wantID: "tcp", wantOK: true},
		{name: "spaced display name", keyword: "T C P", wantID: "tcp", wantOK: true},
		{name: "punctuated display name", keyword: "T.C.P!", wantID: "tcp", wantOK: true},
		{name: "duplicate display name takes first", keyword: "IPsec", wantID: "ipsec", wantDef: "first", wantOK: true},
		{name: "name match beats id match", keyword: "esp", wantID: "esp-proto", wantDef: "first esp", wantOK: true},
		{name: "id fallback", keyword: "esp-proto", wantID: "esp-proto", wantOK: true},
		{name: "miss", keyword: "nonexistent-keyword-xyz", wantOK: false},
		{name: "empty", keyword: "", wantOK: false},
		{name: "punctuation only", keyword: "!?", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.keyword)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, Term{}, got)
				return
			}
			assert.Equal(t, tt.wantID, got.ID)
			if tt.wantDef != "" {
				assert.Equal(t, tt.wantDef, got.Definition)
			}
		})
	}
}

// The id path and the display-name path disagree on which duplicate wins.
// This pins both so a change to either is noticed.
func TestResolver_DuplicateTieBreaks(t *testing.T) {
	c, err := NewCatalog(
		[]Term{{ID: "nat", Term: "Network Address Translation", Definition: "security view", Category: CategorySecurity}},
		[]Term{{ID: "nat", Term: "Network Address Translation", Definition: "vpn view", Category: CategoryNetwork}},
	)
	require.NoError(t, err)
	r := NewResolver(c, NewIndex(c))

	byName, ok := r.Resolve("network address translation")
	require.True(t, ok)
	assert.Equal(t, "security view", byName.Definition)

	byID, ok := r.Resolve("NAT")
	require.True(t, ok)
	assert.Equal(t, "vpn view", byID.Definition)
	assert.Equal(t, CategoryNetwork, byID.Category)
}

func TestResolver_EmptyKeywordMisses(t *testing.T) {
	c, err := NewCatalog(sampleTerms())
	require.NoError(t, err)
	r := NewResolver(c, NewIndex(c))

	for _, keyword := range []string{"", "!!", " - "} {
		_, ok := r.Resolve(keyword)
		assert.False(t, ok, "keyword %q", keyword)
	}
}
