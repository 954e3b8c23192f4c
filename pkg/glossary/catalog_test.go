package glossary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTerms() []Term {
	return []Term{
		{ID: "tcp", Term: "TCP", Category: CategoryProtocol, RelatedTerms: []string{"ip", "ghost-id"}},
		{ID: "ip", Term: "IP", Category: CategoryNetwork, RelatedTerms: []string{"tcp"}},
		{ID: "tls", Term: "TLS", Category: CategorySecurity},
	}
}

func TestNewCatalog_ConcatenatesInOrder(t *testing.T) {
	extra := []Term{{ID: "smtp", Term: "SMTP", Category: CategoryEmail}}

	c, err := NewCatalog(sampleTerms(), extra)
	require.NoError(t, err)

	require.Equal(t, 4, c.Len())
	ids := make([]string, 0, c.Len())
	for _, term := range c.Terms() {
		ids = append(ids, term.ID)
	}
	assert.Equal(t, []string{"tcp", "ip", "tls", "smtp"}, ids)
	assert.Equal(t, "smtp", c.At(3).ID)
}

func TestNewCatalog_RejectsUnknownCategory(t *testing.T) {
	_, err := NewCatalog([]Term{{ID: "x", Term: "X", Category: "hardware"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestNewCatalog_RejectsEmptyID(t *testing.T) {
	for _, id := range []string{"", "--", "  "} {
		_, err := NewCatalog([]Term{{ID: id, Term: "X", Category: CategoryGeneral}})
		require.Error(t, err, "id %q", id)
		assert.True(t, errors.Is(err, ErrEmptyID))
	}
}

func TestCatalog_TermsIsACopy(t *testing.T) {
	c, err := NewCatalog(sampleTerms())
	require.NoError(t, err)

	terms := c.Terms()
	terms[0].Term = "changed"
	terms[0].RelatedTerms = nil

	assert.Equal(t, "TCP", c.At(0).Term)
	assert.Equal(t, []string{"ip", "ghost-id"}, c.At(0).RelatedTerms)
}

func TestCatalog_InputListNotAliased(t *testing.T) {
	list := sampleTerms()
	c, err := NewCatalog(list)
	require.NoError(t, err)

	list[0].RelatedTerms[0] = "mutated"
	assert.Equal(t, "ip", c.At(0).RelatedTerms[0])
}

func TestCatalog_Duplicates(t *testing.T) {
	c, err := NewCatalog(
		[]Term{
			{ID: "ipsec", Term: "IPsec", Category: CategorySecurity},
			{ID: "nat", Term: "NAT", Category: CategorySecurity},
			{ID: "tcp", Term: "TCP", Category: CategoryProtocol},
		},
		[]Term{
			{ID: "NAT", Term: "NAT", Category: CategoryNetwork},
			{ID: "ipsec", Term: "IPsec", Category: CategorySecurity},
		},
	)
	require.NoError(t, err)

	dups := c.Duplicates()
	require.Len(t, dups, 2)

	assert.Equal(t, "ipsec", dups[0].Key)
	assert.Equal(t, []int{0, 4}, dups[0].Positions)

	assert.Equal(t, "nat", dups[1].Key)
	assert.Equal(t, []string{"nat", "NAT"}, dups[1].IDs)
	assert.Equal(t, []int{1, 3}, dups[1].Positions)

	// Reporting never removes entries.
	assert.Equal(t, 5, c.Len())
}

func TestParseCategory(t *testing.T) {
	for _, cat := range AllCategories() {
		got, err := ParseCategory(string(cat))
		require.NoError(t, err)
		assert.Equal(t, cat, got)
		assert.NotEmpty(t, cat.Label())
	}

	_, err := ParseCategory("Protocol")
	assert.True(t, errors.Is(err, ErrUnknownCategory), "categories are case-sensitive")
	assert.NotEmpty(t, errors.GetAllHints(err))
}
