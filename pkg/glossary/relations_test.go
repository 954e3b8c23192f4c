package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIndex(t *testing.T) {
	c, err := NewCatalog([]Term{
		{ID: "tls", Term: "TLS", Category: CategorySecurity},
		{ID: "tcp", Term: "TCP", Category: CategoryProtocol},
		{ID: "esp", Term: "ESP", Category: CategorySecurity},
		{ID: "ike", Term: "IKE", Category: CategorySecurity},
	})
	require.NoError(t, err)
	ci := NewCategoryIndex(c)

	security := ci.ByCategory(CategorySecurity)
	ids := make([]string, 0, len(security))
	for _, term := range security {
		assert.Equal(t, CategorySecurity, term.Category)
		ids = append(ids, term.ID)
	}
	assert.Equal(t, []string{"tls", "esp", "ike"}, ids)

	assert.Empty(t, ci.ByCategory(CategoryEmail))
	assert.Equal(t, []Category{CategoryProtocol, CategorySecurity}, ci.Categories())
	assert.Equal(t, map[Category]int{CategorySecurity: 3, CategoryProtocol: 1}, ci.Counts())
}

func TestCategoryIndex_ResultIsACopy(t *testing.T) {
	c, err := NewCatalog([]Term{{ID: "tls", Term: "TLS", Category: CategorySecurity}})
	require.NoError(t, err)
	ci := NewCategoryIndex(c)

	got := ci.ByCategory(CategorySecurity)
	got[0].ID = "changed"
	assert.Equal(t, "tls", ci.ByCategory(CategorySecurity)[0].ID)
}

func TestRelationGraph_SkipsDanglingIDs(t *testing.T) {
	c, err := NewCatalog(sampleTerms())
	require.NoError(t, err)
	g := NewRelationGraph(c, NewIndex(c))

	related := g.RelatedOf(c.At(0))
	require.Len(t, related, 1)
	assert.Equal(t, "ip", related[0].ID)

	assert.Empty(t, g.RelatedOf(c.At(2)))
	assert.Empty(t, g.RelatedOf(Term{ID: "orphan", RelatedTerms: []string{"nothing", ""}}))
}

func TestRelationGraph_OneHopOnly(t *testing.T) {
	c, err := NewCatalog(sampleTerms())
	require.NoError(t, err)
	g := NewRelationGraph(c, NewIndex(c))

	// ip relates back to tcp; following it must not pull in tcp's own edges.
	related := g.RelatedOf(c.At(1))
	require.Len(t, related, 1)
	assert.Equal(t, "tcp", related[0].ID)
}

func TestRelationGraph_Dangling(t *testing.T) {
	c, err := NewCatalog(sampleTerms())
	require.NoError(t, err)
	g := NewRelationGraph(c, NewIndex(c))

	assert.Equal(t, []DanglingEdge{{From: "tcp", Position: 0, To: "ghost-id"}}, g.Dangling())
}
