package glossary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(logger.Discard)
	return logs
}

func TestBuiltin_EveryIDResolves(t *testing.T) {
	g, err := glossary.Builtin()
	require.NoError(t, err)
	require.Greater(t, g.Catalog.Len(), 50)

	for _, term := range g.Catalog.Terms() {
		got, ok := g.Resolver.Resolve(term.ID)
		require.True(t, ok, "id %q must resolve", term.ID)
		assert.Equal(t, glossary.Normalize(term.ID), glossary.Normalize(got.ID))
	}
}

func TestBuiltin_KnownDuplicates(t *testing.T) {
	g, err := glossary.Builtin()
	require.NoError(t, err)

	var keys []string
	for _, d := range g.Catalog.Duplicates() {
		keys = append(keys, d.Key)
	}
	assert.ElementsMatch(t, []string{"ipsec", "esp", "sa", "spi", "ike", "nat"}, keys)

	// By id the later VPN wording wins; by display name the earlier one does.
	byID, ok := g.Index.Get("nat")
	require.True(t, ok)
	assert.Equal(t, glossary.CategoryNetwork, byID.Category)

	byName, ok := g.Resolver.Resolve("NAT")
	require.True(t, ok)
	assert.Equal(t, glossary.CategorySecurity, byName.Category)
}

func TestBuiltin_ExampleLookups(t *testing.T) {
	g, err := glossary.Builtin()
	require.NoError(t, err)

	tcp, ok := g.Resolver.Resolve("T C P")
	require.True(t, ok)
	assert.Equal(t, "tcp", tcp.ID)

	http10, ok := g.Resolver.Resolve("Http10")
	require.True(t, ok)
	assert.Equal(t, "http-1-0", http10.ID)

	_, ok = g.Resolver.Resolve("nonexistent-keyword-xyz")
	assert.False(t, ok)

	for _, term := range g.Categories.ByCategory(glossary.CategoryEmail) {
		assert.Equal(t, glossary.CategoryEmail, term.Category)
	}
	assert.Len(t, g.Categories.Categories(), len(glossary.AllCategories()))
}

func TestNew_LogsDataQuality(t *testing.T) {
	logs := observeLogs(t)

	_, err := glossary.New(
		[]glossary.Term{{ID: "nat", Term: "NAT", Category: glossary.CategorySecurity, RelatedTerms: []string{"stun"}}},
		[]glossary.Term{{ID: "nat", Term: "NAT", Category: glossary.CategoryNetwork}},
	)
	require.NoError(t, err)

	dups := logs.FilterMessage("duplicate term id").All()
	require.Len(t, dups, 1)
	assert.Equal(t, zapcore.WarnLevel, dups[0].Level)
	assert.Equal(t, "nat", dups[0].ContextMap()[logger.FieldTermID])

	dangling := logs.FilterMessage("dangling related term").All()
	require.Len(t, dangling, 1)
	assert.Equal(t, "stun", dangling[0].ContextMap()[logger.FieldRelatedID])
}

func TestDecodeList(t *testing.T) {
	terms, err := glossary.DecodeList([]byte(`
terms:
  - id: quic
    term: QUIC
    category: protocol
    definition: UDP-based multiplexed transport.
    relatedTerms: [udp, tls]
`), "inline")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, glossary.Term{
		ID:           "quic",
		Term:         "QUIC",
		Category:     glossary.CategoryProtocol,
		Definition:   "UDP-based multiplexed transport.",
		RelatedTerms: []string{"udp", "tls"},
	}, terms[0])

	empty, err := glossary.DecodeList(nil, "empty")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDecodeList_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown category",
			doc:  "terms:\n  - id: x\n    term: X\n    category: hardware\n",
			want: glossary.ErrUnknownCategory,
		},
		{
			name: "unknown field",
			doc:  "terms:\n  - id: x\n    term: X\n    category: web\n    aliases: [y]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := glossary.DecodeList([]byte(tt.doc), tt.name)
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			}
		})
	}
}

func TestBuiltin_ExtraListsAppendAfterBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
terms:
  - id: tcp
    term: Transmission Control Protocol
    category: protocol
    definition: Site-local override.
`), 0o644))

	g, err := glossary.Builtin(path)
	require.NoError(t, err)

	byID, ok := g.Index.Get("tcp")
	require.True(t, ok)
	assert.Equal(t, "Site-local override.", byID.Definition)

	byName, ok := g.Resolver.Resolve("TCP")
	require.True(t, ok)
	assert.NotEqual(t, "Site-local override.", byName.Definition)
}

func TestBuiltin_MissingExtraFile(t *testing.T) {
	_, err := glossary.Builtin(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.UnwrapAll(err)))
}
