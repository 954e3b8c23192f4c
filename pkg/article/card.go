package article

import (
	"fmt"
	"strings"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/models"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

// TermCard is the markdown shown for a single glossary entry. related should
// already have dangling ids removed (RelationGraph.RelatedOf does that).
func TermCard(t glossary.Term, related []glossary.Term) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Term)
	fmt.Fprintf(&b, "*%s* · `%s`\n\n", t.Category.Label(), t.ID)
	fmt.Fprintf(&b, "%s\n", oneLine(t.Definition))

	if len(related) > 0 {
		b.WriteString("\n## Related\n\n")
		for _, r := range related {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", r.Term, r.ID, firstSentence(r.Definition))
		}
	}
	return b.String()
}

// ArticleCard is the markdown for an article: header, tag names and the
// annotated summary.
func ArticleCard(a models.Article, catalog *tags.Catalog, r TermResolver) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "*%s · %d*\n\n", a.RFCLabel(), a.Year)

	if len(a.Tags) > 0 {
		names := make([]string, 0, len(a.Tags))
		for _, id := range a.Tags {
			if tag, ok := catalog.Get(id); ok {
				names = append(names, "`"+tag.Name+"`")
			}
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(names, " "))
	}

	b.WriteString(Annotate(oneLine(a.Summary), r).Markdown)
	b.WriteString("\n")
	return b.String()
}

func firstSentence(s string) string {
	s = oneLine(s)
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
