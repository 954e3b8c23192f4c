package article

import (
	"fmt"
	"strings"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
)

// TermResolver is the lookup the annotator needs. *glossary.Resolver
// satisfies it.
type TermResolver interface {
	Resolve(keyword string) (glossary.Term, bool)
}

// Annotation is a mention that resolved to a term.
type Annotation struct {
	Mention Mention
	Term    glossary.Term
	Ref     int // 1-based reference number in the Terms appendix
}

// Result is the annotated article.
type Result struct {
	Markdown    string
	Annotations []Annotation
	Unresolved  []Mention
	Terms       []glossary.Term // distinct terms, in reference order
}

// Annotate replaces every mention in markdown. Resolved mentions become bold
// text with a numbered reference into a Terms appendix; unresolved ones fall
// back to their plain label. A miss never fails the render.
func Annotate(markdown string, r TermResolver) Result {
	var (
		res  Result
		out  strings.Builder
		refs = make(map[string]int)
		last int
	)

	for _, m := range ExtractMentions(markdown) {
		out.WriteString(markdown[last:m.Start])
		last = m.End

		term, ok := r.Resolve(m.Keyword)
		if !ok {
			res.Unresolved = append(res.Unresolved, m)
			out.WriteString(m.Label)
			continue
		}

		key := term.ID + "\x00" + term.Definition
		ref, seen := refs[key]
		if !seen {
			res.Terms = append(res.Terms, term)
			ref = len(res.Terms)
			refs[key] = ref
		}
		res.Annotations = append(res.Annotations, Annotation{Mention: m, Term: term, Ref: ref})
		fmt.Fprintf(&out, "**%s**[%d]", m.Label, ref)
	}
	out.WriteString(markdown[last:])

	if len(res.Terms) > 0 {
		out.WriteString("\n\n---\n\n### Terms\n\n")
		for i, t := range res.Terms {
			fmt.Fprintf(&out, "%d. **%s** (%s): %s\n", i+1, t.Term, t.Category, oneLine(t.Definition))
		}
	}

	res.Markdown = out.String()
	return res
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
