package article

import (
	"regexp"
	"strings"
)

// Mention is one [[keyword]] or [[keyword|label]] found in article markdown.
type Mention struct {
	Keyword string // text used for lookup
	Label   string // text shown to the reader; Keyword when no label given
	Line    int    // 1-based
	Column  int    // 1-based byte column of the opening brackets
	Start   int    // byte offset of the opening brackets
	End     int    // byte offset just past the closing brackets
}

var (
	mentionPattern    = regexp.MustCompile(`\[\[([^\[\]|\n]+)(?:\|([^\[\]\n]+))?\]\]`)
	inlineCodePattern = regexp.MustCompile("`[^`\n]*`")
)

// ExtractMentions finds every mention in markdown, in document order.
// Mentions inside fenced code blocks and inline code spans are ignored.
func ExtractMentions(markdown string) []Mention {
	var mentions []Mention
	inFence := false
	offset := 0

	for lineNum, line := range strings.Split(markdown, "\n") {
		lineStart := offset
		offset += len(line) + 1

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		code := inlineCodePattern.FindAllStringIndex(line, -1)
		for _, m := range mentionPattern.FindAllStringSubmatchIndex(line, -1) {
			if insideSpan(m[0], code) {
				continue
			}
			keyword := strings.TrimSpace(line[m[2]:m[3]])
			if keyword == "" {
				continue
			}
			label := keyword
			if m[4] >= 0 {
				if l := strings.TrimSpace(line[m[4]:m[5]]); l != "" {
					label = l
				}
			}
			mentions = append(mentions, Mention{
				Keyword: keyword,
				Label:   label,
				Line:    lineNum + 1,
				Column:  m[0] + 1,
				Start:   lineStart + m[0],
				End:     lineStart + m[1],
			})
		}
	}

	return mentions
}

func insideSpan(pos int, spans [][]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
