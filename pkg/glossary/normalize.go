package glossary

import "strings"

// Normalize reduces s to its lookup key: lower-cased, with every rune
// outside [a-z0-9] removed. "HTTP/1.0", "http-1-0" and "Http10" all map to
// "http10".
func Normalize(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
