// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"strings"
	"unicode"
)

// Make normalizes text into a URL-safe slug: lower-case, whitespace
// runs collapsed to single hyphens, anything outside [a-z0-9_-]
// stripped, repeated hyphens collapsed, leading/trailing hyphens
// trimmed. Whitespace includes Unicode spaces (NBSP, ideographic
// space), so words separated by them stay separated in the slug.
// Make is pure and idempotent: Make(Make(x)) == Make(x).
func Make(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		default:
			// stripped
		}
	}

	return strings.Trim(b.String(), "-")
}
