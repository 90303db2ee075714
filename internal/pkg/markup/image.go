// Package markup provides best-effort extraction helpers for HTML-ish
// article content. It deliberately avoids a full document parser: the
// inputs are editor-produced fragments and the callers only need a
// presentation fallback, not a DOM.
package markup

import "strings"

// FirstImageSrc returns the src of the first <img> tag found in content,
// or "" if none is present. Matching is case-insensitive and tolerant of
// unquoted attribute values. This is a heuristic for deriving a missing
// thumbnail at read time, never a persisted fact.
func FirstImageSrc(content string) string {
	// Tag and attribute names are ASCII, so only ASCII bytes are folded.
	// strings.ToLower would change the byte length for some runes and
	// desync the indices shared with the original string.
	lower := lowerASCII(content)

	pos := 0
	for {
		idx := strings.Index(lower[pos:], "<img")
		if idx < 0 {
			return ""
		}
		tagStart := pos + idx
		tagEnd := strings.IndexByte(lower[tagStart:], '>')
		tag := lower[tagStart:]
		if tagEnd >= 0 {
			tag = lower[tagStart : tagStart+tagEnd]
		}

		if src := srcAttr(content[tagStart:tagStart+len(tag)], tag); src != "" {
			return src
		}
		pos = tagStart + len("<img")
	}
}

// srcAttr extracts the src attribute value from a single tag. orig holds
// the original-case bytes, lower the lower-cased copy used for matching.
func srcAttr(orig, lower string) string {
	idx := strings.Index(lower, "src=")
	if idx < 0 {
		return ""
	}
	rest := orig[idx+len("src="):]
	if rest == "" {
		return ""
	}

	switch rest[0] {
	case '"', '\'':
		quote := rest[0]
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			// Unterminated quote: take everything up to the next space.
			return cutAt(rest[1:], " ")
		}
		return rest[1 : 1+end]
	default:
		// Unquoted value runs to the next whitespace or tag close.
		return cutAt(rest, " \t\n>")
	}
}

func cutAt(s, stop string) string {
	if i := strings.IndexAny(s, stop); i >= 0 {
		return s[:i]
	}
	return s
}

// lowerASCII folds A-Z to a-z and leaves every other byte untouched,
// so the result always has the same length as the input.
func lowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
