package dom

import (
	"fmt"
	"strings"
)

// escapeAttributeValue escapes text for inclusion in a double-quoted
// attribute value. In addition to the standard HTML entities it escapes
// whitespace characters that could break attribute parsing.
func escapeAttributeValue(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// validateAttribute checks that name and value can be emitted as a
// well-formed name="value" token. Names follow the HTML attribute-name
// grammar (no whitespace, quotes, angle brackets, slashes, or equals
// signs); values may contain anything escapeAttributeValue can encode,
// which excludes control characters other than tab, newline, and carriage
// return.
func validateAttribute(name, value string) error {
	if name == "" {
		return fmt.Errorf("empty attribute name: %w", ErrInvalidAttribute)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(` "'<>/=`, r) {
			return fmt.Errorf("attribute name %q contains %q: %w", name, r, ErrInvalidAttribute)
		}
	}
	for _, r := range value {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("attribute %q value contains control character %q: %w", name, r, ErrInvalidAttribute)
		}
	}
	return nil
}
