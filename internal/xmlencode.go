package internal

import (
	"regexp"
	"strings"
)

// escaper covers the five reserved XML characters and nothing else. A
// strings.Replacer walks the input in a single pass, so already escaped
// entities are not escaped twice.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML replaces the five reserved XML characters with named entities.
func EscapeXML(s string) string {
	return escaper.Replace(s)
}

// entityPattern matches the named and numeric entity forms of the five
// reserved characters; anything else passes through untouched.
var entityPattern = regexp.MustCompile(`&(?:lt|gt|quot|amp|apos|#60|#62|#34|#38|#39);`)

// UnescapeXML is the inverse of EscapeXML, accepting both named and numeric
// entities.
func UnescapeXML(s string) string {
	return entityPattern.ReplaceAllStringFunc(s, func(entity string) string {
		switch entity {
		case "&lt;", "&#60;":
			return "<"
		case "&gt;", "&#62;":
			return ">"
		case "&quot;", "&#34;":
			return `"`
		case "&amp;", "&#38;":
			return "&"
		case "&apos;", "&#39;":
			return "'"
		}
		// unreachable: the pattern only captures the alternatives above
		return entity
	})
}
