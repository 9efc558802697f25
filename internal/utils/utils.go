package utils

import "strings"

// revealThemes is the whitelist of slide themes a note's metadata may pick.
// Anything else falls back to the default theme at render time.
var revealThemes = map[string]struct{}{
	"beige":     {},
	"black":     {},
	"blood":     {},
	"league":    {},
	"moon":      {},
	"night":     {},
	"serif":     {},
	"simple":    {},
	"sky":       {},
	"solarized": {},
	"white":     {},
}

// IsRevealTheme reports whether the given theme name is a known slide theme.
func IsRevealTheme(theme string) bool {
	_, ok := revealThemes[theme]
	return ok
}

// SanitizeFilename makes a note title safe for a Content-Disposition
// filename. Path separators and control characters are replaced; an empty
// result falls back to "Untitled".
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// skip control characters
		case r == '"':
			b.WriteRune('\'')
		default:
			b.WriteRune(r)
		}
	}
	sanitized := strings.TrimSpace(b.String())
	if sanitized == "" {
		return "Untitled"
	}
	return sanitized
}

// SliceToSet builds a membership set from a slice.
func SliceToSet(s []string) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}
