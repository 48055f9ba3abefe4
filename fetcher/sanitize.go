package fetcher

import (
	"strings"
)

// Sanitize turns a country display name into a file name stem: surrounding
// whitespace is trimmed, inner spaces become underscores and anything
// outside [A-Za-z0-9_-] is dropped.
//
// Different names may sanitize to the same stem, in which case the later
// download overwrites the earlier one.
func Sanitize(name string) string {
	name = strings.Replace(strings.TrimSpace(name), " ", "_", -1)
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '-':
			b.WriteByte(c)
		}
	}
	return b.String()
}
