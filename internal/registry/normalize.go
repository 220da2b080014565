package registry

import (
	"strings"
)

// NormalizeName returns the canonical form of a site name: surrounding
// whitespace is removed and inner runs of whitespace collapse to a single
// space. Case is preserved.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// normalizeText trims free text without touching its inner layout.
func normalizeText(raw string) string {
	return strings.TrimSpace(raw)
}
