package domain

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collators hands out root-locale collators. A Collator keeps scratch buffers
// and must not be shared between goroutines.
var collators = sync.Pool{ //nolint: gochecknoglobals
	New: func() any { return collate.New(language.Und) },
}

// sortByName orders items by the Unicode collation of their names, so that
// "Åland Islands" sorts with the A's and "côte d'Ivoire" with the C's.
// Items with equal names keep their order.
func sortByName[T any](items []T, name func(T) string) {
	c, _ := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(name(a), name(b))
	})
}
