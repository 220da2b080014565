package domain

// Page is one page of an ordered result set. Number is 1-based.
type Page[T any] struct {
	Items  []T
	Number uint
	Size   uint
	Total  int64
}

// NumPages returns the number of pages of the whole result set. An empty
// result set still has one (empty) page.
func (p Page[T]) NumPages() uint {
	if p.Total <= 0 || p.Size == 0 {
		return 1
	}

	return uint((p.Total + int64(p.Size) - 1) / int64(p.Size)) //nolint: gosec
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages()
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// Offset returns the index of the first item of the page within the whole
// result set.
func (p Page[T]) Offset() uint {
	if p.Number == 0 {
		return 0
	}

	return (p.Number - 1) * p.Size
}
