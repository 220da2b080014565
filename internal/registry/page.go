package registry

import (
	"heritage/pkg/domain"
	"heritage/pkg/serrors"
	"strconv"
	"strings"
)

// LastPage selects the last page of a listing.
const LastPage = "last"

// resolvePage turns the requested page into a page number given the size of
// the whole result set. Anything but a positive number within range, or
// "last", is reported as not found. The first page always exists.
func resolvePage(raw string, size uint, total int64) (uint, error) {
	numPages := domain.Page[struct{}]{Size: size, Total: total}.NumPages()

	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return 1, nil
	case LastPage:
		return numPages, nil
	}

	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrNotFound, err, "invalid page %q", raw)
	}
	if n == 0 || uint(n) > numPages {
		return 0, serrors.With(serrors.ErrNotFound, "invalid page %q: that page contains no results", raw)
	}

	return uint(n), nil
}
