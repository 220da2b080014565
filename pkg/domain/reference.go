package domain

import "fmt"

// ReferenceKind names a kind of reference data row. Reference rows are
// populated out of band and may only be deleted while nothing depends on them.
type ReferenceKind string

const (
	ReferencePlanet             ReferenceKind = "planet"
	ReferenceRegion             ReferenceKind = "region"
	ReferenceSubRegion          ReferenceKind = "sub_region"
	ReferenceIntermediateRegion ReferenceKind = "intermediate_region"
	ReferenceLocation           ReferenceKind = "location"
	ReferenceDevStatus          ReferenceKind = "dev_status"
	ReferenceCountryArea        ReferenceKind = "country_area"
	ReferenceCategory           ReferenceKind = "category"
)

// ReferenceKinds lists every known kind, leaf-last.
var ReferenceKinds = []ReferenceKind{ //nolint: gochecknoglobals
	ReferencePlanet,
	ReferenceRegion,
	ReferenceSubRegion,
	ReferenceIntermediateRegion,
	ReferenceLocation,
	ReferenceDevStatus,
	ReferenceCountryArea,
	ReferenceCategory,
}

// ParseReferenceKind validates a kind name.
func ParseReferenceKind(s string) (ReferenceKind, error) {
	for _, k := range ReferenceKinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown reference kind %q", s)
}

// Dependent counts the rows of one table that still reference a reference row.
type Dependent struct {
	Table string
	Count int64
}
