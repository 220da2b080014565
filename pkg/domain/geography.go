package domain

// PlanetID identifies the root of the M49 hierarchy.
type PlanetID int64

// RegionID identifies a top-level M49 region (e.g. Africa, Europe).
type RegionID int64

// SubRegionID identifies an M49 sub-region.
type SubRegionID int64

// IntermediateRegionID identifies an M49 intermediate region.
type IntermediateRegionID int64

// LocationID identifies a Location row binding a country to the hierarchy.
type LocationID int64

// UnresolvedLocationName is returned by Location.Name when no level of the
// hierarchy is set. It should never happen because a planet is mandatory.
const UnresolvedLocationName = "error"

// Planet is the root of the hierarchy. UNSDName is its standard name
// (e.g. "World") and is what a location falls back to.
type Planet struct {
	ID       PlanetID `json:"id"`
	Name     string   `json:"name"`
	UNSDName string   `json:"unsdName"`
}

// Region belongs to exactly one planet.
type Region struct {
	ID       RegionID `json:"id"`
	Name     string   `json:"name"`
	PlanetID PlanetID `json:"planetId"`
}

// SubRegion belongs to exactly one region.
type SubRegion struct {
	ID       SubRegionID `json:"id"`
	Name     string      `json:"name"`
	RegionID RegionID    `json:"regionId"`
}

// IntermediateRegion belongs to exactly one sub-region. Not every sub-region
// is subdivided.
type IntermediateRegion struct {
	ID          IntermediateRegionID `json:"id"`
	Name        string               `json:"name"`
	SubRegionID SubRegionID          `json:"subRegionId"`
}

// Location binds a country or area to at most one node on each level of the
// hierarchy. Only the planet is mandatory. If IntermediateRegion is set its
// parent is expected to be SubRegion; this is a data-quality rule, not a
// schema constraint.
type Location struct {
	ID                 LocationID          `json:"id"`
	Planet             *Planet             `json:"planet"`
	Region             *Region             `json:"region,omitempty"`
	SubRegion          *SubRegion          `json:"subRegion,omitempty"`
	IntermediateRegion *IntermediateRegion `json:"intermediateRegion,omitempty"`
}

// Name returns the most specific classification of the location: the
// intermediate region, then the sub-region, then the region and finally the
// planet's standard name.
func (l *Location) Name() string {
	if name, ok := l.IntermediateRegionName(); ok {
		return name
	}
	if name, ok := l.SubRegionName(); ok {
		return name
	}
	if name, ok := l.RegionName(); ok {
		return name
	}
	if l != nil && l.Planet != nil && l.Planet.UNSDName != "" {
		return l.Planet.UNSDName
	}

	return UnresolvedLocationName
}

// RegionName reports the region name, if the location is classified that far.
func (l *Location) RegionName() (string, bool) {
	if l == nil || l.Region == nil || l.Region.Name == "" {
		return "", false
	}

	return l.Region.Name, true
}

// SubRegionName reports the sub-region name, if any.
func (l *Location) SubRegionName() (string, bool) {
	if l == nil || l.SubRegion == nil || l.SubRegion.Name == "" {
		return "", false
	}

	return l.SubRegion.Name, true
}

// IntermediateRegionName reports the intermediate region name, if any.
func (l *Location) IntermediateRegionName() (string, bool) {
	if l == nil || l.IntermediateRegion == nil || l.IntermediateRegion.Name == "" {
		return "", false
	}

	return l.IntermediateRegion.Name, true
}
