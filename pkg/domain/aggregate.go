package domain

import (
	"slices"
	"strings"
)

// NameSeparator joins aggregated names.
const NameSeparator = ", "

// Countries returns the resolved countries of the site ordered by name.
// Jurisdictions without a country are skipped.
func (s *HeritageSite) Countries() []*CountryArea {
	out := make([]*CountryArea, 0, len(s.Jurisdictions))
	for i := range s.Jurisdictions {
		if s.Jurisdictions[i].Country != nil {
			out = append(out, s.Jurisdictions[i].Country)
		}
	}
	sortByName(out, func(c *CountryArea) string { return c.Name })

	return out
}

// CountryIDs returns the ids of the site's resolved countries, ordered by
// country name.
func (s *HeritageSite) CountryIDs() []CountryAreaID {
	countries := s.Countries()
	ids := make([]CountryAreaID, 0, len(countries))
	for _, c := range countries {
		ids = append(ids, c.ID)
	}

	return ids
}

// CountryAreaNames lists the site's countries as "<name> (<ISO3>)", ordered by
// country name and without duplicates.
func (s *HeritageSite) CountryAreaNames() string {
	names := make([]string, 0, len(s.Jurisdictions))
	for _, c := range s.Countries() {
		if c.Name == "" {
			continue
		}
		names = appendUnique(names, c.DisplayName())
	}

	return strings.Join(names, NameSeparator)
}

// RegionNames lists the distinct regions of the site's countries.
func (s *HeritageSite) RegionNames() string {
	return s.levelNames((*CountryArea).RegionName)
}

// SubRegionNames lists the distinct sub-regions of the site's countries.
func (s *HeritageSite) SubRegionNames() string {
	return s.levelNames((*CountryArea).SubRegionName)
}

// IntermediateRegionNames lists the distinct intermediate regions of the
// site's countries.
func (s *HeritageSite) IntermediateRegionNames() string {
	return s.levelNames((*CountryArea).IntermediateRegionName)
}

// levelNames resolves one hierarchy level for every country of the site.
// A country whose link to that level is missing contributes nothing; the
// remaining countries are still listed.
func (s *HeritageSite) levelNames(resolve func(*CountryArea) (string, bool)) string {
	names := make([]string, 0, len(s.Jurisdictions))
	for i := range s.Jurisdictions {
		name, ok := resolve(s.Jurisdictions[i].Country)
		if !ok {
			continue
		}
		names = append(names, name)
	}
	sortByName(names, func(n string) string { return n })

	unique := names[:0]
	for _, n := range names {
		unique = appendUnique(unique, n)
	}

	return strings.Join(unique, NameSeparator)
}

func appendUnique(names []string, name string) []string {
	if slices.Contains(names, name) {
		return names
	}

	return append(names, name)
}
