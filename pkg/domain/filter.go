package domain

import "strings"

// SiteFilter is the set of optional search criteria over heritage sites.
// Every criterion that is set must hold (logical AND); unset criteria are
// ignored. Text criteria are empty when unset, choice criteria are nil.
type SiteFilter struct {
	// SiteName matches sites whose name contains the value, ignoring case.
	SiteName string
	// Description matches sites whose description contains the value, ignoring case.
	Description string
	// CategoryID matches sites of exactly this category.
	CategoryID *CategoryID
	// RegionID matches sites with at least one country located in the region.
	RegionID *RegionID
	// SubRegionID matches sites with at least one country located in the sub-region.
	SubRegionID *SubRegionID
	// IntermediateRegionID matches sites with at least one country located in
	// the intermediate region.
	IntermediateRegionID *IntermediateRegionID
	// CountryAreaID matches sites under the jurisdiction of the country.
	CountryAreaID *CountryAreaID
	// DateInscribed matches sites whose inscription year, as text, contains
	// the value. "19" matches 1978 and 1991 but not 2005.
	DateInscribed string
}

// Normalize trims surrounding whitespace from the text criteria so that
// blank values count as unset.
func (f SiteFilter) Normalize() SiteFilter {
	f.SiteName = strings.TrimSpace(f.SiteName)
	f.Description = strings.TrimSpace(f.Description)
	f.DateInscribed = strings.TrimSpace(f.DateInscribed)

	return f
}

// IsEmpty reports whether no criterion is set.
func (f SiteFilter) IsEmpty() bool {
	f = f.Normalize()

	return f.SiteName == "" &&
		f.Description == "" &&
		f.CategoryID == nil &&
		f.RegionID == nil &&
		f.SubRegionID == nil &&
		f.IntermediateRegionID == nil &&
		f.CountryAreaID == nil &&
		f.DateInscribed == ""
}

// FilterChoices holds the enumerated values a client can choose from when
// building a SiteFilter or a site form. Each list is sorted by name.
type FilterChoices struct {
	Categories          []HeritageSiteCategory `json:"categories"`
	Regions             []Region               `json:"regions"`
	SubRegions          []SubRegion            `json:"subRegions"`
	IntermediateRegions []IntermediateRegion   `json:"intermediateRegions"`
	Countries           []CountryArea          `json:"countries"`
}
