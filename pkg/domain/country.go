package domain

// CountryAreaID identifies a UNSD M49 country or area.
type CountryAreaID int64

// DevStatusID identifies a development status classification.
type DevStatusID int64

// DevStatus is the development classification of a country
// (e.g. "Developing", "Developed").
type DevStatus struct {
	ID   DevStatusID `json:"id"`
	Name string      `json:"name"`
}

// CountryArea is a UNSD M49 country or area. Every country has exactly one
// location; the development status is optional.
type CountryArea struct {
	ID CountryAreaID `json:"id"`
	// Name is unique across all countries.
	Name string `json:"name"`
	// M49Code is the UN Statistics Division numeric code.
	M49Code int `json:"m49Code"`
	// ISOAlpha3Code is the three-letter ISO 3166 code.
	ISOAlpha3Code string     `json:"isoAlpha3Code"`
	Location      *Location  `json:"location"`
	DevStatus     *DevStatus `json:"devStatus,omitempty"`
}

// DisplayName formats the country as "<name> (<ISO3>)".
func (c *CountryArea) DisplayName() string {
	return c.Name + " (" + c.ISOAlpha3Code + ")"
}

// location returns the country's location, tolerating a nil country.
func (c *CountryArea) location() *Location {
	if c == nil {
		return nil
	}

	return c.Location
}

// RegionName reports the region the country is classified under, if any.
func (c *CountryArea) RegionName() (string, bool) {
	return c.location().RegionName()
}

// SubRegionName reports the sub-region the country is classified under, if any.
func (c *CountryArea) SubRegionName() (string, bool) {
	return c.location().SubRegionName()
}

// IntermediateRegionName reports the intermediate region the country is
// classified under, if any.
func (c *CountryArea) IntermediateRegionName() (string, bool) {
	return c.location().IntermediateRegionName()
}
