package postgres

import (
	"database/sql"
	"heritage/pkg/domain"

	"github.com/shopspring/decimal"
)

type PgHeritageSite struct {
	ID            int64               `db:"heritage_site_id" goqu:"skipinsert,skipupdate"`
	SiteName      string              `db:"site_name"`
	Description   string              `db:"description"`
	Justification sql.NullString      `db:"justification"`
	DateInscribed sql.NullInt64       `db:"date_inscribed"`
	Longitude     decimal.NullDecimal `db:"longitude"`
	Latitude      decimal.NullDecimal `db:"latitude"`
	AreaHectares  sql.NullFloat64     `db:"area_hectares"`
	CategoryID    int64               `db:"heritage_site_category_id"`
	Transboundary int                 `db:"transboundary"`
}

// PgSiteRow is a site joined with the name of its category.
type PgSiteRow struct {
	PgHeritageSite
	CategoryName string `db:"category_name"`
}

// PgCountry is a country joined with its location hierarchy and development
// status. Every column is nullable since the joins are outer joins.
type PgCountry struct {
	ID            sql.NullInt64  `db:"country_area_id"`
	Name          sql.NullString `db:"country_area_name"`
	M49Code       sql.NullInt64  `db:"m49_code"`
	ISOAlpha3Code sql.NullString `db:"iso_alpha3_code"`

	LocationID sql.NullInt64  `db:"location_id"`
	PlanetID   sql.NullInt64  `db:"planet_id"`
	PlanetName sql.NullString `db:"planet_name"`
	UNSDName   sql.NullString `db:"unsd_name"`

	RegionID               sql.NullInt64  `db:"region_id"`
	RegionName             sql.NullString `db:"region_name"`
	SubRegionID            sql.NullInt64  `db:"sub_region_id"`
	SubRegionName          sql.NullString `db:"sub_region_name"`
	IntermediateRegionID   sql.NullInt64  `db:"intermediate_region_id"`
	IntermediateRegionName sql.NullString `db:"intermediate_region_name"`

	DevStatusID   sql.NullInt64  `db:"dev_status_id"`
	DevStatusName sql.NullString `db:"dev_status_name"`
}

// PgJurisdiction is a jurisdiction joined with its country.
type PgJurisdiction struct {
	JurisdictionID int64 `db:"heritage_site_jurisdiction_id"`
	SiteID         int64 `db:"heritage_site_id"`
	PgCountry
}

type PgCategory struct {
	ID   int64  `db:"category_id"`
	Name string `db:"category_name"`
}

type PgRegion struct {
	ID       int64  `db:"region_id"`
	Name     string `db:"region_name"`
	PlanetID int64  `db:"planet_id"`
}

type PgSubRegion struct {
	ID       int64  `db:"sub_region_id"`
	Name     string `db:"sub_region_name"`
	RegionID int64  `db:"region_id"`
}

type PgIntermediateRegion struct {
	ID          int64  `db:"intermediate_region_id"`
	Name        string `db:"intermediate_region_name"`
	SubRegionID int64  `db:"sub_region_id"`
}

func (p *PgHeritageSite) ToDomain() domain.HeritageSite {
	site := domain.HeritageSite{
		ID:            domain.SiteID(p.ID),
		Name:          p.SiteName,
		Description:   p.Description,
		Justification: p.Justification.String,
		Category:      domain.HeritageSiteCategory{ID: domain.CategoryID(p.CategoryID)},
		Transboundary: p.Transboundary != 0,
	}
	if p.DateInscribed.Valid {
		year := int(p.DateInscribed.Int64)
		site.DateInscribed = &year
	}
	if p.Longitude.Valid {
		lon := p.Longitude.Decimal
		site.Longitude = &lon
	}
	if p.Latitude.Valid {
		lat := p.Latitude.Decimal
		site.Latitude = &lat
	}
	if p.AreaHectares.Valid {
		area := p.AreaHectares.Float64
		site.AreaHectares = &area
	}

	return site
}

func (p *PgHeritageSite) FromDomain(site domain.HeritageSite) {
	*p = PgHeritageSite{
		ID:          int64(site.ID),
		SiteName:    site.Name,
		Description: site.Description,
		Justification: sql.NullString{
			String: site.Justification,
			Valid:  site.Justification != "",
		},
		CategoryID: int64(site.Category.ID),
	}
	if site.Transboundary {
		p.Transboundary = 1
	}
	if site.DateInscribed != nil {
		p.DateInscribed = sql.NullInt64{Int64: int64(*site.DateInscribed), Valid: true}
	}
	if site.Longitude != nil {
		p.Longitude = decimal.NullDecimal{Decimal: *site.Longitude, Valid: true}
	}
	if site.Latitude != nil {
		p.Latitude = decimal.NullDecimal{Decimal: *site.Latitude, Valid: true}
	}
	if site.AreaHectares != nil {
		p.AreaHectares = sql.NullFloat64{Float64: *site.AreaHectares, Valid: true}
	}
}

func (p *PgSiteRow) ToDomain() domain.HeritageSite {
	site := p.PgHeritageSite.ToDomain()
	site.Category.Name = p.CategoryName

	return site
}

// ToDomain resolves the joined columns. It returns nil when the country row
// itself is missing.
func (p *PgCountry) ToDomain() *domain.CountryArea {
	if !p.ID.Valid {
		return nil
	}

	country := &domain.CountryArea{
		ID:            domain.CountryAreaID(p.ID.Int64),
		Name:          p.Name.String,
		M49Code:       int(p.M49Code.Int64),
		ISOAlpha3Code: p.ISOAlpha3Code.String,
	}
	if p.DevStatusID.Valid {
		country.DevStatus = &domain.DevStatus{
			ID:   domain.DevStatusID(p.DevStatusID.Int64),
			Name: p.DevStatusName.String,
		}
	}
	if !p.LocationID.Valid {
		return country
	}

	loc := &domain.Location{ID: domain.LocationID(p.LocationID.Int64)}
	if p.PlanetID.Valid {
		loc.Planet = &domain.Planet{
			ID:       domain.PlanetID(p.PlanetID.Int64),
			Name:     p.PlanetName.String,
			UNSDName: p.UNSDName.String,
		}
	}
	if p.RegionID.Valid {
		loc.Region = &domain.Region{
			ID:       domain.RegionID(p.RegionID.Int64),
			Name:     p.RegionName.String,
			PlanetID: domain.PlanetID(p.PlanetID.Int64),
		}
	}
	if p.SubRegionID.Valid {
		loc.SubRegion = &domain.SubRegion{
			ID:       domain.SubRegionID(p.SubRegionID.Int64),
			Name:     p.SubRegionName.String,
			RegionID: domain.RegionID(p.RegionID.Int64),
		}
	}
	if p.IntermediateRegionID.Valid {
		loc.IntermediateRegion = &domain.IntermediateRegion{
			ID:          domain.IntermediateRegionID(p.IntermediateRegionID.Int64),
			Name:        p.IntermediateRegionName.String,
			SubRegionID: domain.SubRegionID(p.SubRegionID.Int64),
		}
	}
	country.Location = loc

	return country
}

func (p *PgJurisdiction) ToDomain() domain.Jurisdiction {
	return domain.Jurisdiction{
		ID:      domain.JurisdictionID(p.JurisdictionID),
		Country: p.PgCountry.ToDomain(),
	}
}

func pgCountriesToDomain(rows []PgCountry) []domain.CountryArea {
	out := make([]domain.CountryArea, 0, len(rows))
	for i := range rows {
		if c := rows[i].ToDomain(); c != nil {
			out = append(out, *c)
		}
	}

	return out
}
