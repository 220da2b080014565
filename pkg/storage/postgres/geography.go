package postgres

import (
	"context"
	"fmt"
	"heritage/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	planetTable             = "planet"
	regionTable             = "region"
	subRegionTable          = "sub_region"
	intermediateRegionTable = "intermediate_region"
	locationTable           = "location"
	devStatusTable          = "dev_status"
	countryAreaTable        = "country_area"
)

func countryColumns() []interface{} {
	return []interface{}{
		goqu.I("ca.country_area_id"),
		goqu.I("ca.country_area_name"),
		goqu.I("ca.m49_code"),
		goqu.I("ca.iso_alpha3_code"),
		goqu.I("l.location_id"),
		goqu.I("p.planet_id"),
		goqu.I("p.planet_name"),
		goqu.I("p.unsd_name"),
		goqu.I("r.region_id"),
		goqu.I("r.region_name"),
		goqu.I("sr.sub_region_id"),
		goqu.I("sr.sub_region_name"),
		goqu.I("ir.intermediate_region_id"),
		goqu.I("ir.intermediate_region_name"),
		goqu.I("ds.dev_status_id"),
		goqu.I("ds.dev_status_name"),
	}
}

// withCountryJoins resolves the location hierarchy and development status of
// the country aliased as ca. Every link is an outer join so that a missing
// row degrades the result instead of dropping it.
func withCountryJoins(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.
		LeftJoin(goqu.T(locationTable).As("l"),
			goqu.On(goqu.I("l.location_id").Eq(goqu.I("ca.location_id")))).
		LeftJoin(goqu.T(planetTable).As("p"),
			goqu.On(goqu.I("p.planet_id").Eq(goqu.I("l.planet_id")))).
		LeftJoin(goqu.T(regionTable).As("r"),
			goqu.On(goqu.I("r.region_id").Eq(goqu.I("l.region_id")))).
		LeftJoin(goqu.T(subRegionTable).As("sr"),
			goqu.On(goqu.I("sr.sub_region_id").Eq(goqu.I("l.sub_region_id")))).
		LeftJoin(goqu.T(intermediateRegionTable).As("ir"),
			goqu.On(goqu.I("ir.intermediate_region_id").Eq(goqu.I("l.intermediate_region_id")))).
		LeftJoin(goqu.T(devStatusTable).As("ds"),
			goqu.On(goqu.I("ds.dev_status_id").Eq(goqu.I("ca.dev_status_id"))))
}

func (p *PgSQL) countries() *goqu.SelectDataset {
	return withCountryJoins(p.Builder.From(goqu.T(countryAreaTable).As("ca"))).
		Select(countryColumns()...)
}

// CountCountries returns the number of countries or areas.
func (p *PgSQL) CountCountries(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(countryAreaTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count countries in pg: %w", err)
	}

	return count, nil
}

// Countries returns countries ordered by name. A zero limit returns all.
func (p *PgSQL) Countries(ctx context.Context, limit, offset uint) ([]domain.CountryArea, error) {
	ds := p.countries().Order(goqu.I("ca.country_area_name").Asc())
	if limit > 0 {
		ds = ds.Limit(limit).Offset(offset)
	}

	var rows []PgCountry
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch countries from pg: %w", err)
	}

	return pgCountriesToDomain(rows), nil
}

// CountryByID fetches a country. Returns nil when not found.
func (p *PgSQL) CountryByID(ctx context.Context, ID domain.CountryAreaID) (*domain.CountryArea, error) {
	var row PgCountry
	found, err := p.countries().
		Where(goqu.I("ca.country_area_id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch country by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ExistingCountryIDs returns the IDs among the given ones that exist.
func (p *PgSQL) ExistingCountryIDs(ctx context.Context, IDs []domain.CountryAreaID) ([]domain.CountryAreaID, error) {
	ids := uniqueIDs(IDs)
	if len(ids) == 0 {
		return nil, nil
	}

	var found []int64
	if err := p.Builder.From(countryAreaTable).
		Select("country_area_id").
		Where(goqu.I("country_area_id").In(ids)).
		Order(goqu.I("country_area_id").Asc()).
		Executor().ScanValsContext(ctx, &found); err != nil {
		return nil, fmt.Errorf("could not fetch country ids from pg: %w", err)
	}

	out := make([]domain.CountryAreaID, 0, len(found))
	for _, id := range found {
		out = append(out, domain.CountryAreaID(id))
	}

	return out, nil
}

// CategoryByID fetches a category. Returns nil when not found.
func (p *PgSQL) CategoryByID(ctx context.Context, ID domain.CategoryID) (*domain.HeritageSiteCategory, error) {
	var row PgCategory
	found, err := p.Builder.From(categoryTable).
		Where(goqu.I("category_id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &domain.HeritageSiteCategory{ID: domain.CategoryID(row.ID), Name: row.Name}, nil
}

// Categories returns every category ordered by name.
func (p *PgSQL) Categories(ctx context.Context) ([]domain.HeritageSiteCategory, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoryTable).
		Order(goqu.I("category_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	out := make([]domain.HeritageSiteCategory, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.HeritageSiteCategory{ID: domain.CategoryID(r.ID), Name: r.Name})
	}

	return out, nil
}

// Regions returns every region ordered by name.
func (p *PgSQL) Regions(ctx context.Context) ([]domain.Region, error) {
	var rows []PgRegion
	if err := p.Builder.From(regionTable).
		Order(goqu.I("region_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch regions from pg: %w", err)
	}

	out := make([]domain.Region, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Region{ID: domain.RegionID(r.ID), Name: r.Name, PlanetID: domain.PlanetID(r.PlanetID)})
	}

	return out, nil
}

// SubRegions returns every sub-region ordered by name.
func (p *PgSQL) SubRegions(ctx context.Context) ([]domain.SubRegion, error) {
	var rows []PgSubRegion
	if err := p.Builder.From(subRegionTable).
		Order(goqu.I("sub_region_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch sub-regions from pg: %w", err)
	}

	out := make([]domain.SubRegion, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SubRegion{
			ID:       domain.SubRegionID(r.ID),
			Name:     r.Name,
			RegionID: domain.RegionID(r.RegionID),
		})
	}

	return out, nil
}

// IntermediateRegions returns every intermediate region ordered by name.
func (p *PgSQL) IntermediateRegions(ctx context.Context) ([]domain.IntermediateRegion, error) {
	var rows []PgIntermediateRegion
	if err := p.Builder.From(intermediateRegionTable).
		Order(goqu.I("intermediate_region_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch intermediate regions from pg: %w", err)
	}

	out := make([]domain.IntermediateRegion, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.IntermediateRegion{
			ID:          domain.IntermediateRegionID(r.ID),
			Name:        r.Name,
			SubRegionID: domain.SubRegionID(r.SubRegionID),
		})
	}

	return out, nil
}
