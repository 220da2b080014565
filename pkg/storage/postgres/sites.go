package postgres

import (
	"context"
	"fmt"
	"heritage/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	siteTable         = "heritage_site"
	categoryTable     = "heritage_site_category"
	jurisdictionTable = "heritage_site_jurisdiction"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// containsPattern builds an ILIKE pattern matching values that contain s.
// Wildcards typed by the user are matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// jurisdictionExists matches sites having at least one jurisdiction that
// satisfies cond. The jurisdiction is aliased as j.
func jurisdictionExists(cond exp.Expression) exp.Expression {
	return goqu.L("EXISTS ?", dialect.From(goqu.T(jurisdictionTable).As("j")).
		Select(goqu.L("1")).
		Where(goqu.I("j.heritage_site_id").Eq(goqu.I("hs.heritage_site_id")), cond))
}

// locationExists matches sites having at least one country whose location
// satisfies cond. The location is aliased as jl.
func locationExists(cond exp.Expression) exp.Expression {
	return goqu.L("EXISTS ?", dialect.From(goqu.T(jurisdictionTable).As("j")).
		Join(goqu.T(countryAreaTable).As("jc"),
			goqu.On(goqu.I("jc.country_area_id").Eq(goqu.I("j.country_area_id")))).
		Join(goqu.T(locationTable).As("jl"),
			goqu.On(goqu.I("jl.location_id").Eq(goqu.I("jc.location_id")))).
		Select(goqu.L("1")).
		Where(goqu.I("j.heritage_site_id").Eq(goqu.I("hs.heritage_site_id")), cond))
}

func siteFilterExpressions(filter domain.SiteFilter) []goqu.Expression {
	filter = filter.Normalize()

	var w []goqu.Expression
	if filter.SiteName != "" {
		w = append(w, goqu.I("hs.site_name").ILike(containsPattern(filter.SiteName)))
	}
	if filter.Description != "" {
		w = append(w, goqu.I("hs.description").ILike(containsPattern(filter.Description)))
	}
	if filter.DateInscribed != "" {
		w = append(w, goqu.Cast(goqu.I("hs.date_inscribed"), "TEXT").ILike(containsPattern(filter.DateInscribed)))
	}
	if filter.CategoryID != nil {
		w = append(w, goqu.I("hs.heritage_site_category_id").Eq(int64(*filter.CategoryID)))
	}
	if filter.CountryAreaID != nil {
		w = append(w, jurisdictionExists(goqu.I("j.country_area_id").Eq(int64(*filter.CountryAreaID))))
	}
	if filter.RegionID != nil {
		w = append(w, locationExists(goqu.I("jl.region_id").Eq(int64(*filter.RegionID))))
	}
	if filter.SubRegionID != nil {
		w = append(w, locationExists(goqu.I("jl.sub_region_id").Eq(int64(*filter.SubRegionID))))
	}
	if filter.IntermediateRegionID != nil {
		w = append(w, locationExists(goqu.I("jl.intermediate_region_id").Eq(int64(*filter.IntermediateRegionID))))
	}

	return w
}

func (p *PgSQL) sites() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(siteTable).As("hs")).
		Join(goqu.T(categoryTable).As("c"),
			goqu.On(goqu.I("c.category_id").Eq(goqu.I("hs.heritage_site_category_id")))).
		Select(goqu.T("hs").All(), goqu.I("c.category_name"))
}

// CountSites returns the number of sites matching the filter.
func (p *PgSQL) CountSites(ctx context.Context, filter domain.SiteFilter) (int64, error) {
	count, err := p.Builder.From(goqu.T(siteTable).As("hs")).
		Where(siteFilterExpressions(filter)...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count sites in pg: %w", err)
	}

	return count, nil
}

// Sites returns a page of sites matching the filter ordered by name. A zero
// limit returns every match.
func (p *PgSQL) Sites(ctx context.Context, filter domain.SiteFilter, limit, offset uint) ([]domain.HeritageSite, error) {
	ds := p.sites().
		Where(siteFilterExpressions(filter)...).
		Order(goqu.I("hs.site_name").Asc(), goqu.I("hs.heritage_site_id").Asc())
	if limit > 0 {
		ds = ds.Limit(limit).Offset(offset)
	}

	var rows []PgSiteRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch sites from pg: %w", err)
	}

	return p.withJurisdictions(ctx, rows)
}

// SiteByID fetches a site with its category and jurisdictions. Returns nil
// when no site has that ID.
func (p *PgSQL) SiteByID(ctx context.Context, ID domain.SiteID) (*domain.HeritageSite, error) {
	var row PgSiteRow
	found, err := p.sites().
		Where(goqu.I("hs.heritage_site_id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch site by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	sites, err := p.withJurisdictions(ctx, []PgSiteRow{row})
	if err != nil {
		return nil, err
	}

	return &sites[0], nil
}

// SitesByCountry returns every site linked to the country.
func (p *PgSQL) SitesByCountry(ctx context.Context, countryID domain.CountryAreaID) ([]domain.HeritageSite, error) {
	return p.Sites(ctx, domain.SiteFilter{CountryAreaID: &countryID}, 0, 0)
}

// SiteIDByName looks a site up by its exact name.
func (p *PgSQL) SiteIDByName(ctx context.Context, name string) (domain.SiteID, bool, error) {
	var id int64
	found, err := p.Builder.From(siteTable).
		Select("heritage_site_id").
		Where(goqu.I("site_name").Eq(name)).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return 0, false, fmt.Errorf("could not fetch site by name from pg: %w", err)
	}

	return domain.SiteID(id), found, nil
}

// StoreSite inserts the site row and returns its generated ID.
func (p *PgSQL) StoreSite(ctx context.Context, site domain.HeritageSite) (domain.SiteID, error) {
	var row PgHeritageSite
	row.FromDomain(site)

	var id int64
	if _, err := p.Builder.Insert(siteTable).
		Rows(row).
		Returning("heritage_site_id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, fmt.Errorf("could not store site into pg: %w", mapError(err))
	}

	return domain.SiteID(id), nil
}

// UpdateSite overwrites the writable columns of the site.
func (p *PgSQL) UpdateSite(ctx context.Context, site domain.HeritageSite) (bool, error) {
	var row PgHeritageSite
	row.FromDomain(site)

	res, err := p.Builder.Update(siteTable).
		Set(row).
		Where(goqu.I("heritage_site_id").Eq(int64(site.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update site in pg: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// DeleteSite removes the site's jurisdictions, then the site itself.
func (p *PgSQL) DeleteSite(ctx context.Context, ID domain.SiteID) (bool, error) {
	if _, err := p.Builder.Delete(jurisdictionTable).
		Where(goqu.I("heritage_site_id").Eq(int64(ID))).
		Executor().ExecContext(ctx); err != nil {
		return false, fmt.Errorf("could not delete site jurisdictions in pg: %w", err)
	}

	res, err := p.Builder.Delete(siteTable).
		Where(goqu.I("heritage_site_id").Eq(int64(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete site in pg: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// ReplaceJurisdictions drops the links to countries not in countryIDs and
// adds the missing ones. Links that already exist keep their IDs.
func (p *PgSQL) ReplaceJurisdictions(ctx context.Context,
	siteID domain.SiteID,
	countryIDs []domain.CountryAreaID) error {
	ids := uniqueIDs(countryIDs)

	del := p.Builder.Delete(jurisdictionTable).Where(goqu.I("heritage_site_id").Eq(int64(siteID)))
	if len(ids) > 0 {
		del = del.Where(goqu.I("country_area_id").NotIn(ids))
	}
	if _, err := del.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete stale jurisdictions in pg: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, goqu.Record{
			"heritage_site_id": int64(siteID),
			"country_area_id":  id,
		})
	}
	if _, err := p.Builder.Insert(jurisdictionTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store jurisdictions into pg: %w", mapError(err))
	}

	return nil
}

// withJurisdictions loads the jurisdictions of every row in a single query
// and converts the rows to domain sites, preserving their order.
func (p *PgSQL) withJurisdictions(ctx context.Context, rows []PgSiteRow) ([]domain.HeritageSite, error) {
	out := make([]domain.HeritageSite, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	cols := append([]interface{}{
		goqu.I("hsj.heritage_site_jurisdiction_id"),
		goqu.I("hsj.heritage_site_id"),
	}, countryColumns()...)
	ds := withCountryJoins(p.Builder.From(goqu.T(jurisdictionTable).As("hsj")).
		LeftJoin(goqu.T(countryAreaTable).As("ca"),
			goqu.On(goqu.I("ca.country_area_id").Eq(goqu.I("hsj.country_area_id"))))).
		Select(cols...).
		Where(goqu.I("hsj.heritage_site_id").In(ids)).
		Order(goqu.I("ca.country_area_name").Asc(), goqu.I("hsj.heritage_site_jurisdiction_id").Asc())

	var links []PgJurisdiction
	if err := ds.Executor().ScanStructsContext(ctx, &links); err != nil {
		return nil, fmt.Errorf("could not fetch jurisdictions from pg: %w", err)
	}

	bySite := make(map[int64][]domain.Jurisdiction, len(rows))
	for i := range links {
		bySite[links[i].SiteID] = append(bySite[links[i].SiteID], links[i].ToDomain())
	}

	for i := range rows {
		site := rows[i].ToDomain()
		site.Jurisdictions = bySite[rows[i].ID]
		out = append(out, site)
	}

	return out, nil
}

func uniqueIDs(countryIDs []domain.CountryAreaID) []int64 {
	seen := make(map[domain.CountryAreaID]struct{}, len(countryIDs))
	out := make([]int64, 0, len(countryIDs))
	for _, id := range countryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, int64(id))
	}

	return out
}
