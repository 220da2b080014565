package postgres

import (
	"context"
	"fmt"
	"heritage/pkg/domain"
	"heritage/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

type dependentTable struct {
	table  string
	column string
}

type referenceTable struct {
	table      string
	key        string
	dependents []dependentTable
}

var referenceTables = map[domain.ReferenceKind]referenceTable{ //nolint: gochecknoglobals
	domain.ReferencePlanet: {
		table: planetTable, key: "planet_id",
		dependents: []dependentTable{{regionTable, "planet_id"}, {locationTable, "planet_id"}},
	},
	domain.ReferenceRegion: {
		table: regionTable, key: "region_id",
		dependents: []dependentTable{{subRegionTable, "region_id"}, {locationTable, "region_id"}},
	},
	domain.ReferenceSubRegion: {
		table: subRegionTable, key: "sub_region_id",
		dependents: []dependentTable{{intermediateRegionTable, "sub_region_id"}, {locationTable, "sub_region_id"}},
	},
	domain.ReferenceIntermediateRegion: {
		table: intermediateRegionTable, key: "intermediate_region_id",
		dependents: []dependentTable{{locationTable, "intermediate_region_id"}},
	},
	domain.ReferenceLocation: {
		table: locationTable, key: "location_id",
		dependents: []dependentTable{{countryAreaTable, "location_id"}},
	},
	domain.ReferenceDevStatus: {
		table: devStatusTable, key: "dev_status_id",
		dependents: []dependentTable{{countryAreaTable, "dev_status_id"}},
	},
	domain.ReferenceCountryArea: {
		table: countryAreaTable, key: "country_area_id",
		dependents: []dependentTable{{jurisdictionTable, "country_area_id"}},
	},
	domain.ReferenceCategory: {
		table: categoryTable, key: "category_id",
		dependents: []dependentTable{{siteTable, "heritage_site_category_id"}},
	},
}

func lookupReference(kind domain.ReferenceKind) (referenceTable, error) {
	ref, ok := referenceTables[kind]
	if !ok {
		return referenceTable{}, fmt.Errorf("%w: %s", storage.ErrUnknownReference, kind)
	}

	return ref, nil
}

// ReferenceExists reports whether the reference row exists.
func (p *PgSQL) ReferenceExists(ctx context.Context, kind domain.ReferenceKind, ID int64) (bool, error) {
	ref, err := lookupReference(kind)
	if err != nil {
		return false, err
	}

	count, err := p.Builder.From(ref.table).Where(goqu.I(ref.key).Eq(ID)).CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check %s existence in pg: %w", ref.table, err)
	}

	return count > 0, nil
}

// ReferenceDependents counts the rows of each dependent table that still
// point at the reference row.
func (p *PgSQL) ReferenceDependents(ctx context.Context, kind domain.ReferenceKind, ID int64) ([]domain.Dependent, error) {
	ref, err := lookupReference(kind)
	if err != nil {
		return nil, err
	}

	var out []domain.Dependent
	for _, dep := range ref.dependents {
		count, err := p.Builder.From(dep.table).Where(goqu.I(dep.column).Eq(ID)).CountContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not count %s dependents in pg: %w", dep.table, err)
		}
		if count > 0 {
			out = append(out, domain.Dependent{Table: dep.table, Count: count})
		}
	}

	return out, nil
}

// DeleteReference deletes the reference row.
func (p *PgSQL) DeleteReference(ctx context.Context, kind domain.ReferenceKind, ID int64) (bool, error) {
	ref, err := lookupReference(kind)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Delete(ref.table).Where(goqu.I(ref.key).Eq(ID)).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete %s in pg: %w", ref.table, mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}
