package postgres_test

import (
	"context"
	"heritage/pkg/domain"
	"heritage/pkg/storage"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func siteNames(sites []domain.HeritageSite) []string {
	names := make([]string, 0, len(sites))
	for _, s := range sites {
		names = append(names, s.Name)
	}

	return names
}

func ptr[T any](v T) *T {
	return &v
}

func TestPgSQL_Sites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("ordered by name", func(t *testing.T) {
		t.Parallel()

		sites, err := pgSQL.Sites(ctx, domain.SiteFilter{}, 0, 0)
		require.NoError(t, err)
		require.Equal(t, []string{
			"Alhambra, Generalife and Albayzín, Granada",
			"Dinosaur Provincial Park",
			"Galápagos Islands",
			"Medina of Fez",
			"Mosi-oa-Tunya / Victoria Falls",
			"Old Havana and its Fortification System",
			"Pyrénées - Mont Perdu",
			"Taj Mahal",
		}, siteNames(sites))
	})

	t.Run("paginated", func(t *testing.T) {
		t.Parallel()

		sites, err := pgSQL.Sites(ctx, domain.SiteFilter{}, 3, 3)
		require.NoError(t, err)
		require.Equal(t, []string{
			"Medina of Fez",
			"Mosi-oa-Tunya / Victoria Falls",
			"Old Havana and its Fortification System",
		}, siteNames(sites))

		count, err := pgSQL.CountSites(ctx, domain.SiteFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(8), count)
	})

	t.Run("transboundary site resolves every country", func(t *testing.T) {
		t.Parallel()

		site, err := pgSQL.SiteByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, site)
		require.True(t, site.Transboundary)
		require.Equal(t, "Natural", site.Category.Name)
		require.Equal(t, "Zambia (ZMB), Zimbabwe (ZWE)", site.CountryAreaNames())
		require.Equal(t, "Africa", site.RegionNames())
		require.Equal(t, "Sub-Saharan Africa", site.SubRegionNames())
		require.Equal(t, "Eastern Africa", site.IntermediateRegionNames())
	})

	t.Run("optional columns", func(t *testing.T) {
		t.Parallel()

		site, err := pgSQL.SiteByID(ctx, 4)
		require.NoError(t, err)
		require.NotNil(t, site)
		require.Equal(t, "Criterion (i)", site.Justification)
		require.Nil(t, site.AreaHectares)
		require.Equal(t, 1983, *site.DateInscribed)
		require.True(t, decimal.RequireFromString("78.04194444").Equal(*site.Longitude))
	})

	t.Run("missing site", func(t *testing.T) {
		t.Parallel()

		site, err := pgSQL.SiteByID(ctx, 999)
		require.NoError(t, err)
		require.Nil(t, site)
	})

	t.Run("by name", func(t *testing.T) {
		t.Parallel()

		id, found, err := pgSQL.SiteIDByName(ctx, "Taj Mahal")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, domain.SiteID(4), id)

		_, found, err = pgSQL.SiteIDByName(ctx, "taj mahal")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("by country", func(t *testing.T) {
		t.Parallel()

		sites, err := pgSQL.SitesByCountry(ctx, 8)
		require.NoError(t, err)
		require.Equal(t, []string{"Alhambra, Generalife and Albayzín, Granada", "Pyrénées - Mont Perdu"}, siteNames(sites))
	})
}

func TestPgSQL_Sites_Filter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	// a site from this century, without countries
	_, err := pgSQL.StoreSite(ctx, domain.HeritageSite{
		Name:          "Wadi Al-Hitan (Whale Valley)",
		Description:   "Fossil remains of the earliest, now extinct, suborder of whales.",
		DateInscribed: ptr(2005),
		Category:      domain.HeritageSiteCategory{ID: 2},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		filter   domain.SiteFilter
		expected []string
	}{
		{
			name:     "name contains ignoring case",
			filter:   domain.SiteFilter{SiteName: "FALLS"},
			expected: []string{"Mosi-oa-Tunya / Victoria Falls"},
		},
		{
			name:     "name is trimmed",
			filter:   domain.SiteFilter{SiteName: "  taj "},
			expected: []string{"Taj Mahal"},
		},
		{
			name:     "wildcards are literal",
			filter:   domain.SiteFilter{SiteName: "%"},
			expected: []string{},
		},
		{
			name:     "description contains",
			filter:   domain.SiteFilter{Description: "waterfalls"},
			expected: []string{"Mosi-oa-Tunya / Victoria Falls"},
		},
		{
			name:   "year as text",
			filter: domain.SiteFilter{DateInscribed: "197"},
			expected: []string{
				"Dinosaur Provincial Park",
				"Galápagos Islands",
			},
		},
		{
			name:   "year text excludes other centuries",
			filter: domain.SiteFilter{DateInscribed: "19"},
			expected: []string{
				"Alhambra, Generalife and Albayzín, Granada",
				"Dinosaur Provincial Park",
				"Galápagos Islands",
				"Medina of Fez",
				"Mosi-oa-Tunya / Victoria Falls",
				"Old Havana and its Fortification System",
				"Pyrénées - Mont Perdu",
				"Taj Mahal",
			},
		},
		{
			name:     "exact year",
			filter:   domain.SiteFilter{DateInscribed: "2005"},
			expected: []string{"Wadi Al-Hitan (Whale Valley)"},
		},
		{
			name:     "year not present",
			filter:   domain.SiteFilter{DateInscribed: "1990"},
			expected: []string{},
		},
		{
			name:   "name alone",
			filter: domain.SiteFilter{SiteName: "IS"},
			expected: []string{
				"Galápagos Islands",
				"Old Havana and its Fortification System",
			},
		},
		{
			name: "name and category",
			filter: domain.SiteFilter{
				SiteName:   "IS",
				CategoryID: ptr(domain.CategoryID(1)),
			},
			expected: []string{"Old Havana and its Fortification System"},
		},
		{
			name:   "category",
			filter: domain.SiteFilter{CategoryID: ptr(domain.CategoryID(2))},
			expected: []string{
				"Dinosaur Provincial Park",
				"Galápagos Islands",
				"Mosi-oa-Tunya / Victoria Falls",
				"Wadi Al-Hitan (Whale Valley)",
			},
		},
		{
			name:   "region without duplicates",
			filter: domain.SiteFilter{RegionID: ptr(domain.RegionID(150))},
			expected: []string{
				"Alhambra, Generalife and Albayzín, Granada",
				"Pyrénées - Mont Perdu",
			},
		},
		{
			name:     "sub-region",
			filter:   domain.SiteFilter{SubRegionID: ptr(domain.SubRegionID(155))},
			expected: []string{"Pyrénées - Mont Perdu"},
		},
		{
			name:     "intermediate region",
			filter:   domain.SiteFilter{IntermediateRegionID: ptr(domain.IntermediateRegionID(29))},
			expected: []string{"Old Havana and its Fortification System"},
		},
		{
			name:     "country",
			filter:   domain.SiteFilter{CountryAreaID: ptr(domain.CountryAreaID(2))},
			expected: []string{"Medina of Fez"},
		},
		{
			name: "criteria are combined",
			filter: domain.SiteFilter{
				RegionID:   ptr(domain.RegionID(2)),
				CategoryID: ptr(domain.CategoryID(2)),
			},
			expected: []string{"Mosi-oa-Tunya / Victoria Falls"},
		},
		{
			name: "no match",
			filter: domain.SiteFilter{
				RegionID:      ptr(domain.RegionID(150)),
				DateInscribed: "2020",
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sites, err := pgSQL.Sites(ctx, tt.filter, 0, 0)
			require.NoError(t, err)
			require.Equal(t, tt.expected, siteNames(sites))

			count, err := pgSQL.CountSites(ctx, tt.filter)
			require.NoError(t, err)
			require.Equal(t, int64(len(tt.expected)), count)
		})
	}
}

func TestPgSQL_SiteLifecycle(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	lon := decimal.RequireFromString("-3.12345678")
	site := domain.HeritageSite{
		Name:          "Test Walls",
		Description:   "walls",
		DateInscribed: ptr(2001),
		Longitude:     &lon,
		AreaHectares:  ptr(12.5),
		Category:      domain.HeritageSiteCategory{ID: 1},
		Transboundary: true,
	}

	id, err := pgSQL.StoreSite(ctx, site)
	require.NoError(t, err)
	require.NotZero(t, id)
	require.NoError(t, pgSQL.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{9, 8, 9}))

	got, err := pgSQL.SiteByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "France (FRA), Spain (ESP)", got.CountryAreaNames())
	require.True(t, lon.Equal(*got.Longitude))
	require.Nil(t, got.Latitude)
	require.Equal(t, 12.5, *got.AreaHectares)
	require.Len(t, got.Jurisdictions, 2)
	spain := got.Jurisdictions[1].ID

	// a duplicate name is rejected by the unique index
	_, err = pgSQL.StoreSite(ctx, domain.HeritageSite{
		Name:        "Taj Mahal",
		Description: "again",
		Category:    domain.HeritageSiteCategory{ID: 1},
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	// unknown category
	_, err = pgSQL.StoreSite(ctx, domain.HeritageSite{
		Name:        "Nowhere",
		Description: "none",
		Category:    domain.HeritageSiteCategory{ID: 99},
	})
	require.ErrorIs(t, err, storage.ErrReferenced)

	site.ID = id
	site.Name = "Test Walls Renamed"
	site.Longitude = nil
	site.Transboundary = false
	updated, err := pgSQL.UpdateSite(ctx, site)
	require.NoError(t, err)
	require.True(t, updated)
	require.NoError(t, pgSQL.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{8}))

	got, err = pgSQL.SiteByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Test Walls Renamed", got.Name)
	require.Nil(t, got.Longitude)
	require.False(t, got.Transboundary)
	require.Len(t, got.Jurisdictions, 1)
	require.Equal(t, spain, got.Jurisdictions[0].ID)

	site.ID = 999
	updated, err = pgSQL.UpdateSite(ctx, site)
	require.NoError(t, err)
	require.False(t, updated)

	// clearing every country is allowed
	require.NoError(t, pgSQL.ReplaceJurisdictions(ctx, id, nil))
	got, err = pgSQL.SiteByID(ctx, id)
	require.NoError(t, err)
	require.Empty(t, got.Jurisdictions)
	require.Empty(t, got.CountryAreaNames())

	require.NoError(t, pgSQL.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{8}))
	deleted, err := pgSQL.DeleteSite(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = pgSQL.SiteByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)

	// the site's links are gone and the country outlives the site
	var links int
	require.NoError(t, pgSQL.DB.QueryRowContext(ctx,
		"SELECT count(*) FROM heritage_site_jurisdiction WHERE heritage_site_id = $1", int64(id)).Scan(&links))
	require.Zero(t, links)

	deps, err := pgSQL.ReferenceDependents(ctx, domain.ReferenceCountryArea, 8)
	require.NoError(t, err)
	require.Equal(t, []domain.Dependent{{Table: "heritage_site_jurisdiction", Count: 2}}, deps)

	country, err := pgSQL.CountryByID(ctx, 8)
	require.NoError(t, err)
	require.NotNil(t, country)

	deleted, err = pgSQL.DeleteSite(ctx, id)
	require.NoError(t, err)
	require.False(t, deleted)
}
